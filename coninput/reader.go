package coninput

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/ghostix/easyconsole/messages"
)

// ParseError reports console input that did not parse as the requested
// type. The prompt loop consumes it internally and retries; it never
// escapes a prompt call.
type ParseError struct {
	// Input is the raw token or line that failed to parse.
	Input string

	// Err is the underlying parse failure.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader wraps a line-oriented input source with retrying typed prompts.
// Each prompt writes its text to the sink, reads, and on a parse failure
// prints the catalog's invalid-value message and starts over. With
// confirm=true the parsed value is echoed back and only returned once the
// operator affirms it; a rejection restarts the whole prompt.
type Reader struct {
	src     io.Reader
	scratch [1]byte
	out     io.Writer
	msgs    *messages.Catalog
}

// NewReader builds a Reader over the given source and sink with the
// default message catalog.
func NewReader(r io.Reader, w io.Writer) *Reader {
	return &Reader{
		src:  r,
		out:  w,
		msgs: messages.Default(),
	}
}

// NewStdReader binds the process's standard input and output.
func NewStdReader() *Reader {
	return NewReader(os.Stdin, os.Stdout)
}

// SetCatalog replaces the message catalog. A nil catalog is ignored so the
// Reader always has usable strings.
func (r *Reader) SetCatalog(c *messages.Catalog) {
	if c != nil {
		r.msgs = c
	}
}

// line reads one raw line, byte by byte so nothing past the newline is
// consumed. Menus hand the same source to nested menus; a buffered read
// here would swallow lines that belong to them. Returns io.EOF once the
// source is exhausted.
func (r *Reader) line() (string, error) {
	var line []byte
	for {
		n, err := r.src.Read(r.scratch[:])
		if n > 0 {
			if r.scratch[0] == '\n' {
				return string(trimCR(line)), nil
			}
			line = append(line, r.scratch[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(line) > 0 {
					return string(trimCR(line)), nil
				}
				return "", io.EOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// trimCR drops a trailing carriage return so CRLF sources behave like LF.
func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

// token reads the first whitespace-separated field of the next non-blank
// line. The rest of the line is discarded, which is what keeps a bad
// input line from being parsed twice. Blank lines are skipped silently.
func (r *Reader) token() (string, error) {
	for {
		line, err := r.line()
		if err != nil {
			return "", err
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0], nil
		}
	}
}

// Clean discards the next pending line. At EOF it is a no-op.
func (r *Reader) Clean() {
	_, _ = r.line()
}

// getInput is the retry/confirm core shared by every typed prompt. It is a
// package function because methods cannot take type parameters.
func getInput[T any](r *Reader, prompt string, read func() (T, error), confirm bool) (T, error) {
	var zero T
	for {
		fmt.Fprint(r.out, prompt)

		value, err := read()
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				fmt.Fprintln(r.out, r.msgs.InvalidValue)
				continue
			}
			return zero, err
		}

		if !confirm {
			return value, nil
		}
		ok, err := r.AskConfirmationValue(value)
		if err != nil {
			return zero, err
		}
		if ok {
			return value, nil
		}
	}
}

// parseToken adapts a token parser into a read function for getInput,
// wrapping parse failures so the loop can tell them from read failures.
func parseToken[T any](r *Reader, parse func(string) (T, error)) func() (T, error) {
	return func() (T, error) {
		var zero T
		tok, err := r.token()
		if err != nil {
			return zero, err
		}
		value, err := parse(tok)
		if err != nil {
			return zero, &ParseError{Input: tok, Err: err}
		}
		return value, nil
	}
}

// Next prompts for a single whitespace-delimited token.
func (r *Reader) Next(prompt string, confirm bool) (string, error) {
	return getInput(r, prompt, r.token, confirm)
}

// NextLine prompts for one full raw line. The line may be empty.
func (r *Reader) NextLine(prompt string, confirm bool) (string, error) {
	return getInput(r, prompt, r.line, confirm)
}

// NextInt prompts for a platform-width integer.
func (r *Reader) NextInt(prompt string, confirm bool) (int, error) {
	return getInput(r, prompt, parseToken(r, strconv.Atoi), confirm)
}

// NextInt8 prompts for an 8-bit integer.
func (r *Reader) NextInt8(prompt string, confirm bool) (int8, error) {
	return getInput(r, prompt, parseToken(r, func(s string) (int8, error) {
		v, err := strconv.ParseInt(s, 10, 8)
		return int8(v), err
	}), confirm)
}

// NextInt16 prompts for a 16-bit integer.
func (r *Reader) NextInt16(prompt string, confirm bool) (int16, error) {
	return getInput(r, prompt, parseToken(r, func(s string) (int16, error) {
		v, err := strconv.ParseInt(s, 10, 16)
		return int16(v), err
	}), confirm)
}

// NextInt64 prompts for a 64-bit integer.
func (r *Reader) NextInt64(prompt string, confirm bool) (int64, error) {
	return getInput(r, prompt, parseToken(r, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}), confirm)
}

// NextFloat32 prompts for a single-precision float.
func (r *Reader) NextFloat32(prompt string, confirm bool) (float32, error) {
	return getInput(r, prompt, parseToken(r, func(s string) (float32, error) {
		v, err := strconv.ParseFloat(s, 32)
		return float32(v), err
	}), confirm)
}

// NextFloat64 prompts for a double-precision float.
func (r *Reader) NextFloat64(prompt string, confirm bool) (float64, error) {
	return getInput(r, prompt, parseToken(r, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}), confirm)
}

// NextBool prompts for a boolean. Accepts the strconv.ParseBool literals
// (true/false, t/f, 1/0, any casing of TRUE/FALSE).
func (r *Reader) NextBool(prompt string, confirm bool) (bool, error) {
	return getInput(r, prompt, parseToken(r, strconv.ParseBool), confirm)
}

// NextBigInt prompts for an arbitrary-precision base-10 integer.
func (r *Reader) NextBigInt(prompt string, confirm bool) (*big.Int, error) {
	return getInput(r, prompt, parseToken(r, func(s string) (*big.Int, error) {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, errors.New("not a base-10 integer")
		}
		return v, nil
	}), confirm)
}

// NextDecimal prompts for an arbitrary-precision decimal.
func (r *Reader) NextDecimal(prompt string, confirm bool) (decimal.Decimal, error) {
	return getInput(r, prompt, parseToken(r, decimal.NewFromString), confirm)
}

// AskSomething prints message and reads lines until one is non-empty.
// Returns true when the first rune of the lowercased answer equals
// affirmative. The answer is not trimmed: a line of spaces is an answer.
func (r *Reader) AskSomething(message string, affirmative rune) (bool, error) {
	fmt.Fprintln(r.out, message)
	for {
		line, err := r.line()
		if err != nil {
			return false, err
		}
		if line == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(strings.ToLower(line))
		return first == affirmative, nil
	}
}

// AskConfirmation asks the stock confirmation question.
func (r *Reader) AskConfirmation() (bool, error) {
	return r.AskSomething(r.msgs.Confirm, r.msgs.AffirmativeRune())
}

// AskConfirmationValue echoes value back inside the confirmation question.
func (r *Reader) AskConfirmationValue(value any) (bool, error) {
	return r.AskSomething(fmt.Sprintf(r.msgs.ConfirmValue, value), r.msgs.AffirmativeRune())
}
