package coninput

import (
	"bytes"
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostix/easyconsole/messages"
)

// newTestReader wires a scripted input and a capturing sink.
func newTestReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReader(strings.NewReader(input), &out), &out
}

// TestNextInt_RetriesOnBadInput verifies that a malformed line is consumed,
// the invalid-value message is printed, and the following line parses.
func TestNextInt_RetriesOnBadInput(t *testing.T) {
	r, out := newTestReader("abc\n42\n")

	v, err := r.NextInt("N: ", false)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// The prompt is printed once per attempt, with the retry message
	// in between.
	assert.Equal(t, "N: Valor inválido. Por favor, intente de nuevo...\nN: ", out.String())
}

// TestNextInt_ConfirmRejectRestarts verifies that rejecting the
// confirmation re-prompts for a fresh value instead of re-asking.
func TestNextInt_ConfirmRejectRestarts(t *testing.T) {
	r, out := newTestReader("5\nn\n7\ns\n")

	v, err := r.NextInt("N: ", true)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	rendered := out.String()
	assert.Contains(t, rendered, "¿Estás seguro? Valor introducido: 5 (S/N)...")
	assert.Contains(t, rendered, "¿Estás seguro? Valor introducido: 7 (S/N)...")
}

// TestNextInt_EOF verifies that an exhausted source surfaces as an error
// instead of looping.
func TestNextInt_EOF(t *testing.T) {
	r, _ := newTestReader("")

	_, err := r.NextInt("N: ", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

// TestNextInt_BlankLinesSkipped verifies blank lines are consumed silently,
// without a retry message or a second prompt.
func TestNextInt_BlankLinesSkipped(t *testing.T) {
	r, out := newTestReader("\n\n42\n")

	v, err := r.NextInt("N: ", false)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, "N: ", out.String())
}

// TestNext_TokenTakesFirstField verifies the token variant returns the
// first field and discards the rest of the line.
func TestNext_TokenTakesFirstField(t *testing.T) {
	r, _ := newTestReader("  hola mundo  \n42\n")

	v, err := r.Next("palabra: ", false)
	require.NoError(t, err)
	assert.Equal(t, "hola", v)

	// The rest of the first line is gone; the next read sees line two.
	n, err := r.NextInt("N: ", false)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

// TestNextLine_ReturnsRawLine verifies the line variant preserves interior
// and surrounding spaces and accepts an empty line.
func TestNextLine_ReturnsRawLine(t *testing.T) {
	r, _ := newTestReader("  hola  mundo  \n\n")

	v, err := r.NextLine("texto: ", false)
	require.NoError(t, err)
	assert.Equal(t, "  hola  mundo  ", v)

	empty, err := r.NextLine("texto: ", false)
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

// TestTypedVariants spot-checks each numeric parser with a good value after
// one bad one, so every variant exercises the shared retry loop.
func TestTypedVariants(t *testing.T) {
	t.Run("int8 overflow retries", func(t *testing.T) {
		r, out := newTestReader("200\n5\n")
		v, err := r.NextInt8("b: ", false)
		require.NoError(t, err)
		assert.Equal(t, int8(5), v)
		assert.Contains(t, out.String(), "Valor inválido")
	})

	t.Run("int16", func(t *testing.T) {
		r, _ := newTestReader("-1234\n")
		v, err := r.NextInt16("s: ", false)
		require.NoError(t, err)
		assert.Equal(t, int16(-1234), v)
	})

	t.Run("int64", func(t *testing.T) {
		r, _ := newTestReader("9223372036854775807\n")
		v, err := r.NextInt64("l: ", false)
		require.NoError(t, err)
		assert.Equal(t, int64(9223372036854775807), v)
	})

	t.Run("float32", func(t *testing.T) {
		r, _ := newTestReader("2.5\n")
		v, err := r.NextFloat32("f: ", false)
		require.NoError(t, err)
		assert.Equal(t, float32(2.5), v)
	})

	t.Run("float64 retries on comma decimal", func(t *testing.T) {
		r, _ := newTestReader("3,14\n3.14\n")
		v, err := r.NextFloat64("d: ", false)
		require.NoError(t, err)
		assert.Equal(t, 3.14, v)
	})

	t.Run("bool", func(t *testing.T) {
		r, _ := newTestReader("si\ntrue\n")
		v, err := r.NextBool("b: ", false)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("big integer", func(t *testing.T) {
		r, _ := newTestReader("123456789012345678901234567890\n")
		v, err := r.NextBigInt("n: ", false)
		require.NoError(t, err)

		want, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
		require.True(t, ok)
		assert.Zero(t, v.Cmp(want))
	})

	t.Run("decimal", func(t *testing.T) {
		r, _ := newTestReader("3.1415926535897932384626433\n")
		v, err := r.NextDecimal("d: ", false)
		require.NoError(t, err)

		want, err := decimal.NewFromString("3.1415926535897932384626433")
		require.NoError(t, err)
		assert.True(t, v.Equal(want))
	})
}

// TestAskSomething covers the affirmative comparison: case-insensitive
// first rune, blank lines skipped, untrimmed answers.
func TestAskSomething(t *testing.T) {
	t.Run("affirmative", func(t *testing.T) {
		r, out := newTestReader("Si claro\n")
		ok, err := r.AskSomething("¿Continuar?", 's')
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "¿Continuar?\n", out.String())
	})

	t.Run("negative", func(t *testing.T) {
		r, _ := newTestReader("NO\n")
		ok, err := r.AskSomething("¿Continuar?", 's')
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		r, _ := newTestReader("\n\nsi\n")
		ok, err := r.AskSomething("¿Continuar?", 's')
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("spaces are an answer", func(t *testing.T) {
		r, _ := newTestReader("   \n")
		ok, err := r.AskSomething("¿Continuar?", 's')
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("eof", func(t *testing.T) {
		r, _ := newTestReader("")
		_, err := r.AskSomething("¿Continuar?", 's')
		assert.ErrorIs(t, err, io.EOF)
	})
}

// TestAskConfirmation_CatalogOverride verifies a replaced catalog changes
// both the question and the affirmative rune.
func TestAskConfirmation_CatalogOverride(t *testing.T) {
	r, out := newTestReader("yes\n")

	c := messages.Default()
	c.Confirm = "Are you sure? (Y/N)..."
	c.Affirmative = "y"
	r.SetCatalog(c)

	ok, err := r.AskConfirmation()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Are you sure? (Y/N)...")
}

// TestClean_DiscardsOneLine verifies Clean drops exactly one pending line.
func TestClean_DiscardsOneLine(t *testing.T) {
	r, _ := newTestReader("sobras\n42\n")

	r.Clean()
	v, err := r.NextInt("N: ", false)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

// TestSharedSource_ReadersInterleave verifies a Reader never consumes past
// the line it returns, so two Readers can take turns on one source. This is
// the contract that lets a root menu hand its input stream to sub-menus.
func TestSharedSource_ReadersInterleave(t *testing.T) {
	src := strings.NewReader("1\n2\n3\n")
	var out bytes.Buffer

	outer := NewReader(src, &out)
	inner := NewReader(src, &out)

	v, err := outer.NextInt("", false)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = inner.NextInt("", false)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = outer.NextInt("", false)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

// TestNextLine_CRLF verifies carriage returns are stripped at line ends.
func TestNextLine_CRLF(t *testing.T) {
	r, _ := newTestReader("hola\r\n")

	v, err := r.NextLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "hola", v)
}

// TestNextLine_LastLineWithoutNewline verifies a final unterminated line is
// still returned before EOF is reported.
func TestNextLine_LastLineWithoutNewline(t *testing.T) {
	r, _ := newTestReader("final")

	v, err := r.NextLine("", false)
	require.NoError(t, err)
	assert.Equal(t, "final", v)

	_, err = r.NextLine("", false)
	assert.ErrorIs(t, err, io.EOF)
}
