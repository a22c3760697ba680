// Package coninput collects typed values from a console-style line stream.
//
// Reader is the prompt layer: every typed prompt retries on malformed
// input and can echo the parsed value back for confirmation. Builder sits
// on top and assembles whole values: scalars through the matching prompt,
// slices element by element, and registered object types by collecting
// each factory parameter recursively.
//
// Key behaviors:
//   - a line that fails to parse is fully consumed before the retry, so
//     the same bad input is never parsed twice
//   - a rejected confirmation restarts the whole prompt with a fresh read
//   - read failures (EOF, broken source) surface as errors; they are the
//     only way a prompt call returns without a value
//
// Everything reads from an injected io.Reader and writes to an injected
// io.Writer, so tests drive sessions with strings.Reader and capture the
// rendered output in a buffer. Reads never consume past the current line's
// newline, which lets several Readers take turns on one shared source.
package coninput
