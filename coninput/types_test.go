package coninput

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTypeString covers the short names prompts embed for every kind.
func TestTypeString(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{String(), "string"},
		{Int(), "int"},
		{Int8(), "int8"},
		{Int16(), "int16"},
		{Int64(), "int64"},
		{Float32(), "float32"},
		{Float64(), "float64"},
		{Bool(), "bool"},
		{BigInt(), "big.Int"},
		{Decimal(), "decimal.Decimal"},
		{Stdin(), "io.Reader"},
		{Stdout(), "io.Writer"},
		{SliceOf(Int()), "[]int"},
		{SliceOf(SliceOf(String())), "[][]string"},
		{Object("Contacto"), "Contacto"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.typ.String())
	}
}

// TestSliceOf_CopiesElement verifies the element type is captured by value,
// so mutating the original afterwards does not change the slice type.
func TestSliceOf_CopiesElement(t *testing.T) {
	elem := Int()
	s := SliceOf(elem)
	elem.Kind = KindString

	assert.Equal(t, KindInt, s.Elem.Kind)
	assert.Equal(t, "[]int", s.String())
}
