package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableTarget declares a fixed capability table.
type tableTarget struct {
	ops []Operation
}

func (t *tableTarget) Operations() []Operation { return t.ops }

// namedTarget builds a target whose operations only need names.
func namedTarget(names ...string) Target {
	ops := make([]Operation, len(names))
	for i, name := range names {
		ops[i] = Operation{Name: name, Invoke: func([]any) error { return nil }}
	}
	return &tableTarget{ops: ops}
}

// TestDiscover_Filters verifies accessor prefixes, the blocklist, and
// hidden names are all excluded.
func TestDiscover_Filters(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha", "beta", "getFoo", "setFoo", "run"), []string{"beta"})

	assert.Equal(t, []string{"alpha"}, s.Labels())
}

// TestDiscover_BlocklistedNames verifies every blocklisted name is skipped.
func TestDiscover_BlocklistedNames(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget(
		"run", "wait", "equals", "toString", "hashCode",
		"getClass", "notify", "notifyAll", "vivo",
	), nil)

	assert.Equal(t, []string{"vivo"}, s.Labels())
}

// TestDiscover_CustomClaimsName verifies a custom option set before
// discovery excludes the same-named operation, while setting custom
// options afterwards does not re-filter.
func TestDiscover_CustomClaimsName(t *testing.T) {
	s := NewOptionSet()
	s.SetCustomOptions([]string{"extras"})
	s.Discover(namedTarget("alpha", "extras"), nil)
	assert.Equal(t, []string{"alpha"}, s.Labels())

	s2 := NewOptionSet()
	s2.Discover(namedTarget("alpha", "extras"), nil)
	s2.SetCustomOptions([]string{"extras"})
	assert.Equal(t, []string{"alpha", "extras"}, s2.Labels())
	assert.Equal(t, []string{"extras"}, s2.CustomLabels())
}

// TestDiscover_NilTarget verifies a nil target leaves no regular options.
func TestDiscover_NilTarget(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha"), nil)
	s.Discover(nil, nil)

	assert.Empty(t, s.Labels())
}

// TestExit_WithCustoms verifies the exit number with custom options is one
// past all entries.
func TestExit_WithCustoms(t *testing.T) {
	s := NewOptionSet()
	s.SetCustomOptions([]string{"x", "y"})
	s.Discover(namedTarget("alpha", "beta", "gamma"), nil)

	assert.Equal(t, 6, s.Exit())
}

// TestExit_NoCustoms verifies the exit number without custom options is
// the regular count.
func TestExit_NoCustoms(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha", "beta"), nil)

	assert.Equal(t, 2, s.Exit())
}

// TestExit_TracksMutations verifies the exit number reflects every
// structural change immediately.
func TestExit_TracksMutations(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha", "beta"), nil)
	require.Equal(t, 2, s.Exit())

	s.SetCustomOptions([]string{"z"})
	assert.Equal(t, 4, s.Exit())

	s.SetCustomOptions(nil)
	assert.Equal(t, 2, s.Exit())
}

// TestOperationAt verifies rank resolution against the sorted labels and
// the custom/out-of-range rejections.
func TestOperationAt(t *testing.T) {
	s := NewOptionSet()
	s.SetCustomOptions([]string{"x"})
	s.Discover(namedTarget("beta", "alpha"), nil)

	op, ok := s.OperationAt(1)
	require.True(t, ok)
	assert.Equal(t, "alpha", op.Name)

	op, ok = s.OperationAt(2)
	require.True(t, ok)
	assert.Equal(t, "beta", op.Name)

	_, ok = s.OperationAt(0)
	assert.False(t, ok)
	_, ok = s.OperationAt(3) // custom range
	assert.False(t, ok)
}

// TestCustomAt verifies the reverse resolution: custom-range ranks map
// to custom labels and everything else reports false.
func TestCustomAt(t *testing.T) {
	s := NewOptionSet()
	s.SetCustomOptions([]string{"y", "x"})
	s.Discover(namedTarget("alpha", "beta", "gamma"), nil)

	label, ok := s.CustomAt(4)
	require.True(t, ok)
	assert.Equal(t, "x", label)

	label, ok = s.CustomAt(5)
	require.True(t, ok)
	assert.Equal(t, "y", label)

	for _, rank := range []int{0, 1, 3, 6} {
		_, ok := s.CustomAt(rank)
		assert.False(t, ok, "rank %d is outside the custom range", rank)
	}
}

// TestRenameMethod verifies single renames move the label and the rank.
func TestRenameMethod(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("beta", "alpha"), nil)

	require.NoError(t, s.RenameMethod("beta", "aaa"))
	assert.Equal(t, []string{"aaa", "alpha"}, s.Labels())

	op, ok := s.OperationAt(1)
	require.True(t, ok)
	assert.Equal(t, "beta", op.Name)
}

// TestRenameMethod_Failures verifies the failure modes leave the set
// untouched.
func TestRenameMethod_Failures(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha", "beta"), nil)

	assert.ErrorIs(t, s.RenameMethod("gamma", "x"), ErrLabelNotFound)
	assert.ErrorIs(t, s.RenameMethod("alpha", "beta"), ErrDuplicateLabel)
	assert.Equal(t, []string{"alpha", "beta"}, s.Labels())

	// Renaming to the same label is a no-op, not a duplicate.
	assert.NoError(t, s.RenameMethod("alpha", "alpha"))
}

// TestRenameMethods_Bulk verifies a complete relabeling in one unit.
func TestRenameMethods_Bulk(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha", "beta"), nil)

	require.NoError(t, s.RenameMethods(map[string]string{
		"alpha": "Agregar",
		"beta":  "Borrar",
	}))
	assert.Equal(t, []string{"Agregar", "Borrar"}, s.Labels())
}

// TestRenameMethods_CardinalityMismatch verifies a wrong-sized bulk rename
// reports the mismatch and changes nothing.
func TestRenameMethods_CardinalityMismatch(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha", "beta"), nil)

	err := s.RenameMethods(map[string]string{"alpha": "Agregar"})
	assert.ErrorIs(t, err, ErrCardinalityMismatch)
	assert.Equal(t, []string{"alpha", "beta"}, s.Labels())
}

// TestRenameMethods_OtherFailures verifies absent sources and colliding
// destinations also leave the set untouched.
func TestRenameMethods_OtherFailures(t *testing.T) {
	s := NewOptionSet()
	s.Discover(namedTarget("alpha", "beta"), nil)

	err := s.RenameMethods(map[string]string{"alpha": "x", "gamma": "y"})
	assert.ErrorIs(t, err, ErrLabelNotFound)
	assert.Equal(t, []string{"alpha", "beta"}, s.Labels())

	err = s.RenameMethods(map[string]string{"alpha": "x", "beta": "x"})
	assert.ErrorIs(t, err, ErrDuplicateLabel)
	assert.Equal(t, []string{"alpha", "beta"}, s.Labels())
}

// TestRenameCustom verifies custom labels rename independently of the
// regular options.
func TestRenameCustom(t *testing.T) {
	s := NewOptionSet()
	s.SetCustomOptions([]string{"x", "y"})
	s.Discover(namedTarget("alpha"), nil)

	require.NoError(t, s.RenameCustom("x", "Extras"))
	assert.Equal(t, []string{"Extras", "y"}, s.CustomLabels())
	assert.Equal(t, []string{"alpha"}, s.Labels())
	assert.Equal(t, 4, s.Exit())
}

// TestRenameCustoms_Positional verifies positional relabeling against the
// current display order.
func TestRenameCustoms_Positional(t *testing.T) {
	s := NewOptionSet()
	s.SetCustomOptions([]string{"y", "x"})

	require.NoError(t, s.RenameCustoms([]string{"Primero", "Segundo"}))
	// "x" sorted first, so it became "Primero".
	assert.Equal(t, []string{"Primero", "Segundo"}, s.CustomLabels())
}

// TestRenameCustoms_Failures verifies count and duplicate rejections leave
// the custom labels untouched.
func TestRenameCustoms_Failures(t *testing.T) {
	s := NewOptionSet()
	s.SetCustomOptions([]string{"x", "y"})

	assert.ErrorIs(t, s.RenameCustoms([]string{"solo"}), ErrCardinalityMismatch)
	assert.ErrorIs(t, s.RenameCustoms([]string{"a", "a"}), ErrDuplicateLabel)
	assert.Equal(t, []string{"x", "y"}, s.CustomLabels())
}
