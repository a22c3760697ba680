package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ghostix/easyconsole/menu"
	"github.com/ghostix/easyconsole/messages"
)

// chdir moves the test into dir and restores the old working directory
// on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// TestResolveProfile_ExplicitPathMustExist verifies that --profile
// never falls back silently.
func TestResolveProfile_ExplicitPathMustExist(t *testing.T) {
	_, err := resolveProfile(filepath.Join(t.TempDir(), "no-such.jsonc"))
	assert.Error(t, err)
}

// TestResolveProfile_FindsWorkingDirProfile verifies the implicit
// working-directory lookup.
func TestResolveProfile_FindsWorkingDirProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "easyconsole.jsonc"),
		[]byte(`{"title": "Kiosko"}`), 0o644))
	chdir(t, dir)

	profile, err := resolveProfile("")
	require.NoError(t, err)
	assert.Equal(t, "Kiosko", profile.Title)
}

// TestResolveProfile_DefaultsWhenNothingFound verifies a bare working
// directory yields the built-in defaults.
func TestResolveProfile_DefaultsWhenNothingFound(t *testing.T) {
	chdir(t, t.TempDir())

	profile, err := resolveProfile("")
	require.NoError(t, err)
	assert.Equal(t, menu.DefaultName, profile.Title)
	assert.Equal(t, menu.DefaultPattern, profile.Pattern)
}

// TestMessagesCommand verifies the YAML dump is a loadable bundle that
// reproduces the stock catalog.
func TestMessagesCommand(t *testing.T) {
	rootCmd := NewRootCommand()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"messages"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Cerrando el programa.")

	var catalog messages.Catalog
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &catalog))
	assert.Equal(t, *messages.Default(), catalog)
}
