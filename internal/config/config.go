package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/ghostix/easyconsole/internal/model"
	"github.com/ghostix/easyconsole/logger"
	"github.com/ghostix/easyconsole/menu"
	"github.com/ghostix/easyconsole/messages"
	"github.com/ghostix/easyconsole/screen"
)

// Profile holds the session settings for the demo binary.
// Load overlays a parsed file on top of Default, so zero values here
// mean "explicitly set to zero", not "absent".
type Profile struct {
	// Title is the root menu's framed title.
	Title string `json:"title,omitempty"`

	// Pattern prefixes the root menu's numbered option labels,
	// as in "Option 1", "Option 2".
	Pattern string `json:"pattern,omitempty"`

	// OptionNames relabels the root menu's options positionally,
	// replacing the patterned labels. When set, it must name every
	// option exactly once.
	OptionNames []string `json:"optionNames,omitempty"`

	// Width is the base title width before the name stretches it.
	Width int `json:"width,omitempty"`

	// Height is the number of rows in the title frame.
	Height int `json:"height,omitempty"`

	// HandleTitle toggles the framed title. Nil means enabled, which
	// keeps an empty profile equivalent to the library defaults.
	HandleTitle *bool `json:"handleTitle,omitempty"`

	// LogLevel selects the diagnostic level: debug, info, warn, error,
	// or disabled. Empty defers to the EASYCONSOLE_LOG variable.
	LogLevel string `json:"logLevel,omitempty"`

	// PrettyLog switches diagnostics from JSON lines to a
	// human-readable console writer.
	PrettyLog bool `json:"prettyLog,omitempty"`

	// MessagesPath points at a YAML bundle overriding the stock
	// console strings. Empty keeps the built-in Spanish catalog.
	MessagesPath string `json:"messagesPath,omitempty"`
}

// Default returns the profile used when no file is given: the library
// defaults with logging deferred to the environment.
func Default() *Profile {
	return &Profile{
		Title:   menu.DefaultName,
		Pattern: menu.DefaultPattern,
		Width:   screen.DefaultWidth,
		Height:  screen.DefaultHeight,
	}
}

// Load reads and parses a profile file at the given path.
// The file may contain comments and trailing commas (JSONC format).
// Parsed fields overlay the defaults, so partial profiles are valid.
//
// Returns a CLIError with ExitProfileError when the file is missing,
// malformed, or fails validation.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitProfileError,
				fmt.Sprintf("profile not found at %s", path), err)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	// Convert JSONC to standard JSON by stripping comments and
	// trailing commas, then unmarshal on top of the defaults.
	profile := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), profile); err != nil {
		return nil, model.WrapCLIError(model.ExitProfileError,
			fmt.Sprintf("failed to parse profile at %s", path), err)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// Find searches dir for a profile using the standard file names,
// preferring the JSONC spelling. Returns false when none exists, which
// callers treat as "run with defaults".
func Find(dir string) (string, bool) {
	candidates := []string{
		filepath.Join(dir, "easyconsole.jsonc"),
		filepath.Join(dir, "easyconsole.json"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Validate checks the profile fields and returns a CLIError describing
// the first problem found.
func (p *Profile) Validate() error {
	if p.Width < 0 {
		return model.NewCLIError(model.ExitProfileError,
			fmt.Sprintf("profile width must not be negative, got %d", p.Width))
	}
	if p.Height < 0 {
		return model.NewCLIError(model.ExitProfileError,
			fmt.Sprintf("profile height must not be negative, got %d", p.Height))
	}

	switch p.LogLevel {
	case "", "debug", "info", "warn", "error", "disabled":
	default:
		return model.NewCLIError(model.ExitProfileError,
			fmt.Sprintf("unknown log level %q", p.LogLevel))
	}
	return nil
}

// TitleHandling reports the effective title toggle, treating an absent
// field as enabled.
func (p *Profile) TitleHandling() bool {
	return p.HandleTitle == nil || *p.HandleTitle
}

// Level resolves the effective log level: the profile's own when set,
// otherwise the EASYCONSOLE_LOG fallback.
func (p *Profile) Level() logger.LogLevel {
	if p.LogLevel != "" {
		return logger.LogLevel(p.LogLevel)
	}
	return logger.LevelFromEnv()
}

// Catalog loads the message bundle named by the profile, or returns the
// stock catalog when no bundle is configured.
//
// Returns a CLIError with ExitBundleError when the bundle cannot be
// read or parsed.
func (p *Profile) Catalog() (*messages.Catalog, error) {
	if p.MessagesPath == "" {
		return messages.Default(), nil
	}

	catalog, err := messages.Load(p.MessagesPath)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitBundleError,
			fmt.Sprintf("messagesPath %q", p.MessagesPath), err)
	}
	return catalog, nil
}
