// Package config loads the demo binary's optional session profile.
//
// A profile customizes a session without recompiling: root menu title,
// option label pattern, title geometry, logging, and an optional
// message-bundle path. Profiles are hand-edited files, so comments and
// trailing commas are allowed; the bytes pass through
// github.com/tidwall/jsonc before encoding/json sees them.
//
// Every field is optional. Absent fields keep the library defaults, so
// an empty file is a valid profile.
package config
