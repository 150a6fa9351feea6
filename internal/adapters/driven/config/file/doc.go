// Package file provides file-based configuration adapters.
//
// SessionStore persists the signed-in user's session as a TOML file in the
// chatpick config directory, created with restricted permissions.
package file
