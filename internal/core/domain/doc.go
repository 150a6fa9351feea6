// Package domain defines the core business entities for chatpick.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Report: A snapshot of a conversation (chat, room, expense chat)
//   - PersonalDetail: A snapshot of a user profile, keyed by login
//   - IOUReport: An aggregate debt record referenced by reports
//   - Option: A derived, renderable picker row
//   - ListOptions: The configuration bag for one pipeline run
//   - Session: The per-user context injected into every call
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
