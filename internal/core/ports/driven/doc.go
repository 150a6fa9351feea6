// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - ReportStore: Report snapshot access
//   - ReportActionStore: Action history snapshot access
//   - PersonalDetailStore: Profile snapshot access
//   - PolicyStore: Workspace snapshot access
//   - IOUReportStore: Debt aggregate snapshot access
//   - Localizer: Translated string lookup
//   - IconResolver: Icon descriptor synthesis
//
// # Optional Interfaces
//
//   - SessionStore: Session persistence for the CLI/TUI surfaces. Library
//     callers can construct a domain.Session directly instead.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
