// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The option pipeline is synchronous and side-effect-free: each call reads
// store snapshots once, derives fresh options and returns them. Nothing is
// cached between calls and inputs are never mutated.
package services
