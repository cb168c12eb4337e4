// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Markdown transcoding, field mapping and submission repair logic
// lives here and in internal/normalisers; services never touch HTTP.
package services
