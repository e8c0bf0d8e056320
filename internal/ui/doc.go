// Package ui provides terminal UI components for conkygen's CLI output.
//
// The package includes styled text helpers, tables, and a branded header
// using the Lip Gloss library for consistent terminal styling across all
// commands. Status output is written to stderr so the generated Conky
// configuration on stdout stays clean when redirected to a file.
//
// # Components Overview
//
//	Header        - Branded version header for human-facing commands
//	Probe table   - Probe status rows for the probes command
//	Findings      - Validation findings grouped per device
//	Simple table  - Generic column/row rendering for listings
//
// # Color Scheme
//
// Colors are defined as hex values and downsampled by Lip Gloss for
// terminals with smaller palettes:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (amber)  - Warnings and skipped items
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorSecondary (blue)   - In-progress indicators
//
// Use ConfigureColors("auto"|"always"|"never") to honor the --color flag,
// or DisableColors() to force monochrome output.
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  - Step completed successfully
//	SymbolFail     - Step failed
//	SymbolPending  - Step not yet started
//	SymbolProgress - Step in progress
//	SymbolComplete - Step done (alternative)
//	SymbolSkipped  - Step skipped
//	SymbolWarning  - Non-fatal problem
package ui
