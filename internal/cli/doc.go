// Package cli implements the conkygen command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to pipeline functions for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Pipeline orchestration (settings, parse, design lookup, render)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command generates configuration directly; subcommands cover
// everything around it:
//
//	conkygen <data-file> [design]  - Generate Conky configuration
//	conkygen designs               - List design units
//	conkygen validate <data-file>  - Check a data file
//	conkygen probes                - List or run external probes
//	conkygen init                  - Create a starter data file
//
// # Generation Pipeline
//
// The generate function drives the root command through five phases, and
// probes --check reuses the settings and resolver phases:
//
//  1. Load and validate settings (flag overrides applied)
//  2. Load the data file and parse it into an Environment
//  3. Look up the design unit in the built-in registry
//  4. Build a fresh Resolver and expression Factory for this run
//  5. Render the design and wrap it in the document frame
//
// Each run constructs its own Resolver, so probe results never leak between
// invocations. Generated text goes to stdout while status messages and
// errors go to stderr, so redirecting stdout captures only configuration.
//
// # Flag Handling
//
// Global flags (--config, --color, --probe-timeout, --quiet) are defined on
// the root command and available to all subcommands. Command-specific flags
// like --output and --check are defined on individual commands.
package cli
