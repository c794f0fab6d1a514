// Package commands defines the bslpack CLI and wires dependencies for subcommands.
//
// Commands
//
//   - build   Assemble BSL sources into a DataProcessor export XML
//
// # Implementation
//
// The root command resolves configuration (compiled-in defaults, optional
// YAML file, explicit flags, in ascending precedence) and builds the
// dependency graph (logger, source reader, export writer) before any
// subcommand runs.
package commands
