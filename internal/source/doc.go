// Package source reads the BSL files that feed the export build.
//
// Reads are best-effort: a missing or unreadable file is logged and treated
// as an absent fragment rather than an error.
package source
