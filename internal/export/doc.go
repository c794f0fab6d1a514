// Package export writes the rendered document to disk and reports the result.
package export
