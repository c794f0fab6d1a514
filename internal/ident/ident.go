// Package ident generates processing identifiers for exported objects.
package ident

import (
	"strings"

	"github.com/google/uuid"
)

// NewFunc produces the raw identifier. It is a variable so tests can stub it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a random 128-bit identifier rendered as 32 uppercase hex
// characters with no separators. There is no uniqueness check across runs;
// collision probability is treated as negligible.
func New() string {
	return strings.ToUpper(strings.ReplaceAll(NewFunc(), "-", ""))
}
