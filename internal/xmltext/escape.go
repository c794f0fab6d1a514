// Package xmltext escapes module source for embedding in the export document.
package xmltext

import "strings"

// Escape replaces &, < and > with their entity equivalents, ampersand first
// so entities introduced by the later substitutions are not re-escaped.
// Quotes pass through unchanged: the text lands inside a CDATA block, where
// quote entities would corrupt the source. Not idempotent; callers escape a
// module exactly once.
func Escape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
