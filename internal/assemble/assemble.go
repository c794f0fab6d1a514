package assemble

import "strings"

// Region markers delimiting the public-interface section of the exports
// source. Both literals are part of the extracted region.
const (
	RegionStart = "#Область ПрограммныйИнтерфейс"
	RegionEnd   = "#КонецОбласти"
)

const separator = "\n\n"

// Module concatenates the primary module body, the public-interface region
// of the exports text, and the extensions text, in that fixed order. Every
// appended fragment is preceded by a blank line.
func Module(primary, exports, extensions string) string {
	text := primary
	if region, ok := Region(exports); ok {
		text += separator + region
	}
	if extensions != "" {
		text += separator + extensions
	}
	return text
}

// Region returns the slice of text from RegionStart through RegionEnd,
// inclusive of both markers. It reports false when the start marker is
// absent, or when no end marker follows it: a partial region is never
// emitted into the module.
func Region(text string) (string, bool) {
	start := strings.Index(text, RegionStart)
	if start < 0 {
		return "", false
	}
	bodyStart := start + len(RegionStart)
	end := strings.Index(text[bodyStart:], RegionEnd)
	if end < 0 {
		return "", false
	}
	return text[start : bodyStart+end+len(RegionEnd)], true
}
