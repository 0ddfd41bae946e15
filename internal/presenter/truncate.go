package presenter

import "unicode/utf8"

const ellipsis = "..."

// TruncateAt shortens text to at most maxLen characters, replacing the tail
// with "..." when it does not fit. Length is counted in Unicode code points,
// so a multi-byte character is never cut in half.
//
// When maxLen leaves no room for any text (maxLen <= 3) the result is the
// first maxLen characters of the ellipsis, or "" for maxLen <= 0.
func TruncateAt(text string, maxLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen <= len(ellipsis) {
		return ellipsis[:maxLen]
	}

	keep := maxLen - len(ellipsis)
	for i := range text {
		if keep == 0 {
			return text[:i] + ellipsis
		}
		keep--
	}
	// Unreachable: text has more than maxLen runes.
	return text
}
