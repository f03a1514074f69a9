// Package textclip trims strings to byte budgets without splitting UTF-8
// sequences.
package textclip

import "unicode/utf8"

// String returns the longest prefix of s that fits in maxBytes without
// ending in a partial rune. Invalid bytes earlier in s are kept as they are.
// The second result reports whether s was shortened.
func String(s string, maxBytes int) (string, bool) {
	if maxBytes <= 0 {
		return "", s != ""
	}
	if len(s) <= maxBytes {
		return s, false
	}
	cut := maxBytes
	for i := 0; i < utf8.UTFMax-1 && cut > 0 && !utf8.RuneStart(s[cut]); i++ {
		cut--
	}
	if !utf8.RuneStart(s[cut]) {
		// a run of stray continuation bytes, not a split rune
		cut = maxBytes
	}
	return s[:cut], true
}

// Runes is like String but budgets in runes, for display columns.
func Runes(s string, maxRunes int, ellipsis string) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	if maxRunes <= 0 {
		return ""
	}
	r := []rune(s)
	keep := maxRunes - utf8.RuneCountInString(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string(r[:keep]) + ellipsis
}

// Lines returns a prefix of lines whose "\n"-joined size is at most
// maxBytes. The first line that does not fit is clipped with String.
func Lines(lines []string, maxBytes int) (out []string, truncated bool) {
	if maxBytes <= 0 {
		return nil, len(lines) > 0
	}

	used := 0
	for _, line := range lines {
		sep := 0
		if len(out) > 0 {
			sep = 1
		}

		if used+sep+len(line) <= maxBytes {
			out = append(out, line)
			used += sep + len(line)
			continue
		}

		remaining := maxBytes - used - sep
		if remaining <= 0 {
			return out, true
		}
		clipped, _ := String(line, remaining)
		return append(out, clipped), true
	}
	return out, false
}
