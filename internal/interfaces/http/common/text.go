package common

// TruncateRunes shortens s to at most limit runes. Multi-byte text counts
// by runes, not bytes, so Japanese descriptions truncate cleanly.
func TruncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
