package util

import "strings"

// ExtractSnippet returns up to maxLines lines of context around the
// 1-based [start,end] line range. A range lying entirely past the end of
// content yields the empty string.
func ExtractSnippet(content string, start, end, maxLines int) string {
	if content == "" {
		return ""
	}
	if maxLines <= 0 {
		maxLines = 6
	}
	lines := strings.Split(content, "\n")
	if start < 1 {
		start = 1
	}
	if start > len(lines) {
		return ""
	}
	if end < start {
		end = start
	}
	s := max(0, start-1-maxLines/2)
	e := min(len(lines)-1, end-1+maxLines/2)
	return strings.Join(lines[s:e+1], "\n")
}
