package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapWords joins words with ", " and breaks lines so none exceeds width
// display cells, unless a single word is wider than width.
func wrapWords(words []string, width int) string {
	if len(words) == 0 {
		return ""
	}
	if width <= 0 {
		return strings.Join(words, ", ")
	}
	var out strings.Builder
	lineWidth := 0
	for i, word := range words {
		item := word
		if i < len(words)-1 {
			item += ","
		}
		itemWidth := runewidth.StringWidth(item)
		switch {
		case lineWidth == 0:
		case lineWidth+1+itemWidth > width:
			out.WriteByte('\n')
			lineWidth = 0
		default:
			out.WriteByte(' ')
			lineWidth++
		}
		out.WriteString(item)
		lineWidth += itemWidth
	}
	return out.String()
}
