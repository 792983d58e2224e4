package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const confettiWidth = 40

var (
	confettiGlyphs = []rune("*+o.x~•")
	confettiColors = []lipgloss.Color{"#FF4D4F", "#C89A3A", "#40A9FF", "#73D13D", "#B37FEB", "#FFC107"}
)

// renderConfetti draws one line of confetti for the given animation frame.
// The pattern depends only on frame and width.
func renderConfetti(frame, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		seed := (i*7 + frame*13) ^ (i * frame)
		if seed%3 != 0 {
			b.WriteByte(' ')
			continue
		}
		glyph := confettiGlyphs[seed%len(confettiGlyphs)]
		color := confettiColors[(seed/3)%len(confettiColors)]
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(glyph)))
	}
	return b.String()
}
