package model

import "strings"

// namedColors maps the CSS color keywords accepted for groups to hex values.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"red":     "#ff0000",
	"maroon":  "#800000",
	"orange":  "#ffa500",
	"yellow":  "#ffff00",
	"gold":    "#ffd700",
	"olive":   "#808000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"teal":    "#008080",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"purple":  "#800080",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
}

// TerminalColor converts v to a value lipgloss understands. Color keywords
// become hex; hex codes and ANSI numbers pass through unchanged.
func TerminalColor(v string) string {
	v = strings.TrimSpace(v)
	if hex, ok := namedColors[strings.ToLower(v)]; ok {
		return hex
	}
	return v
}
