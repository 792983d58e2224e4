package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/trickywords/internal/model"
)

// GroupRow describes a group for listing.
type GroupRow struct {
	Group   model.WordGroup
	Builtin bool
}

// RenderGroupTable prints one line per group. Swatches are drawn only when useColor is set.
func RenderGroupTable(w io.Writer, rows []GroupRow, useColor bool) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No groups found.")
		return err
	}
	tbl := newTable(
		column{header: "Group"},
		column{header: "Words", right: true},
		column{header: "Source"},
		column{header: "Colors"},
		column{header: "Preview"},
	)
	for _, r := range rows {
		name := r.Group.Name
		if useColor {
			name = GroupStyle(r.Group.Color).Render(name)
		}
		source := "custom"
		if r.Builtin {
			source = "builtin"
		}
		tbl.addRow(
			name,
			fmt.Sprintf("%d", len(r.Group.Words)),
			source,
			colorLabel(r.Group.Color),
			preview(r.Group.Words, 5),
		)
	}
	for _, line := range tbl.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// GroupStyle returns the lipgloss style for a group's colors. Empty colors
// leave the terminal default in place.
func GroupStyle(c model.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Background != "" {
		style = style.Background(lipgloss.Color(model.TerminalColor(c.Background)))
	}
	if c.Foreground != "" {
		style = style.Foreground(lipgloss.Color(model.TerminalColor(c.Foreground)))
	}
	return style
}

func colorLabel(c model.Color) string {
	if c.Background == "" && c.Foreground == "" {
		return "default"
	}
	return fmt.Sprintf("%s on %s", orDefault(c.Foreground), orDefault(c.Background))
}

func orDefault(v string) string {
	if v == "" {
		return "default"
	}
	return v
}

func preview(words []string, n int) string {
	if len(words) <= n {
		return strings.Join(words, ", ")
	}
	return strings.Join(words[:n], ", ") + ", …"
}

// Headline returns the short result line for a finished pass.
func Headline(s model.PassSummary) string {
	ratio, ok := s.KnownRatio()
	if !ok {
		return "No words in this group."
	}
	switch {
	case len(s.Skipped) == 0 && s.Review:
		return "Review done. You know them all now!"
	case len(s.Skipped) == 0:
		return "Amazing! You knew every word!"
	case ratio >= 0.5:
		return "Great work!"
	default:
		return "Good practice!"
	}
}

// Detail returns the known/skipped breakdown for a finished pass.
func Detail(s model.PassSummary) string {
	ratio, ok := s.KnownRatio()
	if !ok {
		return ""
	}
	pct := int(math.Round(ratio * 100))
	return fmt.Sprintf("%d of %d known (%d%%) · %d skipped", len(s.Correct), s.Total(), pct, len(s.Skipped))
}

// ResultBar renders known words as filled cells and skipped words as empty ones.
func ResultBar(s model.PassSummary, width int) string {
	total := s.Total()
	if total == 0 || width <= 0 {
		return ""
	}
	filled := int(math.Round(float64(len(s.Correct)) / float64(total) * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
