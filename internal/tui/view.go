package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/trickywords/internal/model"
	"github.com/verte-zerg/trickywords/internal/session"
	"github.com/verte-zerg/trickywords/internal/stats"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 3).
			Border(lipgloss.HiddenBorder(), true)
	activeButtonStyle = buttonStyle.
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(2, 0).
			Align(lipgloss.Center)
)

// View implements tea.Model.
func (m *Model) View() string {
	v := m.ctrl.Snapshot()
	var content string
	switch v.State {
	case session.Idle:
		content = m.renderPicker()
	case session.InProgress:
		content = m.renderCard(v)
	default:
		content = m.renderComplete(v)
	}

	footer := m.renderFooter(v)
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	if m.height <= footerHeight+1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderPicker() string {
	title := titleStyle.Render("Pick a tricky word group")
	all := m.catalog.All()
	if len(all) == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, title, "", mutedStyle.Render("No groups available."))
	}
	buttons := make([]string, 0, len(all))
	for i, g := range all {
		style := buttonStyle
		if i == m.cursor {
			style = activeButtonStyle
		}
		label := stats.GroupStyle(g.Color).Padding(0, 2).Render(g.Name)
		if i < maxShortcutKeys {
			label = mutedStyle.Render(fmt.Sprintf("%d ", i+1)) + label
		}
		buttons = append(buttons, style.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	return lipgloss.JoinVertical(lipgloss.Center, title, "", row)
}

func (m *Model) renderCard(v session.View) string {
	badge := stats.GroupStyle(m.group.Color).Padding(0, 1).Render(v.Group)
	if v.Review {
		badge += " " + accentStyle.Render("review")
	}
	card := cardStyle.
		Inherit(stats.GroupStyle(m.group.Color)).
		Width(m.cardWidth).
		Render(v.CurrentWord)
	lines := []string{badge, "", card, ""}
	if v.HasProgress {
		lines = append(lines, m.bar.ViewAs(v.Progress)+" "+mutedStyle.Render(fmt.Sprintf("%d/%d", v.Answered, v.Total)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderComplete(v session.View) string {
	summary := m.summary
	if !m.hasSummary {
		summary = model.PassSummary{Group: v.Group, Correct: v.Correct, Skipped: v.Skipped, Review: v.Review}
	}
	lines := []string{}
	if confetti := renderConfetti(m.confettiFrame, confettiWidth); summary.Total() > 0 && m.confettiFrame < confettiFrames {
		lines = append(lines, confetti)
	}
	lines = append(lines, titleStyle.Render(stats.Headline(summary)))
	if detail := stats.Detail(summary); detail != "" {
		lines = append(lines, mutedStyle.Render(detail), accentStyle.Render(stats.ResultBar(summary, progressWidth)))
	}
	if len(summary.Skipped) > 0 {
		lines = append(lines, "", mutedStyle.Render(wrapWords(summary.Skipped, progressWidth+8)))
	}
	lines = append(lines, "")
	if v.State == session.ReviewPrompt {
		lines = append(lines, fmt.Sprintf("You skipped %s. Press %s to review, %s to pick another group.",
			plural(v.SkippedCount(), "word"), accentStyle.Render("r"), accentStyle.Render("b")))
	} else {
		lines = append(lines, fmt.Sprintf("Press %s to pick another group.", accentStyle.Render("b")))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderFooter(v session.View) string {
	segments := []string{}
	if v.HasProgress {
		segments = append(segments, fmt.Sprintf("Progress %d%%", int(math.Round(v.Progress*100))))
		segments = append(segments, fmt.Sprintf("Known %d · Skipped %d", v.CorrectCount(), v.SkippedCount()))
	}
	lines := []string{}
	if len(segments) > 0 {
		lines = append(lines, footerStyle.Render(strings.Join(segments, "  ")))
	}
	if m.notice != "" {
		lines = append(lines, noticeStyle.Render(m.notice))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
