// Package tui provides the Bubble Tea flashcard interface.
package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/trickywords/internal/groups"
	"github.com/verte-zerg/trickywords/internal/model"
	"github.com/verte-zerg/trickywords/internal/order"
	"github.com/verte-zerg/trickywords/internal/session"
	"github.com/verte-zerg/trickywords/internal/speech"
)

const (
	speakTimeout    = 5 * time.Second
	confettiFrames  = 24
	confettiEvery   = 90 * time.Millisecond
	cardPadding     = 12
	progressWidth   = 32
	maxShortcutKeys = 9
)

type spokenMsg struct {
	word string
	err  error
}

type confettiMsg struct {
	id int
}

// Options configures the side effects attached to a session.
type Options struct {
	// Group is selected right away when it exists in the catalog.
	Group string
	// Speaker reads skipped words aloud. Nil disables speech.
	Speaker speech.Speaker
	// BellOut receives a terminal bell when a pass completes. Nil disables it.
	BellOut io.Writer
}

// Model implements the Bubble Tea flashcard UI.
type Model struct {
	catalog *groups.Catalog
	ctrl    *session.Controller
	speaker speech.Speaker
	bellOut io.Writer

	keys keyMap
	help help.Model
	bar  progress.Model

	width  int
	height int

	cursor    int
	group     model.WordGroup
	cardWidth int

	summary    model.PassSummary
	hasSummary bool

	confettiID    int
	confettiFrame int

	notice string

	pending []tea.Cmd
}

// NewModel constructs a flashcard TUI model around a new session controller.
func NewModel(catalog *groups.Catalog, orderer order.Orderer, opts Options) *Model {
	m := &Model{
		catalog: catalog,
		speaker: opts.Speaker,
		bellOut: opts.BellOut,
		keys:    newKeyMap(),
		help:    help.New(),
		bar: progress.New(
			progress.WithSolidFill("#C89A3A"),
			progress.WithoutPercentage(),
			progress.WithWidth(progressWidth),
		),
	}
	m.ctrl = session.New(catalog, orderer, session.WithListener(m.onEvent))
	if opts.Group != "" {
		for i, name := range catalog.Names() {
			if name == opts.Group {
				m.cursor = i
			}
		}
		m.ctrl.SelectGroup(opts.Group)
	}
	m.keys.enableFor(m.ctrl.State())
	return m
}

// Controller exposes the underlying session controller.
func (m *Model) Controller() *session.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.drain()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case spokenMsg:
		if msg.err != nil {
			m.notice = "speech failed: " + msg.err.Error()
		}
		return m, nil
	case confettiMsg:
		if msg.id != m.confettiID || m.confettiFrame >= confettiFrames {
			return m, nil
		}
		m.confettiFrame++
		if m.confettiFrame >= confettiFrames {
			return m, nil
		}
		return m, confettiTick(m.confettiID)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.keys.enableFor(m.ctrl.State())
		return m, m.drain()
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Prev):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Next):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Choose):
		m.choose(m.cursor)
	case key.Matches(msg, m.keys.Known):
		m.ctrl.MarkCorrect()
	case key.Matches(msg, m.keys.Skip):
		m.ctrl.MarkSkipped()
	case key.Matches(msg, m.keys.Review):
		m.ctrl.StartReview()
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Reset()
	default:
		if m.ctrl.State() == session.Idle {
			if idx, ok := shortcutIndex(msg); ok {
				m.choose(idx)
			}
		}
	}
}

func shortcutIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '0'+maxShortcutKeys {
		return 0, false
	}
	return int(r - '1'), true
}

func (m *Model) moveCursor(delta int) {
	n := m.catalog.Len()
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Model) choose(idx int) {
	names := m.catalog.Names()
	if idx < 0 || idx >= len(names) {
		return
	}
	m.cursor = idx
	m.ctrl.SelectGroup(names[idx])
}

// onEvent turns controller events into UI state and queued commands.
func (m *Model) onEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventGroupSelected:
		m.group, _ = m.catalog.Lookup(ev.Group)
		m.cardWidth = cardWidthFor(m.group.Words)
		m.hasSummary = false
		m.notice = ""
	case session.EventReviewStarted:
		m.hasSummary = false
	case session.EventWordSkipped:
		if m.speaker != nil {
			m.pending = append(m.pending, speakCmd(m.speaker, ev.Word))
		}
	case session.EventPassComplete:
		m.summary = ev.Summary
		m.hasSummary = true
		if ev.Summary.Total() == 0 {
			return
		}
		m.confettiID++
		m.confettiFrame = 0
		m.pending = append(m.pending, confettiTick(m.confettiID))
		if m.bellOut != nil {
			m.pending = append(m.pending, bellCmd(m.bellOut))
		}
	case session.EventReset:
		m.group = model.WordGroup{}
		m.hasSummary = false
		m.notice = ""
	}
}

func (m *Model) drain() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func speakCmd(s speech.Speaker, word string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		defer cancel()
		return spokenMsg{word: word, err: s.Speak(ctx, word)}
	}
}

func bellCmd(w io.Writer) tea.Cmd {
	return func() tea.Msg {
		if err := speech.Bell(w); err != nil {
			// Best-effort bell.
			_ = err
		}
		return nil
	}
}

func confettiTick(id int) tea.Cmd {
	return tea.Tick(confettiEvery, func(time.Time) tea.Msg {
		return confettiMsg{id: id}
	})
}

func cardWidthFor(words []string) int {
	widest := 0
	for _, w := range words {
		if width := runewidth.StringWidth(w); width > widest {
			widest = width
		}
	}
	return widest + cardPadding
}
