// Package session implements the practice session state machine.
//
// A Controller walks one group of words at a time. Each answer moves the
// head of the queue into either the known or the skipped list. When the
// queue runs dry the pass is complete, and a pass with skipped words can be
// followed by a single review pass over exactly those words. Every operation
// is total: calls that make no sense in the current state do nothing.
//
// The Controller is not safe for concurrent use.
package session

import (
	"github.com/verte-zerg/trickywords/internal/model"
	"github.com/verte-zerg/trickywords/internal/order"
)

// Catalog resolves group names to groups.
type Catalog interface {
	Lookup(name string) (model.WordGroup, bool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithListener registers a listener at construction.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		c.Subscribe(l)
	}
}

type pass struct {
	remaining    []string
	correct      []string
	skipped      []string
	initialCount int
	review       bool
}

func newPass(words []string, review bool) *pass {
	return &pass{
		remaining:    words,
		correct:      []string{},
		skipped:      []string{},
		initialCount: len(words),
		review:       review,
	}
}

func (p *pass) current() (string, bool) {
	if len(p.remaining) == 0 {
		return "", false
	}
	return p.remaining[0], true
}

// Controller owns the state of a single practice session.
type Controller struct {
	catalog   Catalog
	orderer   order.Orderer
	listeners []Listener

	group string
	pass  *pass
}

// New returns an idle Controller. A nil orderer keeps catalog order.
func New(catalog Catalog, orderer order.Orderer, opts ...Option) *Controller {
	if orderer == nil {
		orderer = order.Identity{}
	}
	c := &Controller{
		catalog: catalog,
		orderer: orderer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe adds a listener. Nil listeners are ignored.
func (c *Controller) Subscribe(l Listener) {
	if l == nil {
		return
	}
	c.listeners = append(c.listeners, l)
}

// SelectGroup starts a fresh pass over the named group. Unknown names leave
// the controller untouched and return false.
func (c *Controller) SelectGroup(name string) bool {
	if c.catalog == nil {
		return false
	}
	g, ok := c.catalog.Lookup(name)
	if !ok {
		return false
	}
	c.group = g.Name
	c.pass = newPass(c.orderer.Order(g.Words), false)
	c.emit(Event{Kind: EventGroupSelected, Group: c.group})
	if len(c.pass.remaining) == 0 {
		c.emit(Event{Kind: EventPassComplete, Group: c.group, Summary: c.summary()})
	}
	return true
}

// MarkCorrect records the current word as known.
func (c *Controller) MarkCorrect() bool {
	return c.answer(true)
}

// MarkSkipped records the current word as skipped.
func (c *Controller) MarkSkipped() bool {
	return c.answer(false)
}

func (c *Controller) answer(known bool) bool {
	if c.pass == nil {
		return false
	}
	word, ok := c.pass.current()
	if !ok {
		return false
	}
	c.pass.remaining = c.pass.remaining[1:]
	kind := EventWordKnown
	if known {
		c.pass.correct = append(c.pass.correct, word)
	} else {
		c.pass.skipped = append(c.pass.skipped, word)
		kind = EventWordSkipped
	}
	c.emit(Event{Kind: kind, Group: c.group, Word: word})
	if len(c.pass.remaining) == 0 {
		c.emit(Event{Kind: EventPassComplete, Group: c.group, Summary: c.summary()})
	}
	return true
}

// StartReview begins a review pass over the skipped words of the finished
// pass, in the order they were skipped. It only works from ReviewPrompt.
func (c *Controller) StartReview() bool {
	if c.State() != ReviewPrompt {
		return false
	}
	words := append([]string(nil), c.pass.skipped...)
	c.pass = newPass(words, true)
	c.emit(Event{Kind: EventReviewStarted, Group: c.group})
	return true
}

// Reset drops the session and the selected group.
func (c *Controller) Reset() {
	group := c.group
	c.group = ""
	c.pass = nil
	c.emit(Event{Kind: EventReset, Group: group})
}

// State returns the current state tag.
func (c *Controller) State() State {
	if c.pass == nil {
		return Idle
	}
	if len(c.pass.remaining) > 0 {
		return InProgress
	}
	if len(c.pass.skipped) > 0 && !c.pass.review {
		return ReviewPrompt
	}
	return PassComplete
}

// CurrentWord returns the word being asked, if any.
func (c *Controller) CurrentWord() (string, bool) {
	if c.pass == nil {
		return "", false
	}
	return c.pass.current()
}

// Progress returns the answered fraction of the pass. It reports false when
// there is no pass or the pass started empty.
func (c *Controller) Progress() (float64, bool) {
	if c.pass == nil || c.pass.initialCount == 0 {
		return 0, false
	}
	answered := c.pass.initialCount - len(c.pass.remaining)
	return float64(answered) / float64(c.pass.initialCount), true
}

// Group returns the selected group name, or "" when idle.
func (c *Controller) Group() string {
	return c.group
}

// Snapshot returns a read-only projection of the controller.
func (c *Controller) Snapshot() View {
	v := View{State: c.State(), Group: c.group}
	if c.pass == nil {
		return v
	}
	v.CurrentWord, v.HasWord = c.pass.current()
	v.Progress, v.HasProgress = c.Progress()
	v.Total = c.pass.initialCount
	v.Answered = c.pass.initialCount - len(c.pass.remaining)
	v.Remaining = append([]string(nil), c.pass.remaining...)
	v.Correct = append([]string(nil), c.pass.correct...)
	v.Skipped = append([]string(nil), c.pass.skipped...)
	v.Review = c.pass.review
	return v
}

func (c *Controller) summary() model.PassSummary {
	return model.PassSummary{
		Group:   c.group,
		Correct: append([]string(nil), c.pass.correct...),
		Skipped: append([]string(nil), c.pass.skipped...),
		Review:  c.pass.review,
	}
}

func (c *Controller) emit(ev Event) {
	for _, l := range c.listeners {
		l(ev)
	}
}
