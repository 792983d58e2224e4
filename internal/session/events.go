package session

import "github.com/verte-zerg/trickywords/internal/model"

// EventKind identifies a controller notification.
type EventKind int

const (
	EventGroupSelected EventKind = iota + 1
	EventWordKnown
	EventWordSkipped
	EventPassComplete
	EventReviewStarted
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventGroupSelected:
		return "group-selected"
	case EventWordKnown:
		return "word-known"
	case EventWordSkipped:
		return "word-skipped"
	case EventPassComplete:
		return "pass-complete"
	case EventReviewStarted:
		return "review-started"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted after a transition has been applied.
type Event struct {
	Kind  EventKind
	Group string
	// Word is set for EventWordKnown and EventWordSkipped.
	Word string
	// Summary is set for EventPassComplete.
	Summary model.PassSummary
}

// Listener receives controller events. It runs on the caller's goroutine
// and must not block; slow side effects belong in their own goroutine.
type Listener func(Event)
