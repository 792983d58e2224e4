package session

// State tags the controller's position in the practice cycle.
type State int

const (
	// Idle means no group is selected.
	Idle State = iota
	// InProgress means a word is waiting for an answer.
	InProgress
	// PassComplete means the queue is empty and the only exit is Reset.
	PassComplete
	// ReviewPrompt is PassComplete with skipped words that can be reviewed.
	ReviewPrompt
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InProgress:
		return "in-progress"
	case PassComplete:
		return "pass-complete"
	case ReviewPrompt:
		return "review-prompt"
	default:
		return "unknown"
	}
}

// Done reports whether the pass has no words left.
func (s State) Done() bool {
	return s == PassComplete || s == ReviewPrompt
}
