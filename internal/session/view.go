package session

// View is a read-only copy of the controller state for rendering.
type View struct {
	State State
	Group string

	CurrentWord string
	HasWord     bool

	Progress    float64
	HasProgress bool

	Answered int
	Total    int
	Review   bool

	Remaining []string
	Correct   []string
	Skipped   []string
}

// SkippedCount returns the number of words skipped this pass.
func (v View) SkippedCount() int {
	return len(v.Skipped)
}

// CorrectCount returns the number of words known this pass.
func (v View) CorrectCount() int {
	return len(v.Correct)
}
