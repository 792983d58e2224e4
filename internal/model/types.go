// Package model defines shared data structures.
package model

// Color is a background/foreground pair in lipgloss color notation.
type Color struct {
	Background string
	Foreground string
}

// WordGroup is a named, colored, ordered collection of target words.
type WordGroup struct {
	Name  string
	Color Color
	Words []string
}

// Clone returns a copy whose word slice does not alias the receiver's.
func (g WordGroup) Clone() WordGroup {
	out := g
	if g.Words != nil {
		out.Words = append([]string(nil), g.Words...)
	}
	return out
}

// Config defines practice settings.
type Config struct {
	Group     string
	Order     string
	SliceSize int
	Seed      int64
	Speak     bool
	SpeakCmd  string
	Bell      bool
}

// PassSummary describes a finished pass.
type PassSummary struct {
	Group   string
	Correct []string
	Skipped []string
	Review  bool
}

// Total returns the number of answered words.
func (s PassSummary) Total() int {
	return len(s.Correct) + len(s.Skipped)
}

// KnownRatio returns the share of words marked known, or false for an empty pass.
func (s PassSummary) KnownRatio() (float64, bool) {
	total := s.Total()
	if total == 0 {
		return 0, false
	}
	return float64(len(s.Correct)) / float64(total), true
}
