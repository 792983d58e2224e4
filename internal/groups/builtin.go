package groups

import "github.com/verte-zerg/trickywords/internal/model"

var builtin = []model.WordGroup{
	{
		Name:  "Blue",
		Color: model.Color{Background: "blue", Foreground: "white"},
		Words: []string{
			"the", "to", "I", "no", "go", "into", "he", "she", "we", "me",
			"be", "was", "you", "they", "all", "are", "my", "her",
		},
	},
	{
		Name:  "Yellow",
		Color: model.Color{Background: "#ffc107", Foreground: "black"},
		Words: []string{
			"said", "have", "like", "so", "do", "some", "come", "were",
			"there", "little", "one", "when", "out", "what", "oh", "their",
			"people", "Mr", "Mrs", "looked", "called", "asked", "could",
		},
	},
}

// Builtin returns copies of the compiled-in groups.
func Builtin() []model.WordGroup {
	out := make([]model.WordGroup, len(builtin))
	for i, g := range builtin {
		out[i] = g.Clone()
	}
	return out
}

// IsBuiltin reports whether name belongs to a compiled-in group.
func IsBuiltin(name string) bool {
	for _, g := range builtin {
		if g.Name == name {
			return true
		}
	}
	return false
}
