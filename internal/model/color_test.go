package model

import "testing"

func TestTerminalColor(t *testing.T) {
	cases := map[string]string{
		"blue":    "#0000ff",
		" White ": "#ffffff",
		"#ffc107": "#ffc107",
		"12":      "12",
		"":        "",
	}
	for in, want := range cases {
		if got := TerminalColor(in); got != want {
			t.Fatalf("TerminalColor(%q) = %q, want %q", in, got, want)
		}
	}
}
