package stats

import "testing"

func TestTableAlignsColumns(t *testing.T) {
	tbl := newTable(column{header: "Group"}, column{header: "Words", right: true}, column{header: "Colors"})
	tbl.addRow("Blue", "18", "white on blue")
	tbl.addRow("Yellow", "23", "black on #ffc107")

	lines := tbl.lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Group   Words  Colors" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Blue       18  white on blue" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Yellow     23  black on #ffc107" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTableWideRunes(t *testing.T) {
	tbl := newTable(column{header: "Group"}, column{header: "N", right: true})
	tbl.addRow("漢字", "1")
	if got := tbl.lines()[1]; got != "漢字   1" {
		t.Fatalf("unexpected wide-rune row: %q", got)
	}
}

func TestTableIgnoresEscapeSequences(t *testing.T) {
	styled := "\x1b[97;44mBlue\x1b[0m"
	tbl := newTable(column{header: "Group"}, column{header: "Words", right: true})
	tbl.addRow(styled, "2")

	lines := tbl.lines()
	if lines[0] != "Group  Words" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if want := styled + "      2"; lines[1] != want {
		t.Fatalf("unexpected styled row: %q, want %q", lines[1], want)
	}
}

func TestTableShortRowsArePadded(t *testing.T) {
	tbl := newTable(column{header: "A"}, column{header: "B"})
	tbl.addRow("x")
	if got := tbl.lines()[1]; got != "x" {
		t.Fatalf("unexpected short row: %q", got)
	}
}
