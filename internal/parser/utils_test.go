package parser

import "testing"

func TestNormalizeColumnName(t *testing.T) {
	t.Parallel()

	if got := NormalizeColumnName("  Link Name "); got != "link name" {
		t.Fatalf("got=%q", got)
	}
	if got := NormalizeColumnName("Central\nGUID"); got != "central guid" {
		t.Fatalf("got=%q", got)
	}
	if got := NormalizeColumnName("workset_vg_controlled"); got != "workset vg controlled" {
		t.Fatalf("got=%q", got)
	}
}

func TestMatchPattern(t *testing.T) {
	t.Parallel()

	if !MatchPattern("link name", "link name|link") {
		t.Fatalf("expected match")
	}
	if !MatchPattern("raw value", "raw value|value") {
		t.Fatalf("expected match on alternative")
	}
	if MatchPattern("category", "categories") {
		t.Fatalf("unexpected match")
	}
}

func TestParseBoolCell(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Yes", "TRUE", "1", "y", "是"} {
		if !ParseBoolCell(raw) {
			t.Fatalf("%q: expected true", raw)
		}
	}
	for _, raw := range []string{"No", "false", "0", "", "maybe"} {
		if ParseBoolCell(raw) {
			t.Fatalf("%q: expected false", raw)
		}
	}
}

func TestFindHeaderRow(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"BIMKeeper Snapshot"},
		{},
		{"Link Name", "Instance Workset", "Type Workset"},
		{"GSK-HTL-RE-ZZ-M3-A-0001.rvt", "W1", "W1"},
	}
	if got := FindHeaderRow(rows, []string{"link name|link"}); got != 2 {
		t.Fatalf("got=%d", got)
	}
	if got := FindHeaderRow(rows, []string{"no such column"}); got != -1 {
		t.Fatalf("got=%d", got)
	}
}

func TestCellAt_OutOfRange(t *testing.T) {
	t.Parallel()

	row := []string{"a", " b "}
	if got := CellAt(row, 1); got != "b" {
		t.Fatalf("got=%q", got)
	}
	if got := CellAt(row, 5); got != "" {
		t.Fatalf("got=%q", got)
	}
	if got := CellAt(row, -1); got != "" {
		t.Fatalf("got=%q", got)
	}
}
