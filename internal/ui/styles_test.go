package ui

import (
	"strings"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	out := Table(
		[]string{"ID", "NAME"},
		[][]string{
			{"1", "Amira"},
			{"2", "Bakary Traore"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// Cells are padded to the widest value in their column.
	if !strings.HasPrefix(lines[1], "1   Amira") {
		t.Errorf("row 1 = %q, want padded %q prefix", lines[1], "1   Amira")
	}
	if !strings.HasPrefix(lines[2], "2   Bakary Traore") {
		t.Errorf("row 2 = %q, want padded %q prefix", lines[2], "2   Bakary Traore")
	}
}

func TestKeyValue(t *testing.T) {
	out := KeyValue([][2]string{{"Name", "Amira"}, {"Role", "student"}})
	if !strings.Contains(out, "Amira") || !strings.Contains(out, "student") {
		t.Errorf("KeyValue() = %q, missing values", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("KeyValue() = %q, want two lines", out)
	}
}
