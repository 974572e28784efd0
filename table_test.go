package halfedge

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTable(t *testing.T) {
	m := mustMesh(t, NewGrid(2, 1))

	var buf bytes.Buffer
	if err := m.WriteTable(&buf, '\t'); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if got, want := len(lines), 1+8; got != want {
		t.Fatalf("got %d lines, want %d", got, want)
	}
	for i, l := range lines {
		if got := len(strings.Split(l, "\t")); got != len(tableHeader) {
			t.Errorf("line %d: %d columns, want %d", i, got, len(tableHeader))
		}
	}

	if got, want := lines[1], "0\t0\t1\t3\t1\tnull\t0\t0\t0\t0.00\t0.00\t0.00\t0"; got != want {
		t.Errorf("row 0: got %q, want %q", got, want)
	}
	if got, want := lines[2], "1\t1\t4\t0\t2\t7\t1\t4\t1\t1.00\t0.00\t0.00\t4"; got != want {
		t.Errorf("row 1: got %q, want %q", got, want)
	}
	if got, want := lines[8], "7\t4\t1\t6\t4\t1\t\t\t\t\t\t\t"; got != want {
		t.Errorf("row 7: got %q, want %q", got, want)
	}
}
