package document_test

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sdeodharms/bicep/internal/document"
)

func pos(line, character int) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}

func TestOffsetAt(t *testing.T) {
	snap := document.NewSnapshot("file:///test.bicep", "param x int\n\nvar y = 1\n")

	tests := []struct {
		name string
		pos  protocol.Position
		want int
	}{
		{"start", pos(0, 0), 0},
		{"mid first line", pos(0, 6), 6},
		{"clamped past line end", pos(0, 99), 11},
		{"empty line", pos(1, 0), 12},
		{"third line", pos(2, 4), 17},
		{"clamped past last line", pos(99, 0), 23},
	}
	for _, tt := range tests {
		if got := snap.OffsetAt(tt.pos); got != tt.want {
			t.Errorf("%s: OffsetAt(%v) = %d, want %d", tt.name, tt.pos, got, tt.want)
		}
	}
}

func TestOffsetAtUTF16(t *testing.T) {
	// "😀" is one rune, two UTF-16 code units, four UTF-8 bytes.
	snap := document.NewSnapshot("file:///test.bicep", "// 😀 comment\n")

	if got := snap.OffsetAt(pos(0, 3)); got != 3 {
		t.Errorf("before emoji: got %d, want 3", got)
	}
	if got := snap.OffsetAt(pos(0, 5)); got != 7 {
		t.Errorf("after emoji: got %d, want 7", got)
	}
}

func TestPositionAt(t *testing.T) {
	snap := document.NewSnapshot("file:///test.bicep", "param x int\nvar y = 1")

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 0, 0},
		{6, 0, 6},
		{11, 0, 11},
		{12, 1, 0},
		{16, 1, 4},
		{999, 1, 9}, // clamped
	}
	for _, tt := range tests {
		got := snap.PositionAt(tt.offset)
		if got != pos(tt.line, tt.col) {
			t.Errorf("PositionAt(%d) = %v, want %v", tt.offset, got, pos(tt.line, tt.col))
		}
	}
}

func TestPositionAtRoundTripsWithOffsetAt(t *testing.T) {
	snap := document.NewSnapshot("file:///test.bicep", "a 😀 b\ncd\n")
	for offset := 0; offset <= snap.Len(); offset++ {
		p := snap.PositionAt(offset)
		back := snap.OffsetAt(p)
		// Offsets inside a rune map to the rune start; others round-trip.
		if back > offset {
			t.Errorf("offset %d: mapped forward to %d via %v", offset, back, p)
		}
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	m := document.NewManager()
	m.Open("file:///a.bicep", "original")

	snap, ok := m.Snapshot("file:///a.bicep")
	if !ok {
		t.Fatal("expected snapshot")
	}
	m.Update("file:///a.bicep", "changed entirely")

	if snap.Text != "original" {
		t.Errorf("snapshot changed under the request: %q", snap.Text)
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := document.NewManager()
	if _, ok := m.Snapshot("file:///a.bicep"); ok {
		t.Fatal("expected no snapshot before open")
	}
	m.Open("file:///a.bicep", "text")
	if _, ok := m.Snapshot("file:///a.bicep"); !ok {
		t.Fatal("expected snapshot after open")
	}
	m.Close("file:///a.bicep")
	if _, ok := m.Snapshot("file:///a.bicep"); ok {
		t.Fatal("expected no snapshot after close")
	}
}

func TestInsertEditIsZeroWidth(t *testing.T) {
	snap := document.NewSnapshot("file:///a.bicep", "line1\nline2\n")
	edit := document.InsertEdit(snap, document.Span{Offset: 6}, "resource ...\n")

	if edit.Range.Start != pos(1, 0) || edit.Range.End != pos(1, 0) {
		t.Errorf("expected zero-width range at 1:0, got %v", edit.Range)
	}
	if edit.NewText != "resource ...\n" {
		t.Errorf("unexpected new text %q", edit.NewText)
	}
}
