package document

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Span is a byte range in a snapshot's text. A zero Length span is a
// pure insertion point.
type Span struct {
	Offset int
	Length int
}

func (s Span) End() int {
	return s.Offset + s.Length
}

// InsertEdit builds the single edit descriptor for splicing text at
// span. The pipeline only ever inserts, so spans are zero-width, but
// the mapping handles replacement ranges as well.
func InsertEdit(snap *Snapshot, span Span, text string) protocol.TextEdit {
	return protocol.TextEdit{
		Range: protocol.Range{
			Start: snap.PositionAt(span.Offset),
			End:   snap.PositionAt(span.End()),
		},
		NewText: text,
	}
}
