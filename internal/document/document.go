// Package document tracks open host documents and provides the
// immutable, request-scoped snapshot the insertion pipeline works
// against: text, line starts, and offset/position mapping.
package document

import (
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Manager holds the text of open documents. It may be hit concurrently
// by sync notifications and command handlers, so access is locked.
type Manager struct {
	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

func NewManager() *Manager {
	return &Manager{docs: map[protocol.DocumentUri]string{}}
}

func (m *Manager) Open(uri protocol.DocumentUri, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[uri] = text
}

func (m *Manager) Update(uri protocol.DocumentUri, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[uri] = text
}

func (m *Manager) Close(uri protocol.DocumentUri) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, uri)
}

// Snapshot captures the current state of a document. The capture is
// immutable: later edits to the document do not affect it, so a request
// can safely work against it from start to finish.
func (m *Manager) Snapshot(uri protocol.DocumentUri) (*Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text, ok := m.docs[uri]
	if !ok {
		return nil, false
	}
	return NewSnapshot(uri, text), true
}

// Snapshot is one immutable view of a document's text.
type Snapshot struct {
	URI  protocol.DocumentUri
	Text string

	lineStarts []int // byte offset of each line's first character
}

func NewSnapshot(uri protocol.DocumentUri, text string) *Snapshot {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Snapshot{URI: uri, Text: text, lineStarts: starts}
}

func (s *Snapshot) Len() int {
	return len(s.Text)
}

// OffsetAt converts an LSP position (UTF-16 column) into a byte offset,
// clamping past-the-end lines and columns.
func (s *Snapshot) OffsetAt(pos protocol.Position) int {
	line := int(pos.Line)
	if line >= len(s.lineStarts) {
		return len(s.Text)
	}

	offset := s.lineStarts[line]
	end := len(s.Text)
	if line+1 < len(s.lineStarts) {
		end = s.lineStarts[line+1] - 1 // exclude the newline
	}

	remaining := int(pos.Character)
	for offset < end && remaining > 0 {
		r, size := utf8.DecodeRuneInString(s.Text[offset:])
		units := len(utf16.Encode([]rune{r}))
		if units > remaining {
			break
		}
		remaining -= units
		offset += size
	}
	return offset
}

// PositionAt converts a byte offset back into an LSP position.
func (s *Snapshot) PositionAt(offset int) protocol.Position {
	if offset > len(s.Text) {
		offset = len(s.Text)
	}

	// Find the last line starting at or before offset.
	line := 0
	for line+1 < len(s.lineStarts) && s.lineStarts[line+1] <= offset {
		line++
	}

	character := 0
	for i := s.lineStarts[line]; i < offset; {
		r, size := utf8.DecodeRuneInString(s.Text[i:])
		character += len(utf16.Encode([]rune{r}))
		i += size
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}
