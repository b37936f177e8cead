package syntax

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokColon
	tokAssign
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokNumber:
		return "number"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokColon:
		return "':'"
	case tokAssign:
		return "'='"
	}
	return "unknown token"
}

type token struct {
	kind   tokenKind
	text   string // identifier name, decoded string value, or number text
	offset int
}

type lexer struct {
	src string
	pos int
}

// next returns the next token, skipping whitespace. Newlines are plain
// separators in the printed subset, so they are skipped too.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; c {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return l.scan()
		}
	}
	return token{kind: tokEOF, offset: l.pos}, nil
}

func (l *lexer) scan() (token, error) {
	start := l.pos
	switch c := l.src[l.pos]; {
	case c == '{':
		l.pos++
		return token{kind: tokLBrace, offset: start}, nil
	case c == '}':
		l.pos++
		return token{kind: tokRBrace, offset: start}, nil
	case c == '[':
		l.pos++
		return token{kind: tokLBracket, offset: start}, nil
	case c == ']':
		l.pos++
		return token{kind: tokRBracket, offset: start}, nil
	case c == ':':
		l.pos++
		return token{kind: tokColon, offset: start}, nil
	case c == '=':
		l.pos++
		return token{kind: tokAssign, offset: start}, nil
	case c == '\'':
		return l.scanString()
	case c == '-' || (c >= '0' && c <= '9'):
		return l.scanNumber()
	case isIdentStart(c):
		return l.scanIdent()
	default:
		return token{}, fmt.Errorf("unexpected character %q at offset %d", c, start)
	}
}

func (l *lexer) scanIdent() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokIdent, text: l.src[start:l.pos], offset: start}, nil
}

func (l *lexer) scanNumber() (token, error) {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	digits := 0
	for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
		l.pos++
		digits++
	}
	if digits == 0 {
		return token{}, fmt.Errorf("malformed number at offset %d", start)
	}
	return token{kind: tokNumber, text: l.src[start:l.pos], offset: start}, nil
}

func (l *lexer) scanString() (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; c {
		case '\'':
			l.pos++
			return token{kind: tokString, text: sb.String(), offset: start}, nil
		case '\n', '\r':
			return token{}, fmt.Errorf("unterminated string at offset %d", start)
		case '\\':
			l.pos++
			if l.pos >= len(l.src) {
				return token{}, fmt.Errorf("unterminated escape at offset %d", start)
			}
			switch e := l.src[l.pos]; e {
			case '\\':
				sb.WriteByte('\\')
			case '\'':
				sb.WriteByte('\'')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '$':
				sb.WriteByte('$')
			default:
				return token{}, fmt.Errorf("unknown escape \\%c at offset %d", e, l.pos-1)
			}
			l.pos++
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
	return token{}, fmt.Errorf("unterminated string at offset %d", start)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
