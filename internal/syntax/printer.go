package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Newline selects the line terminator used by the printer.
type Newline string

const (
	LF   Newline = "\n"
	CRLF Newline = "\r\n"
)

// IndentStyle selects the indentation character used by the printer.
type IndentStyle int

const (
	IndentSpaces IndentStyle = iota
	IndentTabs
)

// Options control the textual shape of printed output. They never
// affect tree structure; parsing printed output with any options yields
// a structurally equal tree.
type Options struct {
	Newline            Newline
	Indent             IndentStyle
	IndentSize         int
	InsertFinalNewline bool
}

func DefaultOptions() Options {
	return Options{
		Newline:            LF,
		Indent:             IndentSpaces,
		IndentSize:         2,
		InsertFinalNewline: true,
	}
}

func (o Options) indentUnit() string {
	if o.Indent == IndentTabs {
		return "\t"
	}
	size := o.IndentSize
	if size <= 0 {
		size = 2
	}
	return strings.Repeat(" ", size)
}

// Print renders a declaration to canonical text. It is deterministic:
// the same tree and options always produce identical output.
func Print(decl *Declaration, opts Options) string {
	p := printer{indent: opts.indentUnit(), newline: string(opts.Newline)}
	if p.newline == "" {
		p.newline = string(LF)
	}

	p.sb.WriteString("resource ")
	p.sb.WriteString(decl.Name)
	p.sb.WriteString(" ")
	p.sb.WriteString(quoteString(decl.Type))
	p.sb.WriteString(" = ")
	p.expression(decl.Body, 0)
	if opts.InsertFinalNewline {
		p.sb.WriteString(p.newline)
	}
	return p.sb.String()
}

// PrintExpression renders a single expression, mainly for tests.
func PrintExpression(expr Expression, opts Options) string {
	p := printer{indent: opts.indentUnit(), newline: string(opts.Newline)}
	if p.newline == "" {
		p.newline = string(LF)
	}
	p.expression(expr, 0)
	return p.sb.String()
}

type printer struct {
	sb      strings.Builder
	indent  string
	newline string
}

func (p *printer) expression(expr Expression, depth int) {
	switch e := expr.(type) {
	case *ObjectExpr:
		p.object(e, depth)
	case *ArrayExpr:
		p.array(e, depth)
	case *StringLit:
		p.sb.WriteString(quoteString(e.Value))
	case *IntLit:
		p.sb.WriteString(strconv.FormatInt(int64(e.Value), 10))
	case *BoolLit:
		p.sb.WriteString(strconv.FormatBool(e.Value))
	case *NullLit:
		p.sb.WriteString("null")
	case *Ident:
		p.sb.WriteString(e.Name)
	default:
		panic(fmt.Sprintf("unknown expression node %T", expr))
	}
}

func (p *printer) object(obj *ObjectExpr, depth int) {
	if len(obj.Properties) == 0 {
		p.sb.WriteString("{}")
		return
	}
	p.sb.WriteString("{")
	for _, prop := range obj.Properties {
		p.sb.WriteString(p.newline)
		p.writeIndent(depth + 1)
		p.sb.WriteString(propertyKey(prop.Key))
		p.sb.WriteString(": ")
		p.expression(prop.Value, depth+1)
	}
	p.sb.WriteString(p.newline)
	p.writeIndent(depth)
	p.sb.WriteString("}")
}

func (p *printer) array(arr *ArrayExpr, depth int) {
	if len(arr.Items) == 0 {
		p.sb.WriteString("[]")
		return
	}
	p.sb.WriteString("[")
	for _, item := range arr.Items {
		p.sb.WriteString(p.newline)
		p.writeIndent(depth + 1)
		p.expression(item, depth+1)
	}
	p.sb.WriteString(p.newline)
	p.writeIndent(depth)
	p.sb.WriteString("]")
}

func (p *printer) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		p.sb.WriteString(p.indent)
	}
}

// propertyKey emits a bare key when it is identifier-like, a quoted
// string otherwise.
func propertyKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return quoteString(key)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return !isKeyword(s)
}

func isKeyword(s string) bool {
	switch s {
	case "resource", "true", "false", "null":
		return true
	}
	return false
}

// quoteString renders a single-quoted string literal with Bicep
// escaping. "${" is escaped so printed strings never open an
// interpolation.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '$':
			if i+1 < len(runes) && runes[i+1] == '{' {
				sb.WriteString(`\$`)
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
