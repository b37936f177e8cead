package syntax

import (
	"fmt"
	"strconv"
)

// Parse reads a single resource declaration from src. It accepts
// exactly the subset of the language the printer emits, so
// Parse(Print(tree)) returns a tree structurally equal to tree.
func Parse(src string) (*Declaration, error) {
	p := parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}

	decl, err := p.declaration()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("unexpected %s after declaration", p.tok.kind)
	}
	return decl, nil
}

type parser struct {
	lex lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind) (token, error) {
	if p.tok.kind != kind {
		return token{}, fmt.Errorf("expected %s, got %s at offset %d", kind, p.tok.kind, p.tok.offset)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

func (p *parser) declaration() (*Declaration, error) {
	keyword, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if keyword.text != "resource" {
		return nil, fmt.Errorf("expected 'resource' keyword, got %q", keyword.text)
	}

	// The identifier is optional: sanitization may legitimately strip a
	// resource name down to nothing.
	var name string
	if p.tok.kind == tokIdent {
		name = p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	typeLit, err := p.expect(tokString)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokAssign); err != nil {
		return nil, err
	}
	body, err := p.expression()
	if err != nil {
		return nil, err
	}

	return &Declaration{Name: name, Type: typeLit.text, Body: body}, nil
}

func (p *parser) expression() (Expression, error) {
	switch p.tok.kind {
	case tokLBrace:
		return p.object()
	case tokLBracket:
		return p.array()
	case tokString:
		value := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &StringLit{Value: value}, nil
	case tokNumber:
		n, err := strconv.ParseInt(p.tok.text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("integer literal out of range at offset %d: %w", p.tok.offset, err)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &IntLit{Value: int32(n)}, nil
	case tokIdent:
		switch p.tok.text {
		case "true", "false":
			value := p.tok.text == "true"
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &BoolLit{Value: value}, nil
		case "null":
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &NullLit{}, nil
		}
		return nil, fmt.Errorf("unexpected identifier %q at offset %d", p.tok.text, p.tok.offset)
	}
	return nil, fmt.Errorf("expected expression, got %s at offset %d", p.tok.kind, p.tok.offset)
}

func (p *parser) object() (Expression, error) {
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	var properties []Property
	for p.tok.kind != tokRBrace {
		key, err := p.propertyKey()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokColon); err != nil {
			return nil, err
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		properties = append(properties, Property{Key: key, Value: value})
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	return &ObjectExpr{Properties: properties}, nil
}

func (p *parser) propertyKey() (string, error) {
	switch p.tok.kind {
	case tokIdent, tokString:
		key := p.tok.text
		if err := p.advance(); err != nil {
			return "", err
		}
		return key, nil
	}
	return "", fmt.Errorf("expected property key, got %s at offset %d", p.tok.kind, p.tok.offset)
}

func (p *parser) array() (Expression, error) {
	if _, err := p.expect(tokLBracket); err != nil {
		return nil, err
	}
	var items []Expression
	for p.tok.kind != tokRBracket {
		item, err := p.expression()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := p.expect(tokRBracket); err != nil {
		return nil, err
	}
	return &ArrayExpr{Items: items}, nil
}
