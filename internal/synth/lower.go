// Package synth builds declaration syntax from a live resource's JSON
// state: a structural lowering of the value tree plus a wrapping
// declaration with a sanitized identifier.
package synth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sdeodharms/bicep/internal/jsonval"
	"github.com/sdeodharms/bicep/internal/syntax"
)

// ErrUnsupportedValueKind signals a JSON variant the lowering cannot
// express. Seeing it means a logic or decoder inconsistency, so it is
// surfaced rather than swallowed.
var ErrUnsupportedValueKind = errors.New("unsupported JSON value kind")

// Error reports a synthesis failure.
type Error struct {
	Kind string // the JSON kind that could not be lowered
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to synthesize declaration from %s value: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Lower converts a JSON value into an expression tree. It is a pure
// structural transliteration: object member order and array order are
// preserved, and no schema knowledge is consulted.
//
// Numbers become integer literals only when exactly representable as a
// signed 32-bit integer; everything else (large integers, fractions,
// exponents) falls back to a string literal holding the raw decimal
// text, which is lossy for the grammar but never for the data.
func Lower(v jsonval.Value) (syntax.Expression, error) {
	switch v.Kind {
	case jsonval.KindNull:
		return &syntax.NullLit{}, nil
	case jsonval.KindBool:
		return &syntax.BoolLit{Value: v.Bool}, nil
	case jsonval.KindString:
		return &syntax.StringLit{Value: v.Str}, nil
	case jsonval.KindNumber:
		return lowerNumber(v.Str), nil
	case jsonval.KindArray:
		items := make([]syntax.Expression, 0, len(v.Items))
		for _, item := range v.Items {
			lowered, err := Lower(item)
			if err != nil {
				return nil, err
			}
			items = append(items, lowered)
		}
		return &syntax.ArrayExpr{Items: items}, nil
	case jsonval.KindObject:
		properties := make([]syntax.Property, 0, len(v.Members))
		for _, m := range v.Members {
			lowered, err := Lower(m.Value)
			if err != nil {
				return nil, err
			}
			properties = append(properties, syntax.Property{Key: m.Key, Value: lowered})
		}
		return &syntax.ObjectExpr{Properties: properties}, nil
	}
	return nil, &Error{Kind: v.Kind.String(), Err: ErrUnsupportedValueKind}
}

func lowerNumber(raw string) syntax.Expression {
	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return &syntax.IntLit{Value: int32(n)}
	}
	return &syntax.StringLit{Value: raw}
}
