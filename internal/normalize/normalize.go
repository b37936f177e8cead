// Package normalize runs the bounded rewrite loop that turns a freshly
// synthesized declaration into schema-conformant text: recase keys,
// prune read-only properties, repeat.
package normalize

import (
	"context"
	"fmt"

	"github.com/sdeodharms/bicep/internal/semantic"
	"github.com/sdeodharms/bicep/internal/syntax"
)

// MaxIterations bounds the rewrite loop. Convergence is expected after
// one or two iterations; the fixed bound caps the cost of pathological
// oscillation.
const MaxIterations = 5

// Error reports a normalization failure and the iteration it happened
// on. The loop never produces partial output: on error the caller gets
// nothing to insert.
type Error struct {
	Iteration int
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("normalization failed on iteration %d: %v", e.Iteration, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Declaration normalizes decl and returns the final canonical text.
//
// The passes operate on formatted text rather than on the live tree:
// each sub-pass re-parses the previous sub-pass's output and derives a
// fresh semantic view from it, because renaming a key or removing a
// property changes how the next analysis attributes schema to children.
// Cancellation is honored at the top of every iteration.
func Declaration(ctx context.Context, sctx semantic.Context, decl *syntax.Declaration, opts syntax.Options) (string, error) {
	text := syntax.Print(decl, opts)

	for i := 0; i < MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return "", &Error{Iteration: i, Err: err}
		}

		var err error
		text, err = applyPass(sctx, text, opts, semantic.Recase)
		if err != nil {
			return "", &Error{Iteration: i, Err: err}
		}
		text, err = applyPass(sctx, text, opts, semantic.Prune)
		if err != nil {
			return "", &Error{Iteration: i, Err: err}
		}
	}
	return text, nil
}

func applyPass(
	sctx semantic.Context,
	text string,
	opts syntax.Options,
	pass func(*semantic.View) *syntax.Declaration,
) (string, error) {
	decl, err := syntax.Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to re-parse intermediate text: %w", err)
	}
	view, err := semantic.NewView(sctx, decl)
	if err != nil {
		return "", err
	}
	return syntax.Print(pass(view), opts), nil
}
