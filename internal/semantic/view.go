// Package semantic derives a schema-aware view of a single-declaration
// document and provides the rewrite passes driven by it. A view is
// cheap and recomputable; the normalization loop rebuilds one before
// every pass because each pass changes the text the next one analyzes.
package semantic

import (
	"errors"
	"fmt"

	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/syntax"
	"github.com/sdeodharms/bicep/internal/types"
)

// ErrMalformedTree signals a candidate tree that cannot be analyzed.
var ErrMalformedTree = errors.New("malformed declaration tree")

// SchemaResolver resolves a type descriptor to its schema. A nil
// schema with a nil error means the type is unknown; passes then leave
// the tree untouched.
type SchemaResolver interface {
	ResolveSchema(desc types.Descriptor) (*schema.ObjectType, error)
}

// Context carries the shared, read-only inputs of view construction.
type Context struct {
	Schemas SchemaResolver
}

// View is the derived projection of one candidate declaration against
// its resolved schema. It is request-scoped and never persisted.
type View struct {
	Decl   *syntax.Declaration
	Schema *schema.ObjectType // nil when the type is not in the catalog
}

// NewView builds a view, deterministically, or fails on a structurally
// broken tree or a failing resolver.
func NewView(ctx Context, decl *syntax.Declaration) (*View, error) {
	if decl == nil || decl.Body == nil {
		return nil, fmt.Errorf("%w: declaration has no body", ErrMalformedTree)
	}
	desc, err := types.ParseReference(decl.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, err)
	}

	var sch *schema.ObjectType
	if ctx.Schemas != nil {
		sch, err = ctx.Schemas.ResolveSchema(desc)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve schema for %s: %w", desc, err)
		}
	}
	return &View{Decl: decl, Schema: sch}, nil
}
