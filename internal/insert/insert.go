// Package insert orchestrates the resource insertion pipeline: parse
// the identifier, match a type, fetch live state, synthesize a
// declaration, normalize it against the schema, and compute the edit.
// All side-effecting collaborators arrive through interfaces so the
// pipeline runs without network or editor dependencies in tests.
package insert

import (
	"context"
	"errors"
	"log"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sdeodharms/bicep/internal/catalog"
	"github.com/sdeodharms/bicep/internal/config"
	"github.com/sdeodharms/bicep/internal/document"
	"github.com/sdeodharms/bicep/internal/jsonval"
	"github.com/sdeodharms/bicep/internal/normalize"
	"github.com/sdeodharms/bicep/internal/resource"
	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/semantic"
	"github.com/sdeodharms/bicep/internal/syntax"
	"github.com/sdeodharms/bicep/internal/synth"
	"github.com/sdeodharms/bicep/internal/types"
)

// Request is one insertion request: where the caret is and which
// resource to materialize there.
type Request struct {
	URI        protocol.DocumentUri `json:"uri"`
	Position   protocol.Position    `json:"position"`
	ResourceID string               `json:"resourceId"`
}

// Handler runs insertion requests. The catalog is shared and
// read-only; everything else is request-scoped.
type Handler struct {
	Catalog catalog.Catalog
	Fetcher resource.Fetcher
	Docs    *document.Manager
	Config  config.Config
}

// Insert runs the pipeline. A nil edit with a nil error means the
// request was silently aborted: unknown document, unparsable
// identifier, no matching type, or an empty payload. A non-nil error
// is a structural or external failure; no edit exists in either case,
// so the document is never left partially edited.
func (h *Handler) Insert(ctx context.Context, req Request) (*protocol.TextEdit, error) {
	snap, ok := h.Docs.Snapshot(req.URI)
	if !ok {
		log.Printf("insert: document %s not open, aborting", req.URI)
		return nil, nil
	}

	id, err := resource.ParseID(req.ResourceID)
	if err != nil {
		log.Printf("insert: %v, aborting", err)
		return nil, nil
	}

	desc, err := types.Match(h.Catalog.Descriptors(), id.FullyQualifiedType())
	if errors.Is(err, types.ErrNoMatch) {
		log.Printf("insert: type %s not in catalog, aborting", id.FullyQualifiedType())
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	payload, err := h.Fetcher.Fetch(ctx, id, desc.APIVersion)
	if err != nil {
		return nil, err
	}
	if payload.Kind == jsonval.KindNull {
		log.Printf("insert: empty payload for %s, aborting", id)
		return nil, nil
	}

	decl, err := synth.Synthesize(id, desc, payload)
	if err != nil {
		return nil, err
	}

	sctx := semantic.Context{Schemas: schemaResolver{h.Catalog}}
	text, err := normalize.Declaration(ctx, sctx, decl, h.Config.PrintOptions())
	if err != nil {
		return nil, err
	}

	span := document.Span{Offset: snap.OffsetAt(req.Position)}
	edit := document.InsertEdit(snap, span, padding(snap, span.Offset, h.Config.PrintOptions())+text)
	return &edit, nil
}

// padding prepends a newline when the caret sits at the end of a
// non-empty line, so the declaration always starts on its own line.
func padding(snap *document.Snapshot, offset int, opts syntax.Options) string {
	if offset == 0 {
		return ""
	}
	prev := snap.Text[offset-1]
	if prev == '\n' {
		return ""
	}
	return string(opts.Newline)
}

// schemaResolver adapts the catalog to the semantic view's resolver:
// a type absent from the catalog is not an error, just no schema.
type schemaResolver struct {
	catalog catalog.Catalog
}

func (r schemaResolver) ResolveSchema(desc types.Descriptor) (*schema.ObjectType, error) {
	sch, err := r.catalog.Schema(desc)
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, nil
	}
	return sch, err
}
