// Package server wires the insertion pipeline into an LSP server.
package server

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"

	"github.com/sdeodharms/bicep/internal/catalog"
	"github.com/sdeodharms/bicep/internal/config"
	"github.com/sdeodharms/bicep/internal/document"
	"github.com/sdeodharms/bicep/internal/insert"
	"github.com/sdeodharms/bicep/internal/resource"
)

const serverName = "bicep-ls"

// insertResourceCommand is the workspace command clients invoke to
// materialize a live resource at the caret.
const insertResourceCommand = "bicep.insertResource"

// Options are the process-level settings resolved in main from flags
// and environment.
type Options struct {
	CatalogPath string // path to the catalog database; empty for none
	ARMEndpoint string
	ARMToken    string
}

type Server struct {
	handler *protocol.Handler
	docs    *document.Manager
	catalog catalog.Catalog
	fetcher resource.Fetcher
	config  config.Config
	insert  *insert.Handler
}

// NewServer builds the LSP server. The catalog is opened once here and
// shared read-only across requests.
func NewServer(opts Options) (*glspserver.Server, error) {
	var cat catalog.Catalog
	if opts.CatalogPath != "" {
		sqliteCat, err := catalog.OpenSQLite(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		cat = sqliteCat
	} else {
		cat = catalog.NewMemoryCatalog()
	}

	s := &Server{
		docs:    document.NewManager(),
		catalog: cat,
		fetcher: &resource.ARMClient{Endpoint: opts.ARMEndpoint, Token: opts.ARMToken},
	}
	s.handler = &protocol.Handler{
		Initialize:              s.initialize,
		Initialized:             s.initialized,
		TextDocumentDidOpen:     s.textDocumentDidOpen,
		TextDocumentDidChange:   s.textDocumentDidChange,
		TextDocumentDidClose:    s.textDocumentDidClose,
		WorkspaceExecuteCommand: s.workspaceExecuteCommand,
		Shutdown:                s.shutdown,
	}

	return glspserver.NewServer(s.handler, serverName, false), nil
}
