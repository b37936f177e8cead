package server

import (
	"fmt"
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sdeodharms/bicep/internal/config"
	"github.com/sdeodharms/bicep/internal/insert"
)

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	cfg, err := config.Load(params.InitializationOptions)
	if err != nil {
		return nil, err
	}
	s.config = cfg
	log.Printf("Config: %+v", cfg)

	s.insert = &insert.Handler{
		Catalog: s.catalog,
		Fetcher: s.fetcher,
		Docs:    s.docs,
		Config:  s.config,
	}

	syncKind := protocol.TextDocumentSyncKindFull

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{insertResourceCommand},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
	}, nil
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Client initialized.")
	return nil
}

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	s.docs.Open(params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	for _, raw := range params.ContentChanges {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			s.docs.Update(uri, change.Text)
		case protocol.TextDocumentContentChangeEvent:
			// Full sync is negotiated in initialize; a ranged change
			// here means the client ignored that.
			return fmt.Errorf("unexpected incremental change for %s", uri)
		default:
			return fmt.Errorf("unexpected change event type %T", raw)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	s.docs.Close(params.TextDocument.URI)
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	if closer, ok := s.catalog.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
