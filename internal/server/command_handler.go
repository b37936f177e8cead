package server

import (
	gocontext "context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sdeodharms/bicep/internal/insert"
)

func (s *Server) workspaceExecuteCommand(
	context *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	if params.Command == insertResourceCommand {
		return nil, s.insertResource(context, params.Arguments)
	}
	return nil, nil
}

func (s *Server) insertResource(context *glsp.Context, arguments []any) error {
	req, err := decodeInsertRequest(arguments)
	if err != nil {
		return err
	}
	log.Printf("called %q for %s", insertResourceCommand, req.ResourceID)

	edit, err := s.insert.Insert(gocontext.Background(), req)
	if err != nil {
		log.Printf("insert failed: %v", err)
		return err
	}
	if edit == nil {
		return nil
	}

	var result struct {
		Applied       bool    `json:"applied"`
		FailureReason *string `json:"failureReason,omitempty"`
	}
	context.Call("workspace/applyEdit", protocol.ApplyWorkspaceEditParams{
		Edit: protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				req.URI: {*edit},
			},
		},
	}, &result)
	if !result.Applied {
		reason := "unknown"
		if result.FailureReason != nil {
			reason = *result.FailureReason
		}
		log.Printf("client rejected edit: %s", reason)
	}
	return nil
}

// decodeInsertRequest accepts the command's single object argument:
//
//	{"uri": ..., "position": {"line": L, "character": C}, "resourceId": ...}
func decodeInsertRequest(arguments []any) (insert.Request, error) {
	if len(arguments) != 1 {
		return insert.Request{}, fmt.Errorf("expected 1 argument, got %d", len(arguments))
	}
	data, err := json.Marshal(arguments[0])
	if err != nil {
		return insert.Request{}, fmt.Errorf("failed to marshal argument: %w", err)
	}
	var req insert.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return insert.Request{}, fmt.Errorf("failed to unmarshal argument: %w", err)
	}
	if req.URI == "" || req.ResourceID == "" {
		return insert.Request{}, fmt.Errorf("argument is missing uri or resourceId")
	}
	return req, nil
}
