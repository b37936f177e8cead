package server

import (
	"testing"
)

func TestDecodeInsertRequest(t *testing.T) {
	req, err := decodeInsertRequest([]any{map[string]any{
		"uri":        "file:///main.bicep",
		"position":   map[string]any{"line": 3, "character": 7},
		"resourceId": "/subscriptions/0000/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/vm",
	}})
	if err != nil {
		t.Fatalf("decodeInsertRequest failed: %v", err)
	}
	if req.URI != "file:///main.bicep" {
		t.Errorf("unexpected uri %q", req.URI)
	}
	if req.Position.Line != 3 || req.Position.Character != 7 {
		t.Errorf("unexpected position %+v", req.Position)
	}
}

func TestDecodeInsertRequestRejectsBadArguments(t *testing.T) {
	cases := [][]any{
		nil,
		{},
		{map[string]any{}, map[string]any{}},
		{map[string]any{"uri": "file:///main.bicep"}},
		{map[string]any{"resourceId": "/subscriptions/0000"}},
		{"just a string"},
	}
	for _, arguments := range cases {
		if _, err := decodeInsertRequest(arguments); err == nil {
			t.Errorf("expected error for %#v", arguments)
		}
	}
}
