package synth_test

import (
	"testing"

	"github.com/sdeodharms/bicep/internal/jsonval"
	"github.com/sdeodharms/bicep/internal/resource"
	"github.com/sdeodharms/bicep/internal/syntax"
	"github.com/sdeodharms/bicep/internal/synth"
	"github.com/sdeodharms/bicep/internal/types"
)

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my-vm_01", "myvm"},
		{"storageaccount", "storageaccount"},
		{"WebApp", "WebApp"},
		{"123-456", ""},
		{"", ""},
		{"väx", "vx"},
	}
	for _, tt := range tests {
		if got := synth.SanitizeIdentifier(tt.in); got != tt.want {
			t.Errorf("SanitizeIdentifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSynthesize(t *testing.T) {
	id, err := resource.ParseID("/subscriptions/0000/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/my-vm_01")
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
	desc := types.Descriptor{Type: "Microsoft.Compute/virtualMachines", APIVersion: "2023-05-01"}
	body, err := jsonval.Parse([]byte(`{"name":"my-vm_01","location":"westeurope"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	decl, err := synth.Synthesize(id, desc, body)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if decl.Name != "myvm" {
		t.Errorf("expected sanitized name myvm, got %q", decl.Name)
	}
	if decl.Type != "Microsoft.Compute/virtualMachines@2023-05-01" {
		t.Errorf("unexpected type literal %q", decl.Type)
	}
	obj, ok := decl.Body.(*syntax.ObjectExpr)
	if !ok || len(obj.Properties) != 2 {
		t.Fatalf("unexpected body %#v", decl.Body)
	}
}

// A name that sanitizes to nothing must not fail synthesis; the empty
// identifier surfaces in the printed declaration instead.
func TestSynthesizeEmptyIdentifier(t *testing.T) {
	id, err := resource.ParseID("/subscriptions/0000/resourceGroups/rg1/providers/Microsoft.Example/widgets/1234")
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
	desc := types.Descriptor{Type: "Microsoft.Example/widgets", APIVersion: "2020-01-01"}

	decl, err := synth.Synthesize(id, desc, jsonval.Object())
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if decl.Name != "" {
		t.Errorf("expected empty identifier, got %q", decl.Name)
	}

	text := syntax.Print(decl, syntax.DefaultOptions())
	if _, err := syntax.Parse(text); err != nil {
		t.Errorf("printed declaration should stay parseable: %v\n%s", err, text)
	}
}
