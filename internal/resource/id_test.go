package resource_test

import (
	"testing"

	"github.com/sdeodharms/bicep/internal/resource"
)

func TestParseID(t *testing.T) {
	raw := "/subscriptions/0000/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/my-vm"
	id, err := resource.ParseID(raw)
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}

	if id.SubscriptionID != "0000" {
		t.Errorf("unexpected subscription %q", id.SubscriptionID)
	}
	if id.ResourceGroup != "rg1" {
		t.Errorf("unexpected resource group %q", id.ResourceGroup)
	}
	if got := id.FullyQualifiedType(); got != "Microsoft.Compute/virtualMachines" {
		t.Errorf("unexpected type %q", got)
	}
	if got := id.Name(); got != "my-vm" {
		t.Errorf("unexpected name %q", got)
	}
	if id.String() != raw {
		t.Errorf("String() should return the raw id")
	}
}

func TestParseIDChildResource(t *testing.T) {
	raw := "/subscriptions/0000/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines/my-vm/extensions/agent"
	id, err := resource.ParseID(raw)
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
	if got := id.FullyQualifiedType(); got != "Microsoft.Compute/virtualMachines/extensions" {
		t.Errorf("unexpected type %q", got)
	}
	if got := id.Name(); got != "agent" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestParseIDSubscriptionLevel(t *testing.T) {
	raw := "/subscriptions/0000/providers/Microsoft.Resources/deployments/deploy1"
	id, err := resource.ParseID(raw)
	if err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
	if id.ResourceGroup != "" {
		t.Errorf("expected empty resource group, got %q", id.ResourceGroup)
	}
	if got := id.FullyQualifiedType(); got != "Microsoft.Resources/deployments" {
		t.Errorf("unexpected type %q", got)
	}
}

func TestParseIDKeywordsAreCaseInsensitive(t *testing.T) {
	raw := "/SUBSCRIPTIONS/0000/resourcegroups/rg1/PROVIDERS/Microsoft.Compute/virtualMachines/vm"
	if _, err := resource.ParseID(raw); err != nil {
		t.Fatalf("ParseID failed: %v", err)
	}
}

func TestParseIDRejectsMalformedIDs(t *testing.T) {
	inputs := []string{
		"",
		"/",
		"/subscriptions/0000",
		"/subscriptions/0000/resourceGroups/rg1",
		"/subscriptions/0000/resourceGroups/rg1/providers",
		"/subscriptions/0000/resourceGroups/rg1/providers/Microsoft.Compute",
		"/subscriptions/0000/resourceGroups/rg1/providers/Microsoft.Compute/virtualMachines",
		"not-an-id",
	}
	for _, input := range inputs {
		if _, err := resource.ParseID(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}
