// Package resource holds the parsed resource identifier and the fetch
// boundary to the cloud control plane. Everything network-shaped stays
// behind the Fetcher interface so the pipeline is testable offline.
package resource

import (
	"fmt"
	"strings"
)

// ID is a parsed, immutable Azure resource identifier such as
//
//	/subscriptions/S/resourceGroups/G/providers/Microsoft.Compute/virtualMachines/my-vm
//
// Child resources append further type/name pairs.
type ID struct {
	SubscriptionID string
	ResourceGroup  string
	Provider       string
	TypeSegments   []string
	NameSegments   []string

	raw string
}

// ParseID parses raw into an ID. Keywords are matched
// case-insensitively, which is how the control plane treats them.
func ParseID(raw string) (ID, error) {
	parts := splitSegments(raw)
	id := ID{raw: raw}

	i := 0
	if i+1 < len(parts) && strings.EqualFold(parts[i], "subscriptions") {
		id.SubscriptionID = parts[i+1]
		i += 2
	}
	if i+1 < len(parts) && strings.EqualFold(parts[i], "resourceGroups") {
		id.ResourceGroup = parts[i+1]
		i += 2
	}
	if i >= len(parts) || !strings.EqualFold(parts[i], "providers") {
		return ID{}, fmt.Errorf("resource id %q has no providers segment", raw)
	}
	i++
	if i >= len(parts) {
		return ID{}, fmt.Errorf("resource id %q has no provider namespace", raw)
	}
	id.Provider = parts[i]
	i++

	for ; i+1 < len(parts); i += 2 {
		id.TypeSegments = append(id.TypeSegments, parts[i])
		id.NameSegments = append(id.NameSegments, parts[i+1])
	}
	if i != len(parts) {
		return ID{}, fmt.Errorf("resource id %q has a type segment without a name", raw)
	}
	if len(id.TypeSegments) == 0 {
		return ID{}, fmt.Errorf("resource id %q has no resource type", raw)
	}
	return id, nil
}

func splitSegments(raw string) []string {
	var parts []string
	for _, p := range strings.Split(raw, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// FullyQualifiedType derives the catalog type string, e.g.
// "Microsoft.Compute/virtualMachines/extensions".
func (id ID) FullyQualifiedType() string {
	return id.Provider + "/" + strings.Join(id.TypeSegments, "/")
}

// Name returns the last segment of the name hierarchy.
func (id ID) Name() string {
	return id.NameSegments[len(id.NameSegments)-1]
}

func (id ID) String() string {
	return id.raw
}
