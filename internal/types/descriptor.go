// Package types models resource type descriptors and their selection
// rules. A catalog holds many descriptors per fully qualified type, one
// per api version; the matcher picks the newest one.
package types

import (
	"fmt"
	"strings"
)

// Descriptor identifies one (type, api version) pair of the catalog.
type Descriptor struct {
	Type       string // fully qualified, e.g. "Microsoft.Compute/virtualMachines"
	APIVersion string // e.g. "2023-05-01" or "2020-06-01-preview"
}

// String renders the reference form used in declarations.
func (d Descriptor) String() string {
	return d.Type + "@" + d.APIVersion
}

// ParseReference splits a "<type>@<apiVersion>" reference back into a
// descriptor.
func ParseReference(ref string) (Descriptor, error) {
	at := strings.LastIndex(ref, "@")
	if at <= 0 || at == len(ref)-1 {
		return Descriptor{}, fmt.Errorf("malformed type reference %q", ref)
	}
	return Descriptor{Type: ref[:at], APIVersion: ref[at+1:]}, nil
}
