package types

import (
	"errors"
	"strings"
)

// ErrNoMatch signals that a type string is absent from the catalog.
// Callers treat it as a normal outcome and abort without an edit.
var ErrNoMatch = errors.New("no matching resource type")

// Match selects the catalog descriptor for typeName with the highest
// api version. Type comparison is case-insensitive; the returned
// descriptor carries the catalog's canonical casing. When several
// entries share the maximal version the first one wins, so the result
// is deterministic for a fixed catalog order.
func Match(catalog []Descriptor, typeName string) (Descriptor, error) {
	var best Descriptor
	found := false
	for _, d := range catalog {
		if !strings.EqualFold(d.Type, typeName) {
			continue
		}
		if !found || CompareAPIVersions(d.APIVersion, best.APIVersion) > 0 {
			best = d
			found = true
		}
	}
	if !found {
		return Descriptor{}, ErrNoMatch
	}
	return best, nil
}
