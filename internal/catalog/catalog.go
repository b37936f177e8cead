// Package catalog provides the resource type catalog: the set of known
// type descriptors and their schemas. A catalog is loaded once per
// process and is read-only afterwards, so it is safe to share across
// concurrent requests.
package catalog

import (
	"errors"

	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/types"
)

// ErrNotFound signals that a descriptor has no schema in the catalog.
var ErrNotFound = errors.New("resource type not found in catalog")

type Catalog interface {
	// Descriptors returns every known (type, api version) pair.
	Descriptors() []types.Descriptor

	// Schema returns the schema for a descriptor, or ErrNotFound.
	Schema(desc types.Descriptor) (*schema.ObjectType, error)
}
