package catalog

import (
	"strings"

	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/types"
)

// MemoryCatalog is an in-memory Catalog, used in tests and when no
// catalog database is configured.
type MemoryCatalog struct {
	descriptors []types.Descriptor
	schemas     map[string]*schema.ObjectType
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{schemas: map[string]*schema.ObjectType{}}
}

// Add registers a descriptor with its schema. Not safe for concurrent
// use; populate the catalog before sharing it.
func (c *MemoryCatalog) Add(desc types.Descriptor, sch *schema.ObjectType) {
	c.descriptors = append(c.descriptors, desc)
	c.schemas[schemaKey(desc)] = sch
}

func (c *MemoryCatalog) Descriptors() []types.Descriptor {
	return c.descriptors
}

func (c *MemoryCatalog) Schema(desc types.Descriptor) (*schema.ObjectType, error) {
	sch, ok := c.schemas[schemaKey(desc)]
	if !ok {
		return nil, ErrNotFound
	}
	return sch, nil
}

func schemaKey(desc types.Descriptor) string {
	return strings.ToLower(desc.String())
}
