package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/types"
)

// Manifest is the JSON document ingested into a catalog database.
type Manifest struct {
	Types []ManifestType `json:"types"`
}

type ManifestType struct {
	Type       string          `json:"type"`
	APIVersion string          `json:"apiVersion"`
	Schema     json.RawMessage `json:"schema"`
}

func ReadManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return m, nil
}

// Ingest upserts every manifest entry into the catalog database.
// Schemas are parsed up front so a broken manifest is rejected before
// anything is written. The in-memory descriptor list is reloaded
// afterwards.
func (c *SQLiteCatalog) Ingest(m Manifest) error {
	for _, entry := range m.Types {
		if entry.Type == "" || entry.APIVersion == "" {
			return fmt.Errorf("manifest entry %q@%q is missing type or apiVersion", entry.Type, entry.APIVersion)
		}
		if _, err := schema.ParseObjectType(entry.Schema); err != nil {
			return fmt.Errorf("manifest entry %s@%s: %w", entry.Type, entry.APIVersion, err)
		}
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range m.Types {
		if _, err := tx.Exec(`
            INSERT INTO resource_types (type, api_version, schema)
            VALUES (?, ?, ?)
            ON CONFLICT(type, api_version) DO UPDATE SET
                schema = excluded.schema
        `, entry.Type, entry.APIVersion, string(entry.Schema)); err != nil {
			return fmt.Errorf("failed to upsert %s@%s: %w", entry.Type, entry.APIVersion, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit manifest: %w", err)
	}

	descriptors, err := loadDescriptors(c.db)
	if err != nil {
		return err
	}
	c.descriptors = descriptors
	c.schemas.Purge()
	return nil
}

// LoadManifest builds a MemoryCatalog directly from a manifest, for
// running without a catalog database.
func LoadManifest(m Manifest) (*MemoryCatalog, error) {
	c := NewMemoryCatalog()
	for _, entry := range m.Types {
		sch, err := schema.ParseObjectType(entry.Schema)
		if err != nil {
			return nil, fmt.Errorf("manifest entry %s@%s: %w", entry.Type, entry.APIVersion, err)
		}
		c.Add(types.Descriptor{Type: entry.Type, APIVersion: entry.APIVersion}, sch)
	}
	return c, nil
}
