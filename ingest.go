package main

import (
	"fmt"
	"os"

	"github.com/sdeodharms/bicep/internal/catalog"
)

// runIngest seeds the catalog database from a JSON type manifest.
func runIngest(catalogPath, manifestPath string) error {
	if catalogPath == "" {
		return fmt.Errorf("no catalog database configured (use -types or BICEP_TYPES_DB)")
	}

	f, err := os.Open(manifestPath)
	if err != nil {
		return err
	}
	defer f.Close()

	manifest, err := catalog.ReadManifest(f)
	if err != nil {
		return err
	}

	c, err := catalog.OpenSQLite(catalogPath)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Ingest(manifest); err != nil {
		return err
	}
	fmt.Printf("Ingested %d types into %s\n", len(manifest.Types), catalogPath)
	return nil
}
