package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sdeodharms/bicep/internal/schema"
	"github.com/sdeodharms/bicep/internal/types"
)

const schemaVersion = 1

// schemaCacheSize bounds the number of parsed schemas kept in memory;
// catalogs carry thousands of types and most are never inserted.
const schemaCacheSize = 256

// SQLiteCatalog serves descriptors and schemas from a local catalog
// database. Descriptors are loaded once at open; schema bodies are
// fetched lazily and kept in a bounded LRU cache.
type SQLiteCatalog struct {
	db          *sql.DB
	descriptors []types.Descriptor
	schemas     *lru.Cache[string, *schema.ObjectType]
}

func OpenSQLite(path string) (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	if _, err := db.Exec(`
        PRAGMA foreign_keys = ON;
        PRAGMA journal_mode = WAL;
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set PRAGMA: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize catalog schema: %w", err)
	}

	descriptors, err := loadDescriptors(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	cache, err := lru.New[string, *schema.ObjectType](schemaCacheSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema cache: %w", err)
	}

	return &SQLiteCatalog{db: db, descriptors: descriptors, schemas: cache}, nil
}

func initSchema(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if version == schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS resource_types (
            type TEXT NOT NULL,
            api_version TEXT NOT NULL,
            schema TEXT NOT NULL,
            PRIMARY KEY (type, api_version)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_resource_types_type
            ON resource_types(type COLLATE NOCASE)`,
	}
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}
	return tx.Commit()
}

func loadDescriptors(db *sql.DB) ([]types.Descriptor, error) {
	rows, err := db.Query("SELECT type, api_version FROM resource_types ORDER BY type, api_version")
	if err != nil {
		return nil, fmt.Errorf("failed to query descriptors: %w", err)
	}
	defer rows.Close()

	var descriptors []types.Descriptor
	for rows.Next() {
		var d types.Descriptor
		if err := rows.Scan(&d.Type, &d.APIVersion); err != nil {
			return nil, fmt.Errorf("failed to scan descriptor: %w", err)
		}
		descriptors = append(descriptors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating descriptors: %w", err)
	}
	return descriptors, nil
}

func (c *SQLiteCatalog) Descriptors() []types.Descriptor {
	return c.descriptors
}

func (c *SQLiteCatalog) Schema(desc types.Descriptor) (*schema.ObjectType, error) {
	key := schemaKey(desc)
	if sch, ok := c.schemas.Get(key); ok {
		return sch, nil
	}

	var body []byte
	err := c.db.QueryRow(
		"SELECT schema FROM resource_types WHERE type = ? COLLATE NOCASE AND api_version = ?",
		desc.Type, desc.APIVersion,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query schema for %s: %w", desc, err)
	}

	sch, err := schema.ParseObjectType(body)
	if err != nil {
		return nil, fmt.Errorf("stored schema for %s: %w", desc, err)
	}
	c.schemas.Add(key, sch)
	return sch, nil
}

func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}
