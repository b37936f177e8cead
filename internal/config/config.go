package config

import (
	"encoding/json"
	"fmt"

	"github.com/sdeodharms/bicep/internal/syntax"
)

// Config carries the client-facing settings, delivered through LSP
// initializationOptions.
type Config struct {
	Newline            string `json:"newline"`     // "lf" or "crlf"
	IndentKind         string `json:"indent_kind"` // "space" or "tab"
	IndentSize         int    `json:"indent_size"`
	InsertFinalNewline bool   `json:"insert_final_newline"`
}

var defaultConfig = Config{
	Newline:            "lf",
	IndentKind:         "space",
	IndentSize:         2,
	InsertFinalNewline: true,
}

// Load merges v over the defaults. v is whatever the client sent as
// initializationOptions; only fields present there overwrite.
func Load(v any) (Config, error) {
	cfg := defaultConfig

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}
	return cfg, nil
}

// PrintOptions translates the config into printer options.
func (c Config) PrintOptions() syntax.Options {
	opts := syntax.Options{
		Newline:            syntax.LF,
		Indent:             syntax.IndentSpaces,
		IndentSize:         c.IndentSize,
		InsertFinalNewline: c.InsertFinalNewline,
	}
	if c.Newline == "crlf" {
		opts.Newline = syntax.CRLF
	}
	if c.IndentKind == "tab" {
		opts.Indent = syntax.IndentTabs
	}
	return opts
}
