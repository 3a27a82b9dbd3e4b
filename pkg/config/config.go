// Package config loads kinship's TOML configuration.
//
// Configuration is optional everywhere: a missing file or a missing key
// falls back to defaults, so the binary runs with no config at all.
//
//	[server]
//	addr = ":8000"
//	max_body_bytes = 1048576
//	session_ttl_minutes = 60
//
//	[limits]
//	max_traversal_depth = 100
//
//	[log]
//	level = "info"
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kinship-dev/kinship/pkg/family/transform"
)

// Server configures the HTTP API.
type Server struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`

	// MaxBodyBytes caps the size of an import request body.
	MaxBodyBytes int64 `toml:"max_body_bytes"`

	// SessionTTLMinutes is how long an idle session survives before the
	// registry sweeps it.
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// Limits configures graph traversal bounds.
type Limits struct {
	// MaxTraversalDepth bounds ancestor/descendant walks during cycle
	// detection.
	MaxTraversalDepth int `toml:"max_traversal_depth"`
}

// Log configures logging.
type Log struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Config is the root configuration document.
type Config struct {
	Server Server `toml:"server"`
	Limits Limits `toml:"limits"`
	Log    Log    `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Addr:              ":8000",
			MaxBodyBytes:      1 << 20,
			SessionTTLMinutes: 60,
		},
		Limits: Limits{MaxTraversalDepth: transform.DefaultMaxDepth},
		Log:    Log{Level: "info"},
	}
}

// Load reads the TOML file at path, layering it over [Default]. An empty
// path returns the defaults. Unknown keys are an error so typos surface
// instead of being silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg.withDefaults(), nil
}

// withDefaults fills zero values with defaults, so a partial file only
// overrides what it names.
func (c Config) withDefaults() Config {
	def := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = def.Server.MaxBodyBytes
	}
	if c.Server.SessionTTLMinutes <= 0 {
		c.Server.SessionTTLMinutes = def.Server.SessionTTLMinutes
	}
	if c.Limits.MaxTraversalDepth <= 0 {
		c.Limits.MaxTraversalDepth = def.Limits.MaxTraversalDepth
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	return c
}
