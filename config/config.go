// Package config loads named dialect overrides (feature bit overrides,
// schema-type maps) from YAML (SPEC_FULL.md §6 "Dialect configuration"),
// for deployments that need to tweak a dialect's advertised features
// without a code change.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ormpath/ormpath/dialect"
)

// DialectOverride is one dialect's YAML override entry.
type DialectOverride struct {
	Features []string          `yaml:"features"`
	Types    map[string]string `yaml:"types"`
}

// Config is the top-level shape of a dialect-overrides YAML document:
//
//	dialects:
//	  postgres:
//	    features: [LimitOffset, Cascades]
//	    types:
//	      uuid.UUID: uuid
type Config struct {
	Dialects map[string]DialectOverride `yaml:"dialects"`
}

// Load reads and parses a dialect-overrides YAML document from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyOverrides layers cfg's overrides onto base (one entry per dialect
// name already present in base), returning a new map; base is left
// unmodified. A dialect name with no matching override in cfg passes
// through unchanged.
func (cfg *Config) ApplyOverrides(base map[string]dialect.Provider) map[string]dialect.Provider {
	out := make(map[string]dialect.Provider, len(base))
	for name, prov := range base {
		out[name] = prov
	}
	if cfg == nil {
		return out
	}
	for name, override := range cfg.Dialects {
		prov, ok := out[name]
		if !ok {
			slog.Warn("config: override for unregistered dialect", "dialect", name)
			continue
		}
		var features dialect.Feature
		hasFeatures := len(override.Features) > 0
		for _, fname := range override.Features {
			f, ok := dialect.ParseFeature(fname)
			if !ok {
				slog.Warn("config: unknown feature name", "dialect", name, "feature", fname)
				continue
			}
			features |= f
		}
		out[name] = dialect.WithOverrides(prov, features, hasFeatures, override.Types)
		slog.Debug("config: applied dialect override", "dialect", name, "features", len(override.Features), "types", len(override.Types))
	}
	return out
}
