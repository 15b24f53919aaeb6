package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sandfs/sandsh/internal/rules"
	"github.com/sandfs/sandsh/internal/verb"
)

// Config holds the global sandsh configuration.
type Config struct {
	Prompt       string                          `yaml:"prompt"`
	HistoryLimit int                             `yaml:"history_limit"`
	Store        StoreConfig                     `yaml:"store"`
	Tiers        TierConfig                      `yaml:"tiers"`
	Audit        AuditConfig                     `yaml:"audit"`
	Rules        map[string]rules.VerbRuleConfig `yaml:"rules"`
	Serve        ServeConfig                     `yaml:"serve"`
}

// StoreConfig selects and parameterizes the file store backend.
type StoreConfig struct {
	// Backend is "memory" or "sqlite".
	Backend string `yaml:"backend"`
	// Path is the database file for the sqlite backend.
	Path string `yaml:"path"`
	// QuotaBytes caps total stored content; 0 means unlimited.
	QuotaBytes int64 `yaml:"quota_bytes"`
}

// TierConfig controls which safety tiers are enabled.
type TierConfig struct {
	Read      bool `yaml:"read"`
	Write     bool `yaml:"write"`
	Dangerous bool `yaml:"dangerous"`
}

// AuditConfig controls audit log settings.
type AuditConfig struct {
	Path string `yaml:"path"`
}

// ServeConfig controls the websocket session server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Prompt:       "sandsh> ",
		HistoryLimit: 500,
		Store: StoreConfig{
			Backend:    "sqlite",
			Path:       filepath.Join(home, ".local", "share", "sandsh", "store.db"),
			QuotaBytes: 64 << 20,
		},
		Tiers: TierConfig{
			Read:      true,
			Write:     true,
			Dangerous: false,
		},
		Audit: AuditConfig{
			Path: filepath.Join(home, ".local", "share", "sandsh", "audit.jsonl"),
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:7070",
		},
	}
}

// Load reads the config from the standard location
// (~/.config/sandsh/config.yaml). If the file doesn't exist, returns the
// default config.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}

	path := filepath.Join(home, ".config", "sandsh", "config.yaml")
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Expand ~ in file paths.
	cfg.Store.Path = expandHome(cfg.Store.Path)
	cfg.Audit.Path = expandHome(cfg.Audit.Path)

	return cfg, nil
}

func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// ApplyRules creates a RuleSet from the config and sets it on the registry.
// Hardcoded safety rules are always included.
func (c *Config) ApplyRules(reg *verb.Registry) error {
	rs := rules.NewRuleSet(rules.Hardcoded()...)
	for name, vr := range c.Rules {
		fns, err := rules.CompileVerbRule(name, vr)
		if err != nil {
			return err
		}
		for _, fn := range fns {
			rs.AddConfig(fn)
		}
	}
	reg.SetRules(rs)
	return nil
}

// ApplyTiers sets the registry tier permissions from the config.
func (c *Config) ApplyTiers(reg *verb.Registry) {
	reg.SetTier(verb.TierRead, c.Tiers.Read)
	reg.SetTier(verb.TierWrite, c.Tiers.Write)
	reg.SetTier(verb.TierDangerous, c.Tiers.Dangerous)
}

// ConfigPath returns the standard config file path.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sandsh", "config.yaml")
}
