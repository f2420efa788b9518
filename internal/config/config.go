package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the project config file searched for upward from the scan
// root.
const FileName = ".solscan.yaml"

const envPrefix = "SOLSCAN_"

type IgnoreRule struct {
	Rule   string `koanf:"rule" yaml:"rule"`
	Path   string `koanf:"path" yaml:"path"`
	Reason string `koanf:"reason" yaml:"reason,omitempty"`
}

type Config struct {
	SeverityThreshold string       `koanf:"severity_threshold" yaml:"severity_threshold"`
	IncludeRules      []string     `koanf:"include_rules" yaml:"include_rules,omitempty"`
	ExcludeRules      []string     `koanf:"exclude_rules" yaml:"exclude_rules,omitempty"`
	FailOn            string       `koanf:"fail_on" yaml:"fail_on,omitempty"`
	Ignore            []IgnoreRule `koanf:"ignore" yaml:"ignore,omitempty"`
}

func Default() Config {
	return Config{SeverityThreshold: "info"}
}

// Load layers defaults, the nearest .solscan.yaml found walking up from
// startDir, and SOLSCAN_* environment variables, in that order. Returns
// the config and the path of the file used (empty when none was found).
func Load(startDir string) (Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"severity_threshold": "info",
	}, "."), nil); err != nil {
		return Default(), "", fmt.Errorf("load defaults: %w", err)
	}

	path := findConfigFile(startDir)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Default(), path, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Default(), path, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Default(), path, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, path, nil
}

func findConfigFile(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
