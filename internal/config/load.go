package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Load reads a configuration file into a RawConfig. The decoder is chosen by extension:
// .yaml/.yml, .toml, or .json/.jsonc (comments and trailing commas allowed).
// Optional .env.local/.env files beside the config are loaded first and ${VAR}
// references in the file are expanded from the environment before decoding.
func Load(configPath string) (RawConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	if _, err := loadEnvFiles(filepath.Dir(configPath)); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the file content
	expanded := []byte(os.ExpandEnv(string(data)))

	raw, err := decode(filepath.Ext(configPath), expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return raw, nil
}

func decode(ext string, data []byte) (RawConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return RawConfig{}, nil
	}

	// Decode into a plain map: decoders copy the target's named type onto nested
	// mappings, and callers expect map[string]any at every level.
	var m map[string]any
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, err
		}
	case ".json", ".jsonc":
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(std, &m); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .yaml, .yml, .toml, .json or .jsonc)", ext)
	}

	// An explicit null document leaves the map nil.
	if m == nil {
		return RawConfig{}, nil
	}
	return RawConfig(m), nil
}
