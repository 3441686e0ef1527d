// Package config loads client configuration from a YAML file and/or an
// in-memory map, merged in that order.
package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ranwhenparked/trustap-sdk/client"
)

// Load reads path (optional) and overlays overrides (optional), returning a
// validated client configuration. Credential suppliers and transport
// overrides are code, not configuration; set them on the returned struct.
func Load(path string, overrides map[string]any) (client.Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return client.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return client.Config{}, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg client.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return client.Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return client.Config{}, err
	}
	return cfg, nil
}

func validate(cfg client.Config) error {
	if cfg.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	for path, mode := range cfg.AuthOverrides {
		switch mode {
		case client.AuthBasic, client.AuthOAuth2, client.AuthAuto:
		default:
			return fmt.Errorf("auth override for %q: invalid mode %q (valid: basic, oauth2, auto)", path, mode)
		}
	}
	return nil
}
