package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/yuanwutong/portfolio/internal/i18n"
	"github.com/yuanwutong/portfolio/internal/ui"
)

// EnvPrefix marks environment variables that override config keys.
const EnvPrefix = "PORTFOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PORTFOLIO_PORT -> port,
	// PORTFOLIO_PARTICLES__FPS -> particles.fps.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ContentDir == "" && c.ContentURL == "" {
		return fmt.Errorf("content_dir or content_url is required")
	}
	if c.ContentURL != "" {
		u, err := url.Parse(c.ContentURL)
		if err != nil {
			return fmt.Errorf("invalid content_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid content_url %q: scheme must be http or https", c.ContentURL)
		}
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if i18n.NormalizeLang(c.DefaultLanguage) == "" {
		return fmt.Errorf("invalid default_language %q: must be zh or en", c.DefaultLanguage)
	}

	if _, err := ui.ParseVisibilityPolicy(c.Visibility); err != nil {
		return err
	}

	if c.FetchTimeoutMS < 0 {
		return fmt.Errorf("fetch_timeout_ms must be non-negative")
	}
	if c.WheelCooldownMS < 0 {
		return fmt.Errorf("wheel_cooldown_ms must be non-negative")
	}

	if c.Particles.Count < 0 {
		return fmt.Errorf("particles.count must be non-negative")
	}
	if c.Particles.LinkDistance < 0 {
		return fmt.Errorf("particles.link_distance must be non-negative")
	}
	if c.Particles.FPS < 0 || c.Particles.FPS > 120 {
		return fmt.Errorf("particles.fps must be between 0 and 120")
	}

	return nil
}

// Language returns the configured default language, falling back to zh.
func (c *Config) Language() i18n.Lang {
	if lang := i18n.NormalizeLang(c.DefaultLanguage); lang != "" {
		return lang
	}
	return i18n.LangZH
}

// FetchTimeout returns the per-fetch content timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutMS) * time.Millisecond
}

// WheelCooldown returns the carousel wheel cool-down.
func (c *Config) WheelCooldown() time.Duration {
	return time.Duration(c.WheelCooldownMS) * time.Millisecond
}

// Phrases returns the typewriter phrases, or nil when the typewriter is
// disabled.
func (c *Config) Phrases() []string {
	if !c.Hero.Typewriter {
		return nil
	}
	return c.Hero.Phrases
}

// Remote reports whether content is fetched over HTTP.
func (c *Config) Remote() bool { return c.ContentURL != "" }
