package cmd

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/yuanwutong/portfolio/internal/config"
	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/server"
	"github.com/yuanwutong/portfolio/internal/ui"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// contentSource returns where content is read from. The returned fs.FS is
// nil for remote content.
func contentSource(cfg *config.Config) (content.Source, fs.FS) {
	if cfg.Remote() {
		return content.HTTPSource{
			BaseURL: cfg.ContentURL,
			Client:  &http.Client{Timeout: cfg.FetchTimeout()},
		}, nil
	}
	fsys := os.DirFS(cfg.ContentDir)
	return content.DirSource{FS: fsys}, fsys
}

// serverConfig maps the file configuration onto the server's.
func serverConfig(cfg *config.Config) server.Config {
	src, _ := contentSource(cfg)
	visibility, _ := ui.ParseVisibilityPolicy(cfg.Visibility)
	return server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
		Source:   src,
		Timeout:  cfg.FetchTimeout(),
		Exclude:  cfg.Exclude,
		Title:    cfg.Title,
		Page: ui.Options{
			DefaultLang:   cfg.Language(),
			Visibility:    visibility,
			WheelCooldown: cfg.WheelCooldown(),
			Phrases:       cfg.Phrases(),
		},
		Particles: server.ParticlesConfig{
			Enabled:      cfg.Particles.Enabled,
			Count:        cfg.Particles.Count,
			LinkDistance: cfg.Particles.LinkDistance,
			FPS:          cfg.Particles.FPS,
		},
	}
}
