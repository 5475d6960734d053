package config

import (
	"github.com/yuanwutong/portfolio/internal/content"
	"github.com/yuanwutong/portfolio/internal/particles"
)

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = "portfolio.yml"

// DefaultPhrases are typed by the hero typewriter.
var DefaultPhrases = []string{
	"Yuan Wutong",
	"Robotics Developer",
	"Embedded Control Engineer",
	"Flexible Sensor Explorer",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentDir:      ".",
		Title:           "Yuan Wutong",
		Port:            8080,
		DefaultLanguage: "zh",
		Visibility:      "exclusive",
		FetchTimeoutMS:  10000,
		WheelCooldownMS: 500,
		Watch:           true,
		Hero: HeroConfig{
			Typewriter: true,
			Phrases:    append([]string(nil), DefaultPhrases...),
		},
		Particles: ParticlesConfig{
			Enabled:      true,
			Count:        particles.DefaultCount,
			LinkDistance: particles.DefaultLinkDistance,
			FPS:          particles.DefaultFPS,
		},
		Exclude: append([]string(nil), content.DefaultExcludes...),
	}
}
