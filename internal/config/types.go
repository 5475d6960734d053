package config

// Config is the top-level portfolio configuration, corresponding to
// portfolio.yml.
type Config struct {
	ContentDir      string          `yaml:"content_dir" koanf:"content_dir"`
	ContentURL      string          `yaml:"content_url" koanf:"content_url"`
	Title           string          `yaml:"title" koanf:"title"`
	Port            int             `yaml:"port" koanf:"port"`
	DefaultLanguage string          `yaml:"default_language" koanf:"default_language"`
	Visibility      string          `yaml:"visibility" koanf:"visibility"`
	FetchTimeoutMS  int             `yaml:"fetch_timeout_ms" koanf:"fetch_timeout_ms"`
	WheelCooldownMS int             `yaml:"wheel_cooldown_ms" koanf:"wheel_cooldown_ms"`
	Watch           bool            `yaml:"watch" koanf:"watch"`
	AllowAllOrigins bool            `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Hero            HeroConfig      `yaml:"hero" koanf:"hero"`
	Particles       ParticlesConfig `yaml:"particles" koanf:"particles"`
	Exclude         []string        `yaml:"exclude" koanf:"exclude"`
}

// HeroConfig holds the typewriter settings.
type HeroConfig struct {
	Typewriter bool     `yaml:"typewriter" koanf:"typewriter"`
	Phrases    []string `yaml:"phrases" koanf:"phrases"`
}

// ParticlesConfig holds the background animation settings.
type ParticlesConfig struct {
	Enabled      bool    `yaml:"enabled" koanf:"enabled"`
	Count        int     `yaml:"count" koanf:"count"`
	LinkDistance float64 `yaml:"link_distance" koanf:"link_distance"`
	FPS          int     `yaml:"fps" koanf:"fps"`
}
