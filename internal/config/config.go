package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port                string
	GinMode             string
	ContentPath         string
	DefaultLanguage     string
	Languages           []string
	LangSwitcherEnabled bool
	DBPath              string
	AdminUsername       string
	AdminPassword       string
	LogLevel            string
	LogFormat           string
	HomeVideoDelay      time.Duration
	AttentionDelay      time.Duration
	GifRefocusDelay     time.Duration
	SessionIdle         time.Duration
	StaticLayout        string
	ModelViewerURL      string

	// DevAdminCredentials is set when the admin credentials fell back to defaults.
	DevAdminCredentials bool
}

const (
	StaticLayoutGrid    = "grid"
	StaticLayoutCollage = "collage"
)

// Load reads configuration from the process environment. godotenv/autoload is
// imported by main so a local .env file is already merged in.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:            get("PORT", "8080"),
		GinMode:         get("GIN_MODE", "debug"),
		ContentPath:     strings.TrimRight(get("CONTENT_PATH", "content"), "/"),
		DefaultLanguage: strings.ToLower(get("DEFAULT_LANGUAGE", "lv")),
		DBPath:          get("DB_PATH", "portfolio.db"),
		AdminUsername:   getenv("ADMIN_USERNAME"),
		AdminPassword:   getenv("ADMIN_PASSWORD"),
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       get("LOG_FORMAT", "json"),
		StaticLayout:    get("STATIC_LAYOUT", StaticLayoutGrid),
		ModelViewerURL:  get("MODEL_VIEWER_URL", "https://sketchfab.com/models/0f1b2c3d4e5f/embed"),
	}

	for _, l := range strings.Split(get("LANGUAGES", "lv,en"), ",") {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			cfg.Languages = append(cfg.Languages, l)
		}
	}
	if !lo.Contains(cfg.Languages, cfg.DefaultLanguage) {
		cfg.Languages = append([]string{cfg.DefaultLanguage}, cfg.Languages...)
	}

	var err error
	if cfg.LangSwitcherEnabled, err = parseBool(get("LANG_SWITCHER_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("LANG_SWITCHER_ENABLED: %w", err)
	}

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"HOME_VIDEO_DELAY", "3s", &cfg.HomeVideoDelay},
		{"ATTENTION_DELAY", "2500ms", &cfg.AttentionDelay},
		{"GIF_REFOCUS_DELAY", "150ms", &cfg.GifRefocusDelay},
		{"SESSION_IDLE", "30m", &cfg.SessionIdle},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(get(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.key, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%s: negative duration %s", d.key, v)
		}
		*d.dst = v
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
	}

	switch cfg.StaticLayout {
	case StaticLayoutGrid, StaticLayoutCollage:
	default:
		return nil, fmt.Errorf("STATIC_LAYOUT: unknown layout %q", cfg.StaticLayout)
	}

	// Default credentials for development
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		cfg.DevAdminCredentials = true
		if cfg.AdminUsername == "" {
			cfg.AdminUsername = "admin"
		}
		if cfg.AdminPassword == "" {
			cfg.AdminPassword = "admin123"
		}
	}

	return cfg, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

