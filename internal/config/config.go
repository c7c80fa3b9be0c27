package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig         = "VOICECART_CONFIG"
	EnvDataDir        = "VOICECART_DATA_DIR"
	EnvStorage        = "VOICECART_STORAGE"
	EnvLanguage       = "VOICECART_LANGUAGE"
	EnvCatalogURL     = "VOICECART_CATALOG_URL"
	EnvCatalogLatency = "VOICECART_CATALOG_LATENCY"
	EnvLogLevel       = "VOICECART_LOG_LEVEL"
)

// Config is the user configuration.
type Config struct {
	DataDir            string        `yaml:"data_dir"`
	Storage            string        `yaml:"storage"`
	Language           string        `yaml:"language"`
	CatalogURL         string        `yaml:"catalog_url"`
	CatalogLatency     time.Duration `yaml:"catalog_latency"`
	LogLevel           string        `yaml:"log_level"`
	MaxSuggestions     int           `yaml:"max_suggestions"`
	SearchHistoryLimit int           `yaml:"search_history_limit"`

	// Path is the file the config was read from.
	Path string `yaml:"-"`
}

// Language is a recognizer locale offered to the user.
type Language struct {
	Code string
	Name string
}

// SupportedLanguages lists the locales the recognizer can be set to.
var SupportedLanguages = []Language{
	{"en-US", "English"},
	{"es-ES", "Spanish"},
	{"fr-FR", "French"},
	{"de-DE", "German"},
	{"it-IT", "Italian"},
	{"pt-BR", "Portuguese"},
	{"zh-CN", "Chinese"},
	{"ja-JP", "Japanese"},
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		DataDir:            filepath.Join(userHomeDir(), ".voicecart", "data"),
		Storage:            "json",
		Language:           "en-US",
		CatalogLatency:     100 * time.Millisecond,
		LogLevel:           "warn",
		MaxSuggestions:     6,
		SearchHistoryLimit: 20,
	}
}

// Load reads the YAML config at path, or at $VOICECART_CONFIG, or at
// ~/.voicecart/config.yaml. A missing file is created with defaults. A .env
// file in the working directory is loaded first, and VOICECART_* variables
// override file values.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	path = resolvePath(path)
	cfg, err := readFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg.Path = path

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg = hydrateDefaults(cfg)
	cfg.DataDir = expandPath(cfg.DataDir)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	switch c.Storage {
	case "json", "sqlite":
	default:
		return fmt.Errorf("storage must be json or sqlite, got %q", c.Storage)
	}
	if !IsSupportedLanguage(c.Language) {
		return fmt.Errorf("unsupported language %q", c.Language)
	}
	if c.CatalogLatency < 0 {
		return fmt.Errorf("catalog_latency must not be negative")
	}
	if c.MaxSuggestions < 1 {
		return fmt.Errorf("max_suggestions must be at least 1")
	}
	if c.SearchHistoryLimit < 1 {
		return fmt.Errorf("search_history_limit must be at least 1")
	}
	return nil
}

// IsSupportedLanguage reports whether code is in SupportedLanguages.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if strings.EqualFold(l.Code, code) {
			return true
		}
	}
	return false
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := writeDefault(path, cfg); err != nil {
				return Config{}, fmt.Errorf("writing default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func writeDefault(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv(EnvCatalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvCatalogLatency); v != "" {
		d, err := parseLatency(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCatalogLatency, err)
		}
		cfg.CatalogLatency = d
	}
	return nil
}

// parseLatency accepts a Go duration or a bare millisecond count.
func parseLatency(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}

func hydrateDefaults(cfg Config) Config {
	def := Default()
	if cfg.DataDir == "" {
		cfg.DataDir = def.DataDir
	}
	if cfg.Storage == "" {
		cfg.Storage = def.Storage
	}
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.MaxSuggestions == 0 {
		cfg.MaxSuggestions = def.MaxSuggestions
	}
	if cfg.SearchHistoryLimit == 0 {
		cfg.SearchHistoryLimit = def.SearchHistoryLimit
	}
	return cfg
}

func resolvePath(path string) string {
	if path != "" {
		return expandPath(path)
	}
	if custom := os.Getenv(EnvConfig); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".voicecart", "config.yaml")
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
