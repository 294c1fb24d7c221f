package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"URLAnalyzer/internal/classifier"
)

const (
	configPathEnv  = "URL_ANALYZER_CONFIG"
	thresholdEnv   = "URL_ANALYZER_THRESHOLD"
	keywordsEnv    = "URL_ANALYZER_KEYWORDS"
	addrEnv        = "URL_ANALYZER_ADDR"
	portEnv        = "PORT"
	logLevelEnv    = "URL_ANALYZER_LOG_LEVEL"
	logFileEnv     = "URL_ANALYZER_LOG_FILE"
	chartOutputEnv = "URL_ANALYZER_CHART_OUTPUT"
	rateLimitEnv   = "URL_ANALYZER_RATE_LIMIT_RPS"
)

// Config holds high-level settings required across the application.
type Config struct {
	Classifier ClassifierConfig `yaml:"classifier"`
	Server     ServerConfig     `yaml:"server"`
	Chart      ChartConfig      `yaml:"chart"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ClassifierConfig carries the heuristics injected into the classifier.
type ClassifierConfig struct {
	Threshold int      `yaml:"threshold" validate:"gte=0"`
	Keywords  []string `yaml:"keywords" validate:"min=1,dive,required"`
}

// Rules converts the section into classifier rules.
func (c ClassifierConfig) Rules() classifier.Rules {
	keywords := make([]string, len(c.Keywords))
	copy(keywords, c.Keywords)
	return classifier.Rules{Threshold: c.Threshold, Keywords: keywords}
}

// ServerConfig describes the HTTP front-end.
type ServerConfig struct {
	Addr            string          `yaml:"addr" validate:"required"`
	MaxUploadBytes  int64           `yaml:"maxUploadBytes" validate:"gt=0"`
	ReadTimeout     time.Duration   `yaml:"readTimeout" validate:"gt=0"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout" validate:"gt=0"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout" validate:"gt=0"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Enable only behind a proxy that sets them.
	TrustProxyHeaders bool `yaml:"trustProxyHeaders"`
}

// RateLimitConfig sets the per-client token bucket. Zero requests per second
// disables it; a YAML zero means "keep the default", so disabling goes through
// URL_ANALYZER_RATE_LIMIT_RPS=0. Clients idle for IdleTimeout are forgotten
// every CleanupInterval.
type RateLimitConfig struct {
	RequestsPerSecond float64       `yaml:"requestsPerSecond" validate:"gte=0"`
	Burst             int           `yaml:"burst" validate:"gte=0"`
	CleanupInterval   time.Duration `yaml:"cleanupInterval" validate:"gte=0"`
	IdleTimeout       time.Duration `yaml:"idleTimeout" validate:"gte=0"`
}

// ChartConfig controls the pie chart.
type ChartConfig struct {
	Width      int      `yaml:"width" validate:"gte=100"`
	Height     int      `yaml:"height" validate:"gte=100"`
	Title      string   `yaml:"title"`
	Colors     []string `yaml:"colors" validate:"min=2,dive,rgbhex"`
	OutputPath string   `yaml:"outputPath"`
}

// LoggingConfig selects level, format and an optional rotating log file.
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"loglevel"`
	Format     string `yaml:"format" validate:"oneof=console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gt=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
}

// Load builds the configuration: defaults, then the YAML file (path argument,
// or URL_ANALYZER_CONFIG), then environment overrides (a .env file is loaded
// first when present), then validation.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(thresholdEnv); v != "" {
		threshold, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", thresholdEnv, err)
		}
		c.Classifier.Threshold = threshold
	}

	if v := os.Getenv(keywordsEnv); v != "" {
		c.Classifier.Keywords = splitKeywords(v)
	}

	if v := os.Getenv(rateLimitEnv); v != "" {
		rps, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", rateLimitEnv, err)
		}
		c.Server.RateLimit.RequestsPerSecond = rps
	}

	if v := os.Getenv(addrEnv); v != "" {
		c.Server.Addr = v
	} else if v := os.Getenv(portEnv); v != "" {
		c.Server.Addr = ":" + v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	if v := os.Getenv(logFileEnv); v != "" {
		c.Logging.File = v
	}

	if v := os.Getenv(chartOutputEnv); v != "" {
		c.Chart.OutputPath = v
	}

	return nil
}

func splitKeywords(v string) []string {
	parts := strings.Split(v, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keywords = append(keywords, p)
		}
	}
	return keywords
}

func mergeConfig(base, override Config) Config {
	if override.Classifier.Threshold != 0 {
		base.Classifier.Threshold = override.Classifier.Threshold
	}
	if len(override.Classifier.Keywords) > 0 {
		base.Classifier.Keywords = override.Classifier.Keywords
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.MaxUploadBytes != 0 {
		base.Server.MaxUploadBytes = override.Server.MaxUploadBytes
	}
	if override.Server.ReadTimeout != 0 {
		base.Server.ReadTimeout = override.Server.ReadTimeout
	}
	if override.Server.WriteTimeout != 0 {
		base.Server.WriteTimeout = override.Server.WriteTimeout
	}
	if override.Server.ShutdownTimeout != 0 {
		base.Server.ShutdownTimeout = override.Server.ShutdownTimeout
	}
	if override.Server.TrustProxyHeaders {
		base.Server.TrustProxyHeaders = true
	}
	if override.Server.RateLimit.RequestsPerSecond != 0 {
		base.Server.RateLimit.RequestsPerSecond = override.Server.RateLimit.RequestsPerSecond
	}
	if override.Server.RateLimit.Burst != 0 {
		base.Server.RateLimit.Burst = override.Server.RateLimit.Burst
	}
	if override.Server.RateLimit.CleanupInterval != 0 {
		base.Server.RateLimit.CleanupInterval = override.Server.RateLimit.CleanupInterval
	}
	if override.Server.RateLimit.IdleTimeout != 0 {
		base.Server.RateLimit.IdleTimeout = override.Server.RateLimit.IdleTimeout
	}

	if override.Chart.Width != 0 {
		base.Chart.Width = override.Chart.Width
	}
	if override.Chart.Height != 0 {
		base.Chart.Height = override.Chart.Height
	}
	if override.Chart.Title != "" {
		base.Chart.Title = override.Chart.Title
	}
	if len(override.Chart.Colors) > 0 {
		base.Chart.Colors = override.Chart.Colors
	}
	if override.Chart.OutputPath != "" {
		base.Chart.OutputPath = override.Chart.OutputPath
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}
	if override.Logging.MaxSizeMB != 0 {
		base.Logging.MaxSizeMB = override.Logging.MaxSizeMB
	}
	if override.Logging.MaxBackups != 0 {
		base.Logging.MaxBackups = override.Logging.MaxBackups
	}

	return base
}

// Default returns the built-in configuration.
func Default() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	rules := classifier.DefaultRules()
	return Config{
		Classifier: ClassifierConfig{
			Threshold: rules.Threshold,
			Keywords:  rules.Keywords,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MaxUploadBytes:  10 << 20,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 5,
				Burst:             10,
				CleanupInterval:   time.Minute,
				IdleTimeout:       10 * time.Minute,
			},
		},
		Chart: ChartConfig{
			Width:      600,
			Height:     600,
			Title:      "Legitimacy vs Suspiciousness of URLs",
			Colors:     []string{"87ceeb", "f08080"},
			OutputPath: "classification_pie.png",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
