package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	LLM     LLMConfig     `yaml:"llm"`
	Clarity ClarityConfig `yaml:"clarity"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	CORSOrigins  []string      `yaml:"corsOrigins"`
}

// LLMConfig contains ChatGPT/OpenAI settings. An empty APIKey disables the
// evaluator entirely and the service runs heuristic-only.
type LLMConfig struct {
	APIKey  string        `yaml:"apiKey"`
	BaseURL string        `yaml:"baseUrl"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// ClarityConfig controls the scoring pipeline.
type ClarityConfig struct {
	MaxTextLen   int           `yaml:"maxTextLen"`
	FetchTimeout time.Duration `yaml:"fetchTimeout"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitOrigins(v)
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = parsed
		}
	}
	if v := os.Getenv("CLARITY_MAX_TEXT_LEN"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Clarity.MaxTextLen = parsed
		}
	}
	if v := os.Getenv("PAGE_FETCH_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Clarity.FetchTimeout = parsed
		}
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			origins = append(origins, clean)
		}
	}
	return origins
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 45 * time.Second,
		},
		LLM: LLMConfig{
			Model:   "gpt-4o-mini",
			Timeout: 20 * time.Second,
		},
		Clarity: ClarityConfig{
			MaxTextLen:   12000,
			FetchTimeout: 10 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.Clarity.MaxTextLen <= 0 {
		return errors.New("clarity.maxTextLen must be positive")
	}
	if c.Clarity.FetchTimeout <= 0 {
		return errors.New("clarity.fetchTimeout must be positive")
	}
	return nil
}
