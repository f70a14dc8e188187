package model

import "time"

// Config is the full runtime configuration, loaded through the hierarchy
// flags > VERITAS_* env vars > config file > defaults.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	LLM    LLMConfig    `yaml:"llm" mapstructure:"llm"`
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	Verify VerifyConfig `yaml:"verify" mapstructure:"verify"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	AllowedOrigins  []string      `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
}

// LLMConfig configures the reasoning capability shared by the claim
// extractor and the claim judge.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // openai, anthropic, ollama
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// SearchConfig configures the evidence-retrieval capability.
type SearchConfig struct {
	APIKey     string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Depth      string        `yaml:"depth" mapstructure:"depth"` // basic or advanced
	MaxResults int           `yaml:"max_results" mapstructure:"max_results"`
	Timeout    int           `yaml:"timeout" mapstructure:"timeout"` // seconds
	RateLimit  float64       `yaml:"rate_limit" mapstructure:"rate_limit"`
	Burst      int           `yaml:"burst" mapstructure:"burst"`
	CacheTTL   time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// VerifyConfig configures the orchestrator's fan-out.
type VerifyConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent" mapstructure:"max_concurrent"`
	ClaimTimeout  time.Duration `yaml:"claim_timeout" mapstructure:"claim_timeout"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    5 * time.Minute, // A single slow claim delays the whole response
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20, // 1 MiB of input text
			AllowedOrigins:  []string{"*"},
			RateLimitRPS:    10,
			RateLimitBurst:  20,
		},
		LLM: LLMConfig{
			Provider:  "ollama",
			Timeout:   60,
			MaxTokens: 1000,
		},
		Search: SearchConfig{
			Depth:      "basic", // Shallow search: recall traded for latency
			MaxResults: 1,
			Timeout:    20,
			RateLimit:  5,
			Burst:      5,
			CacheTTL:   15 * time.Minute,
		},
		Verify: VerifyConfig{
			MaxConcurrent: 8,
			ClaimTimeout:  30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
