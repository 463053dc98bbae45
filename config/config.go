package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"decision-router/pkg/datemath"
)

// Default downstream endpoints.
const (
	DefaultHealthMCPURL       = "https://romantic-black-camel.fastmcp.app/mcp"
	DefaultProductivityMCPURL = "https://maximum-brown-silverfish.fastmcp.app/mcp"
	DefaultCognitiveMCPURL    = "https://dynamic-aquamarine-junglefowl.fastmcp.app/mcp"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar used to compute "today"
	Timezone string

	// Downstream MCP services
	MCP MCPConfig

	// Inbound MCP transport
	MCPServer MCPServerConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MCPConfig struct {
	CallTimeout time.Duration

	Health       EndpointConfig
	Productivity EndpointConfig
	Cognitive    EndpointConfig
}

type EndpointConfig struct {
	URL string
}

type MCPServerConfig struct {
	SessionTTL time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// Load loads configuration using Viper.
// A .env file is applied first when present. Config file name: config.yaml,
// searched in ./config, ., /etc/decision-router/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/decision-router/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Timezone = viper.GetString("timezone")

	// Downstream MCP services
	cfg.MCP.CallTimeout = viper.GetDuration("mcp.call_timeout")
	cfg.MCP.Health.URL = expandEnvVar(viper.GetString("mcp.health.url"))
	cfg.MCP.Productivity.URL = expandEnvVar(viper.GetString("mcp.productivity.url"))
	cfg.MCP.Cognitive.URL = expandEnvVar(viper.GetString("mcp.cognitive.url"))
	if healthURL := viper.GetString("health_mcp_url"); healthURL != "" {
		cfg.MCP.Health.URL = healthURL
	}
	if productivityURL := viper.GetString("productivity_mcp_url"); productivityURL != "" {
		cfg.MCP.Productivity.URL = productivityURL
	}
	if cognitiveURL := viper.GetString("cognitive_mcp_url"); cognitiveURL != "" {
		cfg.MCP.Cognitive.URL = cognitiveURL
	}

	cfg.MCPServer.SessionTTL = viper.GetDuration("mcp_server.session_ttl")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "0.0.0.0")
	viper.SetDefault("http_server.port", 8005)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("timezone", "Local")

	viper.SetDefault("mcp.call_timeout", "30s")
	viper.SetDefault("mcp.health.url", DefaultHealthMCPURL)
	viper.SetDefault("mcp.productivity.url", DefaultProductivityMCPURL)
	viper.SetDefault("mcp.cognitive.url", DefaultCognitiveMCPURL)
	viper.SetDefault("mcp_server.session_ttl", "1h")

	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.per_min", 120)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}
	return value
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if _, err := datemath.NewCalendar(cfg.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if cfg.MCP.CallTimeout <= 0 {
		return fmt.Errorf("mcp.call_timeout must be positive")
	}
	endpoints := map[string]string{
		"mcp.health.url":       cfg.MCP.Health.URL,
		"mcp.productivity.url": cfg.MCP.Productivity.URL,
		"mcp.cognitive.url":    cfg.MCP.Cognitive.URL,
	}
	for key, url := range endpoints {
		if strings.TrimSpace(url) == "" {
			return fmt.Errorf("%s is required", key)
		}
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when rate limiting is enabled")
	}
	return nil
}
