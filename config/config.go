package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the client CLI and the reference service.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Client side
	Client ClientConfig

	// Reference service
	HTTPServer HTTPServerConfig
	Service    ServiceConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClientConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

// ServiceConfig configures the reference embedding service.
type ServiceConfig struct {
	Credentials     []CredentialConfig
	NonceTTL        time.Duration // max age of a nonce, also how long it is remembered
	RateLimitPerMin int
	Dimensions      int
	Models          []string
	DefaultModel    string
}

type CredentialConfig struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

const envPrefix = "INFRABED"

// Load reads config.yaml from ./config, . or /etc/infrabed/, after loading
// a .env file if one exists. Environment variables override file values,
// e.g. INFRABED_CLIENT_API_KEY for client.api_key.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit config file; an empty path searches
// the default locations.
func LoadFrom(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/infrabed/")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Client
	cfg.Client.APIKey = v.GetString("client.api_key")
	cfg.Client.APISecret = v.GetString("client.api_secret")
	cfg.Client.BaseURL = v.GetString("client.base_url")
	if key := v.GetString("api_key"); key != "" {
		cfg.Client.APIKey = key
	}
	if secret := v.GetString("api_secret"); secret != "" {
		cfg.Client.APISecret = secret
	}

	// Reference service
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")

	cfg.Service.NonceTTL = v.GetDuration("service.nonce_ttl")
	cfg.Service.RateLimitPerMin = v.GetInt("service.rate_limit_per_min")
	cfg.Service.Dimensions = v.GetInt("service.dimensions")
	cfg.Service.DefaultModel = v.GetString("service.default_model")
	cfg.Service.Models = splitList(v.GetStringSlice("service.models"))

	if v.IsSet("service.credentials") {
		if list, ok := v.Get("service.credentials").([]interface{}); ok {
			for _, item := range list {
				if m, ok := item.(map[string]interface{}); ok {
					cfg.Service.Credentials = append(cfg.Service.Credentials, CredentialConfig{
						APIKey:    expandEnvVar(v, getStringFromMap(m, "api_key")),
						APISecret: expandEnvVar(v, getStringFromMap(m, "api_secret")),
					})
				}
			}
		}
	}
	// the client's own credentials are accepted by a local service
	if len(cfg.Service.Credentials) == 0 && cfg.Client.APIKey != "" && cfg.Client.APISecret != "" {
		cfg.Service.Credentials = []CredentialConfig{{APIKey: cfg.Client.APIKey, APISecret: cfg.Client.APISecret}}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("client.base_url", "http://localhost:8000/back/")

	v.SetDefault("http_server.port", 8000)
	v.SetDefault("http_server.mode", "debug")

	v.SetDefault("service.nonce_ttl", "5m")
	v.SetDefault("service.rate_limit_per_min", 600)
	v.SetDefault("service.dimensions", 384)
	v.SetDefault("service.default_model", "hashed-bow-384")
	v.SetDefault("service.models", []string{"hashed-bow-384"})
}

// Validate checks the client section.
func (c ClientConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("client.api_key is required")
	}
	if c.APISecret == "" {
		return fmt.Errorf("client.api_secret is required")
	}
	if c.BaseURL != "" && !strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("client.base_url must end with '/'")
	}
	return nil
}

// Validate checks the reference service section.
func (s ServiceConfig) Validate() error {
	if len(s.Credentials) == 0 {
		return fmt.Errorf("no service credentials configured - add service.credentials to config.yaml")
	}
	seen := make(map[string]bool, len(s.Credentials))
	for i, c := range s.Credentials {
		if c.APIKey == "" || c.APISecret == "" {
			return fmt.Errorf("credential %d: api_key and api_secret are required", i)
		}
		if seen[c.APIKey] {
			return fmt.Errorf("credential %d: duplicate api_key", i)
		}
		seen[c.APIKey] = true
	}
	if s.Dimensions <= 0 {
		return fmt.Errorf("service.dimensions must be positive")
	}
	if s.NonceTTL <= 0 {
		return fmt.Errorf("service.nonce_ttl must be positive")
	}
	if s.RateLimitPerMin <= 0 {
		return fmt.Errorf("service.rate_limit_per_min must be positive")
	}
	return nil
}

// CredentialMap returns the configured credentials keyed by API key.
func (s ServiceConfig) CredentialMap() map[string]string {
	m := make(map[string]string, len(s.Credentials))
	for _, c := range s.Credentials {
		m[c.APIKey] = c.APISecret
	}
	return m
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	name := value[2 : len(value)-1]
	if envValue := os.Getenv(name); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(name)); envValue != "" {
		return envValue
	}
	return value
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
