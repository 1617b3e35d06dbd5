// file: radix/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// User is a configured API account. Passwords are stored as bcrypt
// hashes, never in the clear.
type User struct {
	Username     string `json:"username" mapstructure:"username"`
	PasswordHash string `json:"password_hash" mapstructure:"password_hash"`
	Role         string `json:"role" mapstructure:"role"`
}

// Config holds all runtime settings of the radix service.
type Config struct {
	ServiceName string `json:"service_name" mapstructure:"service_name"`
	HTTPAddr    string `json:"http_addr" mapstructure:"http_addr"`
	LogLevel    string `json:"log_level" mapstructure:"log_level"`
	LogToFile   bool   `json:"log_to_file" mapstructure:"log_to_file"`
	LogFile     string `json:"log_file" mapstructure:"log_file"`
	DevMode     bool   `json:"dev_mode" mapstructure:"dev_mode"`
	AuthEnabled bool   `json:"auth_enabled" mapstructure:"auth_enabled"`
	JwtSecret   string `json:"jwt_secret" mapstructure:"jwt_secret"`
	TokenTTLMin int    `json:"token_ttl_min" mapstructure:"token_ttl_min"`
	WatchBuffer int    `json:"watch_buffer" mapstructure:"watch_buffer"`
	Users       []User `json:"users" mapstructure:"users"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		ServiceName: "radix",
		HTTPAddr:    "127.0.0.1:8080",
		LogLevel:    "info",
		LogToFile:   false,
		LogFile:     "logs/radix.log",
		DevMode:     false,
		AuthEnabled: true,
		JwtSecret:   "default_secret",
		TokenTTLMin: 720,
		WatchBuffer: 64,
	}
}

// Load loads config from file. ${ENV_VAR} references inside the file
// are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = ReplaceEnvVars(data)

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv loads config from environment using prefix.
func LoadFromEnv(prefix string) *Config {
	cfg := Default()

	cfg.ServiceName = GetEnvStr(prefix+"SERVICE_NAME", cfg.ServiceName)
	cfg.HTTPAddr = GetEnvStr(prefix+"HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = GetEnvStr(prefix+"LOG_LEVEL", cfg.LogLevel)
	cfg.LogToFile = GetEnvBool(prefix+"LOG_TO_FILE", cfg.LogToFile)
	cfg.LogFile = GetEnvStr(prefix+"LOG_FILE", cfg.LogFile)
	cfg.DevMode = GetEnvBool(prefix+"DEV_MODE", cfg.DevMode)
	cfg.AuthEnabled = GetEnvBool(prefix+"AUTH_ENABLED", cfg.AuthEnabled)
	cfg.JwtSecret = GetEnvStr(prefix+"JWT_SECRET", cfg.JwtSecret)
	cfg.TokenTTLMin = GetEnvInt(prefix+"TOKEN_TTL_MIN", cfg.TokenTTLMin)
	cfg.WatchBuffer = GetEnvInt(prefix+"WATCH_BUFFER", cfg.WatchBuffer)

	return cfg
}

// LoadWithFallback loads from the given path, from RADIX_CONFIG, or
// from env vars when no file is available.
func LoadWithFallback(path, envPrefix string) *Config {
	if path == "" {
		path = os.Getenv("RADIX_CONFIG")
	}
	if path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return LoadFromEnv(envPrefix)
}
