package config

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the service. Values are read
// from the environment with sensible development defaults.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	FaceService FaceServiceConfig `mapstructure:"face_service"`
	QR          QRConfig          `mapstructure:"qr"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type FaceServiceConfig struct {
	Addr string `mapstructure:"addr"`
}

// QRConfig carries the symmetric key used to encrypt credential secrets.
// The key is base64 (URL alphabet) and must decode to 32 bytes (AES-256).
type QRConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// Key decodes and validates the configured credential encryption key.
func (q QRConfig) Key() ([]byte, error) {
	key, err := base64.URLEncoding.DecodeString(q.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("qr secret key is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("qr secret key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwt_secret"`
	JWTAudience string `mapstructure:"jwt_audience"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Load builds the configuration from environment variables. Nested keys map
// to underscore-separated variables, e.g. SERVER_PORT or QR_SECRET_KEY.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.dsn", "host=postgres user=postgres password=postgres dbname=entrypass port=5432 sslmode=disable")
	v.SetDefault("redis.addr", "redis:6379")
	v.SetDefault("face_service.addr", "face-service:50051")
	// Development key only. Override in any real deployment.
	v.SetDefault("qr.secret_key", "bMpM5ECy4iwHXYyaQvflStzVrkjXn0D5SGM_cJG_zgY=")
	v.SetDefault("auth.jwt_secret", "dev-secret")
	v.SetDefault("auth.jwt_audience", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", true)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if _, err := cfg.QR.Key(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
