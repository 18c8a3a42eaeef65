package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port        int
	Environment string
	LogMode     string
	LogLevel    string

	// DynamoDB
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	AmbientesTable     string
	ObrasTable         string
	UsuariosTable      string
	NotificacoesTable  string
	MontagensTable     string

	// Auth
	JWTSecret string

	// HTTP
	CORSAllowedOrigins []string

	// Notifications
	RedisAddr               string
	RedisChannelPrefix      string
	NotifyPushURLs          []string
	NotificationFanoutLimit int

	CatalogCacheTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_MODE", "")
	v.SetDefault("LOG_LEVEL", "")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("AMBIENTES_TABLE", "ambientes")
	v.SetDefault("OBRAS_TABLE", "obras")
	v.SetDefault("USUARIOS_TABLE", "usuarios")
	v.SetDefault("NOTIFICACOES_TABLE", "notificacoes")
	v.SetDefault("MONTAGENS_TABLE", "montagens")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_CHANNEL_PREFIX", "notificacoes")
	v.SetDefault("NOTIFY_PUSH_URLS", "")
	v.SetDefault("NOTIFICATION_FANOUT_LIMIT", 4)
	v.SetDefault("CATALOG_CACHE_TTL", "5m")
}

// Load reads configuration from the environment (a .env file is loaded by main).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	logMode := v.GetString("LOG_MODE")
	if logMode == "" {
		logMode = v.GetString("ENVIRONMENT")
	}

	cfg := &Config{
		Port:        v.GetInt("PORT"),
		Environment: v.GetString("ENVIRONMENT"),
		LogMode:     logMode,
		LogLevel:    v.GetString("LOG_LEVEL"),

		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),
		AmbientesTable:     v.GetString("AMBIENTES_TABLE"),
		ObrasTable:         v.GetString("OBRAS_TABLE"),
		UsuariosTable:      v.GetString("USUARIOS_TABLE"),
		NotificacoesTable:  v.GetString("NOTIFICACOES_TABLE"),
		MontagensTable:     v.GetString("MONTAGENS_TABLE"),

		JWTSecret: v.GetString("JWT_SECRET"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		RedisAddr:               v.GetString("REDIS_ADDR"),
		RedisChannelPrefix:      v.GetString("REDIS_CHANNEL_PREFIX"),
		NotifyPushURLs:          splitList(v.GetString("NOTIFY_PUSH_URLS")),
		NotificationFanoutLimit: v.GetInt("NOTIFICATION_FANOUT_LIMIT"),

		CatalogCacheTTL: v.GetDuration("CATALOG_CACHE_TTL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Port <= 0 {
		return fmt.Errorf("PORT must be positive")
	}
	if c.NotificationFanoutLimit <= 0 {
		return fmt.Errorf("NOTIFICATION_FANOUT_LIMIT must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
