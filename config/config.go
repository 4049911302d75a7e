package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Platform PlatformConfig `mapstructure:"platform"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// PlatformConfig describes the remote trading platform's WebAPI endpoint and
// the manager credential used to administer accounts on it.
type PlatformConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	ManagerLogin    uint64 `mapstructure:"manager_login"`
	ManagerPassword string `mapstructure:"manager_password"`
	Version         int    `mapstructure:"version"`
	Agent           string `mapstructure:"agent"`
	// SessionTTL is the manager session freshness window. Kept shorter than
	// the platform's (undiscoverable) session timeout so we never race expiry.
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxAmount      string        `mapstructure:"max_amount"`
}

// MaxAmountDecimal parses the configured maximum transaction amount.
func (p PlatformConfig) MaxAmountDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(p.MaxAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing platform.max_amount %q: %w", p.MaxAmount, err)
	}
	return d, nil
}

// AdminConfig guards the administrative apply/user endpoints.
type AdminConfig struct {
	Token    string   `mapstructure:"token"`
	AllowIPs []string `mapstructure:"allow_ips"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MTG_ (MT5 Gateway).
// Nested keys use underscore: MTG_DATABASE_HOST, MTG_PLATFORM_BASE_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "mt5_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("platform.base_url", "")
	v.SetDefault("platform.manager_login", 0)
	v.SetDefault("platform.manager_password", "")
	v.SetDefault("platform.version", 484)
	v.SetDefault("platform.agent", "agent")
	v.SetDefault("platform.session_ttl", "25m")
	v.SetDefault("platform.connect_timeout", "15s")
	v.SetDefault("platform.request_timeout", "30s")
	v.SetDefault("platform.max_amount", "1000000000")
	v.SetDefault("admin.token", "")
	v.SetDefault("admin.allow_ips", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MTG_PLATFORM_BASE_URL -> platform.base_url
	v.SetEnvPrefix("MTG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
