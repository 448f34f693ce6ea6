package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/dynastyhq/gridiron/internal/leaderboard"
)

// Config holds the full service configuration
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
}

// ServerConfig covers the HTTP and WebSocket listeners
type ServerConfig struct {
	RESTPort int `mapstructure:"rest_port"`
	WSPort   int `mapstructure:"ws_port"`
}

// DatabaseConfig covers the PostgreSQL connection
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// GetDSN builds the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig covers the Redis connection
type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// LeaderboardConfig tunes the ranking engine and its cache
type LeaderboardConfig struct {
	TopN             int                              `mapstructure:"top_n"`
	RemaxCareerLongs bool                             `mapstructure:"remax_career_longs"`
	CacheTTL         time.Duration                    `mapstructure:"cache_ttl"`
	RefreshInterval  time.Duration                    `mapstructure:"refresh_interval"`
	Thresholds       map[string]leaderboard.Threshold `mapstructure:"thresholds"`
}

// EngineConfig converts the loaded section into the ranking engine's config
func (c *LeaderboardConfig) EngineConfig() leaderboard.Config {
	return leaderboard.Config{
		TopN:       c.TopN,
		Thresholds: c.Thresholds,
	}
}

// Load reads configuration from the given file, with environment overrides
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GRIDIRON")
	v.AutomaticEnv()

	v.SetDefault("server.rest_port", 8080)
	v.SetDefault("server.ws_port", 8081)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "gridiron")
	v.SetDefault("database.password", "gridiron")
	v.SetDefault("database.dbname", "gridiron")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("leaderboard.top_n", leaderboard.DefaultTopN)
	v.SetDefault("leaderboard.remax_career_longs", false)
	v.SetDefault("leaderboard.cache_ttl", 5*time.Minute)
	v.SetDefault("leaderboard.refresh_interval", 15*time.Minute)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
