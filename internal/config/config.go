package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Log      LogConfig      `yaml:"log"`
	Map      MapConfig      `yaml:"map"`
	Seed     SeedConfig     `yaml:"seed"`
}

type ServerConfig struct {
	Addr                string `yaml:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

// DatabaseConfig: si Driver está vacío el servicio corre 100% in-memory.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "" | "postgres" | "sqlite"
	DSN    string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr              string `yaml:"addr"`
	SummaryTTLSeconds int    `yaml:"summary_ttl_seconds"`
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers"`
	IntentsTopic  string   `yaml:"intents_topic"`
	AlertsTopic   string   `yaml:"alerts_topic"`
	ConsumerGroup string   `yaml:"consumer_group"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type MapConfig struct {
	CenterLatitude  float64 `yaml:"center_latitude"`
	CenterLongitude float64 `yaml:"center_longitude"`
	Zoom            float64 `yaml:"zoom"`
}

type SeedConfig struct {
	Enabled *bool `yaml:"enabled"`
}

func (c SeedConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c RedisConfig) SummaryTTL() time.Duration {
	return time.Duration(c.SummaryTTLSeconds) * time.Second
}

// Load lee el YAML (si filename no está vacío), aplica overrides de env y defaults.
func Load(filename string) (*Config, error) {
	var cfg Config

	if strings.TrimSpace(filename) != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
	}

	cfg.applyEnv(os.Getenv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := strings.TrimSpace(getenv("DB_DRIVER")); v != "" {
		c.Database.Driver = v
	}
	if v := strings.TrimSpace(getenv("DB_DSN")); v != "" {
		c.Database.DSN = v
		// Igual que antes: un DSN sin driver explícito se asume Postgres.
		if c.Database.Driver == "" {
			c.Database.Driver = "postgres"
		}
	}
	if v := strings.TrimSpace(getenv("REDIS_ADDR")); v != "" {
		c.Redis.Addr = v
	}
	if v := strings.TrimSpace(getenv("KAFKA_BROKERS")); v != "" {
		c.Kafka.Brokers = splitCSV(v)
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		c.Log.App = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeoutSeconds <= 0 {
		c.Server.ReadTimeoutSeconds = 5
	}
	if c.Server.WriteTimeoutSeconds <= 0 {
		c.Server.WriteTimeoutSeconds = 10
	}
	if c.Redis.SummaryTTLSeconds <= 0 {
		c.Redis.SummaryTTLSeconds = 30
	}
	if c.Kafka.IntentsTopic == "" {
		c.Kafka.IntentsTopic = "livestock.intents"
	}
	if c.Kafka.AlertsTopic == "" {
		c.Kafka.AlertsTopic = "livestock.alerts"
	}
	if c.Kafka.ConsumerGroup == "" {
		c.Kafka.ConsumerGroup = "livestock-tracker"
	}
	if c.Log.App == "" {
		c.Log.App = "livestock-tracker"
	}
	// Eastern Cape, South Africa
	if c.Map.CenterLatitude == 0 && c.Map.CenterLongitude == 0 {
		c.Map.CenterLatitude = -32.8833
		c.Map.CenterLongitude = 27.8333
	}
	if c.Map.Zoom <= 0 {
		c.Map.Zoom = 8
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.Driver != "" && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when database.driver is set")
	}
	if len(c.Kafka.Brokers) > 0 {
		if strings.TrimSpace(c.Kafka.ConsumerGroup) == "" {
			return fmt.Errorf("kafka.consumer_group is required when kafka.brokers is set")
		}
		if strings.TrimSpace(c.Kafka.AlertsTopic) == "" || strings.TrimSpace(c.Kafka.IntentsTopic) == "" {
			return fmt.Errorf("kafka.alerts_topic and kafka.intents_topic are required when kafka.brokers is set")
		}
	}
	if c.Map.CenterLatitude < -90 || c.Map.CenterLatitude > 90 {
		return fmt.Errorf("map.center_latitude out of range")
	}
	if c.Map.CenterLongitude < -180 || c.Map.CenterLongitude > 180 {
		return fmt.Errorf("map.center_longitude out of range")
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
