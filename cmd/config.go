package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	DB        DBConfig        `mapstructure:"db"`
	Orders    OrdersConfig    `mapstructure:"orders"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Jobs      JobsConfig      `mapstructure:"jobs"`
	Log       LogConfig       `mapstructure:"log"`
}

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN renders the connection string for the pgx based GORM driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type OrdersConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
}

// KafkaConfig enables the Kafka event publisher when Brokers is not empty.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type TelemetryConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

// JobsConfig holds six-field cron schedules. An empty schedule disables the job.
type JobsConfig struct {
	LowStockSchedule      string `mapstructure:"low_stock_schedule"`
	DelayedOrdersSchedule string `mapstructure:"delayed_orders_schedule"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SlogLevel parses Level, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LoadConfig reads an optional .env file and then the ORDERFLOW_ environment.
// Nested keys use underscores: ORDERFLOW_DB_HOST, ORDERFLOW_KAFKA_BROKERS.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("ORDERFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "orderflow")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "orderflow")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("orders.number_prefix", "EM")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "orderflow.events")
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("jobs.low_stock_schedule", "0 */15 * * * *")
	v.SetDefault("jobs.delayed_orders_schedule", "0 0 7 * * *")
	v.SetDefault("log.level", "info")
}
