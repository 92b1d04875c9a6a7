package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort               string `mapstructure:"HTTP_PORT"`
	DBHost                 string `mapstructure:"DB_HOST"`
	DBPort                 string `mapstructure:"DB_PORT"`
	DBUser                 string `mapstructure:"DB_USER"`
	DBPassword             string `mapstructure:"DB_PASSWORD"`
	DBName                 string `mapstructure:"DB_NAME"`
	DBSslMode              string `mapstructure:"DB_SSLMODE"`
	JWTSecret              string `mapstructure:"JWT_SECRET"`
	KafkaHost              string `mapstructure:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `mapstructure:"KAFKA_ORDER_CHANGED_TOPIC"`
	SESRegion              string `mapstructure:"SES_REGION"`
	SESFromAddress         string `mapstructure:"SES_FROM_ADDRESS"`
	OutboxBatchSize        int    `mapstructure:"OUTBOX_BATCH_SIZE"`
	OutboxMaxAttempts      int    `mapstructure:"OUTBOX_MAX_ATTEMPTS"`
	OutboxSchedule         string `mapstructure:"OUTBOX_SCHEDULE"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"HTTP_PORT":                 "8080",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_NAME":                   "laundry",
	"DB_SSLMODE":                "disable",
	"KAFKA_HOST":                "localhost:9092",
	"KAFKA_ORDER_CHANGED_TOPIC": "laundry.order.status-changed",
	"SES_REGION":                "us-east-1",
	"OUTBOX_BATCH_SIZE":         50,
	"OUTBOX_MAX_ATTEMPTS":       5,
	"OUTBOX_SCHEDULE":           "*/5 * * * * *",
	"LOG_LEVEL":                 "info",
}

// required have no default and must come from the environment.
var required = []string{"DB_PASSWORD", "JWT_SECRET", "SES_FROM_ADDRESS"}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range required {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var missing []string
	values := map[string]string{
		"DB_PASSWORD":      c.DBPassword,
		"JWT_SECRET":       c.JWTSecret,
		"SES_FROM_ADDRESS": c.SESFromAddress,
	}
	for _, key := range required {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	if c.OutboxBatchSize < 1 || c.OutboxMaxAttempts < 1 {
		return errors.New("OUTBOX_BATCH_SIZE and OUTBOX_MAX_ATTEMPTS must be positive")
	}
	return nil
}

// DSN is the PostgreSQL connection string for both gorm and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
