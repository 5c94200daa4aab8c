package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"marketplace"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	KafkaBrokers            []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaNotificationsTopic string   `envconfig:"KAFKA_NOTIFICATIONS_TOPIC" default:"marketplace.notifications"`

	// RedisAddr enables notification de-duplication when set.
	RedisAddr             string `envconfig:"REDIS_ADDR"`
	NotificationQueueSize int    `envconfig:"NOTIFICATION_QUEUE_SIZE" default:"1024"`

	// FeePercent is frozen into every order at creation.
	FeePercent          decimal.Decimal `envconfig:"FEE_PERCENT" default:"5"`
	EscalationSchedule  string          `envconfig:"ESCALATION_SCHEDULE" default:"0 * * * * *"`
	ReminderSchedule    string          `envconfig:"REMINDER_SCHEDULE" default:"30 */5 * * * *"`
	EscalationBatchSize int             `envconfig:"ESCALATION_BATCH_SIZE" default:"100"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.FeePercent.IsNegative() || cfg.FeePercent.GreaterThan(decimal.NewFromInt(100)) {
		return Config{}, fmt.Errorf("FEE_PERCENT must be within [0, 100], got %s", cfg.FeePercent)
	}
	if cfg.EscalationBatchSize <= 0 {
		return Config{}, fmt.Errorf("ESCALATION_BATCH_SIZE must be positive, got %d", cfg.EscalationBatchSize)
	}
	if cfg.NotificationQueueSize <= 0 {
		return Config{}, fmt.Errorf("NOTIFICATION_QUEUE_SIZE must be positive, got %d", cfg.NotificationQueueSize)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
