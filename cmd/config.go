package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BrokerLog      = "log"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort                   string
	DBHost                     string
	DBPort                     string
	DBUser                     string
	DBPassword                 string
	DBName                     string
	DBSslMode                  string
	EventBroker                string
	KafkaHost                  string
	KafkaWorkOrderChangedTopic string
	RabbitMQURL                string
	RabbitMQExchange           string
	Timezone                   *time.Location
	MaxActionAttempts          int
	StatusSnapshotSchedule     string
	LogLevel                   slog.Level
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Config{
		HTTPPort:                   envOr("HTTP_PORT", "8080"),
		DBHost:                     envOr("DB_HOST", "localhost"),
		DBPort:                     envOr("DB_PORT", "5432"),
		DBUser:                     os.Getenv("DB_USER"),
		DBPassword:                 os.Getenv("DB_PASSWORD"),
		DBName:                     os.Getenv("DB_NAME"),
		DBSslMode:                  envOr("DB_SSLMODE", "disable"),
		EventBroker:                strings.ToLower(envOr("EVENT_BROKER", BrokerLog)),
		KafkaHost:                  os.Getenv("KAFKA_HOST"),
		KafkaWorkOrderChangedTopic: envOr("KAFKA_WORKORDER_CHANGED_TOPIC", "workorder.changed"),
		RabbitMQURL:                os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:           envOr("RABBITMQ_EXCHANGE", "workorders"),
		StatusSnapshotSchedule:     os.Getenv("STATUS_SNAPSHOT_SCHEDULE"),
	}

	var timezoneErr, attemptsErr, levelErr, brokerErr error

	cfg.Timezone, timezoneErr = time.LoadLocation(envOr("TIMEZONE", "UTC"))
	if timezoneErr != nil {
		timezoneErr = fmt.Errorf("TIMEZONE: %w", timezoneErr)
	}

	cfg.MaxActionAttempts, attemptsErr = strconv.Atoi(envOr("MAX_ACTION_ATTEMPTS", "3"))
	if attemptsErr == nil && cfg.MaxActionAttempts < 1 {
		attemptsErr = fmt.Errorf("must be at least 1, got %d", cfg.MaxActionAttempts)
	}
	if attemptsErr != nil {
		attemptsErr = fmt.Errorf("MAX_ACTION_ATTEMPTS: %w", attemptsErr)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "info"))); err != nil {
		levelErr = fmt.Errorf("LOG_LEVEL: %w", err)
	}

	brokerErr = cfg.validateBroker()

	if err := errors.Join(timezoneErr, attemptsErr, levelErr, brokerErr); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validateBroker() error {
	switch c.EventBroker {
	case BrokerLog:
		return nil
	case BrokerKafka:
		if c.KafkaHost == "" {
			return errors.New("KAFKA_HOST is required when EVENT_BROKER=kafka")
		}
		return nil
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			return errors.New("RABBITMQ_URL is required when EVENT_BROKER=rabbitmq")
		}
		return nil
	default:
		return fmt.Errorf("EVENT_BROKER must be one of log, kafka, rabbitmq, got %q", c.EventBroker)
	}
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
