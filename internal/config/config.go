package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Приемники событий доски
const (
	EventSinkNone  = "none"
	EventSinkRedis = "redis"
	EventSinkKafka = "kafka"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Начальный источник данных: путь к файлу, http(s)://, s3:// или postgres://
	DataSource        string        `env:"DATA_SOURCE" envDefault:"data/incidents.json"`
	DataSourceTimeout time.Duration `env:"DATA_SOURCE_TIMEOUT" envDefault:"10s"`

	// S3 Config
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3PathStyle bool   `env:"S3_PATH_STYLE" envDefault:"false"`

	// Необязательные статические ключи; без них используется стандартная цепочка AWS
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`

	// Board Config
	TickerLimit   int    `env:"TICKER_LIMIT" envDefault:"10"`
	DefaultFilter string `env:"DEFAULT_FILTER" envDefault:"all"`

	// Events Config
	EventSink   string `env:"EVENT_SINK" envDefault:"none"`
	EventBuffer int    `env:"EVENT_BUFFER" envDefault:"256"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Kafka Config
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:19092"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"board.events"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		DataSource:        getEnv("DATA_SOURCE", "data/incidents.json"),
		DataSourceTimeout: getEnvAsDuration("DATA_SOURCE_TIMEOUT", 10*time.Second),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3PathStyle:       strings.EqualFold(os.Getenv("S3_PATH_STYLE"), "true"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		TickerLimit:       getEnvAsInt("TICKER_LIMIT", 10),
		DefaultFilter:     getEnv("DEFAULT_FILTER", "all"),
		EventSink:         strings.ToLower(getEnv("EVENT_SINK", EventSinkNone)),
		EventBuffer:       getEnvAsInt("EVENT_BUFFER", 256),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		KafkaBrokers:      getEnvAsList("KAFKA_BROKERS", []string{"localhost:19092"}),
		KafkaTopic:        getEnv("KAFKA_TOPIC", "board.events"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, без которых сервис не может стартовать
func (c *Config) Validate() error {
	switch c.EventSink {
	case EventSinkNone, EventSinkRedis, EventSinkKafka:
	default:
		return fmt.Errorf("EVENT_SINK must be one of none, redis, kafka; got %q", c.EventSink)
	}

	if c.EventSink == EventSinkKafka && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS environment variable is required for kafka event sink")
	}

	if c.EventBuffer <= 0 {
		return fmt.Errorf("EVENT_BUFFER must be positive, got %d", c.EventBuffer)
	}

	if c.TickerLimit <= 0 {
		return fmt.Errorf("TICKER_LIMIT must be positive, got %d", c.TickerLimit)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	items := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if v := strings.TrimSpace(part); v != "" {
			items = append(items, v)
		}
	}
	return items
}
