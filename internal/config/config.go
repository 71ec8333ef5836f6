package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Режимы прогона сценария
const (
	ModeSync  = "sync"
	ModeAsync = "async"
)

// Config содержит конфигурацию приложения
type Config struct {
	LogLevel        string // Уровень логирования
	StrictLifecycle bool   // Строгая проверка переходов жизненного цикла
	ScenarioMode    string // sync или async
	NarrationLog    string // Файл для строк статуса, пусто - stdout

	// Fulfillment pool конфигурация
	FulfillmentWorkers      int           // Количество воркеров
	FulfillmentQueueSize    int           // Размер очереди доставок
	FulfillmentScanInterval time.Duration // Интервал сканирования незавершенных доставок

	// Kafka
	KafkaBrokers string // Список брокеров через запятую, пусто - события не публикуются
	KafkaTopic   string
}

// Load загружает конфигурацию из .env, переменных окружения и флагов командной строки
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:], ".env")
}

// LoadFrom загружает конфигурацию из указанных аргументов и env-файла.
// Приоритет: env переменные > .env > флаги > дефолтные значения
func LoadFrom(args []string, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		LogLevel:                "info",
		ScenarioMode:            ModeSync,
		FulfillmentWorkers:      2,
		FulfillmentQueueSize:    100,
		FulfillmentScanInterval: 10 * time.Second,
	}

	// Определяем флаги
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.BoolVar(&cfg.StrictLifecycle, "strict", cfg.StrictLifecycle, "refuse out-of-order lifecycle operations")
	fs.StringVar(&cfg.ScenarioMode, "mode", cfg.ScenarioMode, "scenario mode: sync or async")
	fs.StringVar(&cfg.KafkaBrokers, "k", "", "comma separated kafka brokers")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if envStrict, ok := os.LookupEnv("STRICT_LIFECYCLE"); ok {
		strict, err := strconv.ParseBool(envStrict)
		if err != nil {
			return nil, fmt.Errorf("invalid STRICT_LIFECYCLE %q: %w", envStrict, err)
		}
		cfg.StrictLifecycle = strict
	}

	if envMode, ok := os.LookupEnv("SCENARIO_MODE"); ok {
		cfg.ScenarioMode = envMode
	}

	if envNarration, ok := os.LookupEnv("NARRATION_LOG"); ok {
		cfg.NarrationLog = envNarration
	}

	if envWorkers, ok := os.LookupEnv("FULFILLMENT_WORKERS"); ok {
		if size, err := strconv.Atoi(envWorkers); err == nil && size >= 0 {
			cfg.FulfillmentWorkers = size
		}
	}

	if envQueueSize, ok := os.LookupEnv("FULFILLMENT_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envQueueSize); err == nil && size > 0 {
			cfg.FulfillmentQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("FULFILLMENT_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.FulfillmentScanInterval = interval
		}
	}

	if envBrokers, ok := os.LookupEnv("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = envBrokers
	}

	if envTopic, ok := os.LookupEnv("KAFKA_TOPIC"); ok {
		cfg.KafkaTopic = envTopic
	}

	// Валидация
	switch cfg.ScenarioMode {
	case ModeSync:
	case ModeAsync:
		if cfg.FulfillmentWorkers == 0 {
			return nil, fmt.Errorf("async mode requires FULFILLMENT_WORKERS > 0")
		}
	default:
		return nil, fmt.Errorf("unknown scenario mode %q (use sync or async)", cfg.ScenarioMode)
	}

	return cfg, nil
}
