// config предоставляет структуру конфигурации reader-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env          string         `yaml:"env"      env:"ENV" env-default:"local"`
	HTTP         HTTPConfig     `yaml:"http"`
	DB           DBConfig       `yaml:"db"`
	Redis        RedisConfig    `yaml:"redis"`
	LimitsConfig LimitsConfig   `yaml:"limits"`
	Timeouts     TimeoutConfig  `yaml:"timeouts"`
	Window       WindowConfig   `yaml:"window"`
	Dedup        DedupConfig    `yaml:"dedup"`
	Features     FeaturesConfig `yaml:"features"`
	Plan         PlanConfig     `yaml:"plan"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — настройки кэша показанных отпечатков.
// Пустой URL отключает кэш: межстраничное подавление дубликатов
// деградирует до выборки прочитанных отпечатков из БД.
type RedisConfig struct {
	URL    string        `yaml:"url"    env:"REDIS_URL"`
	Prefix string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"reader:seen:"`
	TTL    time.Duration `yaml:"ttl"    env:"REDIS_TTL"    env-default:"24h"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// Применяется при запросе с amount=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"12"`
	// Верхняя граница для amount.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
	// Верхняя граница для take в поиске.
	SearchMax int32 `yaml:"search_max" env:"SEARCH_MAX_LIMIT" env-default:"50"`
	// Потолок amount для бесплатного тарифа (активен при features.plan_limit).
	FreeMax int32 `yaml:"free_max" env:"FREE_MAX_LIMIT" env-default:"50"`
}

// WindowConfig — трейлинг-окно свежести.
type WindowConfig struct {
	Days int `yaml:"days" env:"WINDOW_DAYS" env-default:"30"`
}

// DedupConfig — параметры подавления дубликатов.
type DedupConfig struct {
	Enabled bool `yaml:"enabled" env:"DEDUP_ENABLED" env-default:"true"`
	// CrossFeed включает схлопывание дубликатов между фидами внутри страницы.
	// При false подавление ограничено дубликатами, уже показанными
	// на предыдущих страницах.
	CrossFeed bool `yaml:"cross_feed" env:"DEDUP_CROSS_FEED" env-default:"true"`
}

// FeaturesConfig — флаги незавершённых фич исходной системы.
// Обе по умолчанию выключены.
type FeaturesConfig struct {
	// PlanLimit — ограничение размера выдачи по тарифу.
	PlanLimit bool `yaml:"plan_limit" env:"FEATURE_PLAN_LIMIT" env-default:"false"`
	// WindowAllViews — применение границы pagination_start за пределами вью "all".
	WindowAllViews bool `yaml:"window_all_views" env:"FEATURE_WINDOW_ALL_VIEWS" env-default:"false"`
}

// PlanConfig — заглушка проверки тарифа: всем пользователям отдаётся Default.
type PlanConfig struct {
	Default string `yaml:"default" env:"PLAN_DEFAULT" env-default:"free"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}
	if c.LimitsConfig.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.LimitsConfig.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.LimitsConfig.Default > c.LimitsConfig.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	if c.LimitsConfig.SearchMax <= 0 {
		return fmt.Errorf("limits.search_max must be > 0")
	}
	if c.LimitsConfig.FreeMax <= 0 {
		return fmt.Errorf("limits.free_max must be > 0")
	}
	if c.Window.Days <= 0 {
		return fmt.Errorf("window.days must be > 0")
	}
	if c.Redis.URL != "" && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 when redis is configured")
	}
	return nil
}
