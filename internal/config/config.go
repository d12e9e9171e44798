// Package config загружает настройки хранилища из окружения.
//
// Переменные с префиксом CRM_, вложенность через двойное подчёркивание:
// CRM_DATABASE__DRIVER -> database.driver, CRM_LOG__LEVEL -> log.level.
// Файл .env в рабочем каталоге, если есть, читается первым.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CRM_"

type Config struct {
	Database DBConfig   `koanf:"database" validate:"required"`
	Log      LogConfig  `koanf:"log" validate:"required"`
	Auth     AuthConfig `koanf:"auth" validate:"required"`

	// Seed наполняет пустую базу демонстрационными строками при первой инициализации.
	Seed bool `koanf:"seed"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
	Output string `koanf:"output" validate:"required"` // stdout, stderr или путь к файлу
}

type AuthConfig struct {
	BcryptCost int `koanf:"bcrypt_cost" validate:"gte=4,lte=31"`
}

// Default возвращает конфигурацию эталонного развёртывания: sqlite в памяти с сидом.
func Default() *Config {
	return &Config{
		Database: defaultDBConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Auth: AuthConfig{BcryptCost: 10},
		Seed: true,
	}
}

// Load читает .env (если есть) и переменные CRM_* поверх Default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
