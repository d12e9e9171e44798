package config

import "time"

// Драйверы хранилища.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// MemoryPath - путь sqlite для временной базы в памяти процесса.
const MemoryPath = ":memory:"

type DBConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=sqlite postgres"`

	// sqlite: ":memory:" или путь к файлу.
	Path string `koanf:"path" validate:"required_if=Driver sqlite"`

	// postgres
	Host     string `koanf:"host" validate:"required_if=Driver postgres"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user" validate:"required_if=Driver postgres"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode  string `koanf:"ssl_mode"`
	TimeZone string `koanf:"timezone"`

	MaxOpenConns    int `koanf:"max_open_conns"`
	MaxIdleConns    int `koanf:"max_idle_conns"`
	ConnMaxLifeTime int `koanf:"conn_max_lifetime_min"` // минут

	// Уровень логгера GORM: silent, error, warn, info.
	LogLevel string `koanf:"log_level" validate:"oneof=silent error warn info"`
}

func defaultDBConfig() DBConfig {
	return DBConfig{
		Driver:          DriverSQLite,
		Path:            MemoryPath,
		Host:            "localhost",
		Port:            5432,
		User:            "crm",
		Password:        "crm",
		Name:            "crm",
		SSLMode:         "disable",
		TimeZone:        "UTC",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifeTime: 30,
		LogLevel:        "warn",
	}
}

// InMemory сообщает, что данные не переживут завершение процесса.
func (c DBConfig) InMemory() bool {
	return c.Driver == DriverSQLite && (c.Path == MemoryPath || c.Path == "")
}

func (c DBConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifeTime) * time.Minute
}
