// Package logger собирает zerolog-логгер для CLI и хранилища.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Leganyst/crm-core/internal/config"
)

// New создаёт логгер с выводом в cfg.Output (console или json). Возвращаемая
// функция закрывает файл журнала; для stdout/stderr она ничего не делает.
func New(cfg config.LogConfig) (zerolog.Logger, func() error, error) {
	w, err := writer(cfg.Output)
	if err != nil {
		return zerolog.Nop(), nop, err
	}
	closeFn := nop
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		closeFn = f.Close
	}
	return NewWithWriter(cfg, w), closeFn, nil
}

func nop() error { return nil }

// NewWithWriter - New с явным приёмником.
func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func writer(output string) (io.Writer, error) {
	switch output {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log output %s: %w", output, err)
		}
		return f, nil
	}
}
