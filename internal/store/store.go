// Package store управляет жизненным циклом одной базы CRM: открывает
// соединение, создаёт схему и начальные данные и закрывает соединение ровно
// один раз.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/config"
	"github.com/Leganyst/crm-core/internal/db"
	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
	"github.com/Leganyst/crm-core/internal/sink"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

type Store struct {
	db  *gorm.DB
	cfg *config.Config
	out sink.Sink
	log zerolog.Logger
	svc *service.CRMService

	closeOnce sync.Once
	closeErr  error
}

// Open подключается к базе из cfg.Database. Ошибка подключения - ConnectionError.
// Вызывающий обязан вызвать Close на всех путях выхода.
func Open(cfg *config.Config, out sink.Sink, log zerolog.Logger) (*Store, error) {
	if out == nil {
		out = sink.Nop
	}

	gdb, err := db.NewGormDB(&cfg.Database)
	if err != nil {
		err = storeerr.New(storeerr.ConnectionError, "open", "", err)
		out.Report(sink.Failed("open", "", err))
		return nil, err
	}

	log.Info().
		Str("driver", cfg.Database.Driver).
		Bool("in_memory", cfg.Database.InMemory()).
		Msg("store opened")

	return &Store{
		db:  gdb,
		cfg: cfg,
		out: out,
		log: log,
		svc: service.NewCRMService(service.NewRepositories(gdb), out, cfg.Auth.BcryptCost),
	}, nil
}

func (s *Store) Service() *service.CRMService { return s.svc }

func (s *Store) DB() *gorm.DB { return s.db }

// Init создаёт недостающие таблицы и, если включено, наполняет базу при
// первом запуске. Файл, где уже есть Entities, только дополняется
// отсутствующими таблицами, сид в него не пишется. Ошибки отдельных выражений
// сообщаются в sink и возвращаются объединённой ошибкой; решение о
// фатальности остаётся за вызывающим.
func (s *Store) Init(ctx context.Context) error {
	fresh := !model.HasSchema(s.db)

	var errs []error
	created, err := model.ApplySchema(ctx, s.db, func(stmt model.Statement, err error) {
		s.out.Report(sink.Failed("create_table", stmt.Table, storeerr.Wrap("create_table", stmt.Table, err)))
	})
	if err != nil {
		errs = append(errs, err)
	}
	if len(created) > 0 {
		s.log.Info().Strs("tables", created).Msg("schema applied")
	} else {
		s.log.Debug().Msg("schema present")
	}

	if fresh && s.cfg.Seed {
		if err := Seed(ctx, s.svc, model.DefaultSeed()); err != nil {
			s.log.Warn().Err(err).Msg("seed data inserted with errors")
			errs = append(errs, err)
		} else {
			s.log.Info().Msg("seed data inserted")
		}
	}

	return errors.Join(errs...)
}

// Close освобождает соединение. Повторные вызовы возвращают результат первого.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		if err := db.Close(s.db); err != nil {
			s.closeErr = storeerr.New(storeerr.ConnectionError, "close", "", err)
			s.out.Report(sink.Failed("close", "", s.closeErr))
			return
		}
		s.log.Info().Msg("store closed")
	})
	return s.closeErr
}
