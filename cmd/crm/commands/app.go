package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Leganyst/crm-core/internal/config"
	"github.com/Leganyst/crm-core/internal/logger"
	"github.com/Leganyst/crm-core/internal/service"
	"github.com/Leganyst/crm-core/internal/sink"
	"github.com/Leganyst/crm-core/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if opts.driver != "" {
		cfg.Database.Driver = opts.driver
	}
	if opts.dbPath != "" {
		cfg.Database.Path = opts.dbPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noSeed {
		cfg.Seed = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withStore открывает и инициализирует хранилище, выполняет fn и
// закрывает хранилище на любом пути выхода.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, svc *service.CRMService) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = fmt.Errorf("close log: %w", cerr)
		}
	}()

	metrics, err := sink.NewMetrics("crm")
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	out := sink.Tee{sink.NewLog(log, opts.logRows), metrics}

	st, err := store.Open(cfg, out, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	ctx := cmd.Context()
	if initErr := st.Init(ctx); initErr != nil {
		// частично выполненная инициализация не фатальна: ошибки уже в логе
		log.Warn().Err(initErr).Msg("initialization finished with errors")
	}

	err = fn(ctx, st.Service())

	if opts.metrics {
		if merr := writeMetrics(cmd.OutOrStdout(), metrics, log); merr != nil && err == nil {
			err = merr
		}
	}
	return err
}

func writeMetrics(w io.Writer, m *sink.Metrics, log zerolog.Logger) error {
	families, err := m.Registry().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	log.Debug().Int("families", len(families)).Msg("metrics written")
	return nil
}
