package sink

import (
	"github.com/rs/zerolog"

	"github.com/Leganyst/crm-core/internal/storeerr"
)

// Log пишет события в zerolog: успехи на уровне info, ошибки на уровне error.
type Log struct {
	log zerolog.Logger
	// WithRows включает вывод самих строк результата, а не только их числа.
	WithRows bool
}

func NewLog(log zerolog.Logger, withRows bool) *Log {
	return &Log{log: log.With().Str("component", "store").Logger(), WithRows: withRows}
}

func (l *Log) Report(ev Event) {
	var e *zerolog.Event
	if ev.Kind == KindFailed {
		e = l.log.Error().Err(ev.Err).Str("kind", storeerr.KindOf(ev.Err).String())
	} else {
		e = l.log.Info()
	}

	e = e.Str("event_id", ev.ID.String()).
		Str("op", ev.Op).
		Str("table", ev.Table)

	switch ev.Kind {
	case KindCreated:
		e = e.Int64("id", ev.NewID)
	case KindAffected:
		e = e.Int64("affected", ev.Affected)
	case KindRows:
		e = e.Int("count", ev.Count)
		if l.WithRows {
			e = e.Interface("rows", ev.Rows)
		}
	}
	e.Msg(ev.Kind.String())
}
