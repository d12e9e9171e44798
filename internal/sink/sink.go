// Package sink принимает итог каждой операции хранилища: созданный ключ,
// число затронутых строк, прочитанные строки или классифицированную ошибку.
package sink

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind int

const (
	KindCreated Kind = iota
	KindAffected
	KindRows
	KindFailed
)

func (k Kind) String() string {
	switch k {
	case KindCreated:
		return "created"
	case KindAffected:
		return "affected"
	case KindRows:
		return "rows"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event - итог одной операции хранилища.
type Event struct {
	ID    uuid.UUID
	Kind  Kind
	Op    string
	Table string
	At    time.Time

	NewID    int64 // KindCreated
	Affected int64 // KindAffected
	Rows     any   // KindRows: срез или одна строка
	Count    int   // KindRows
	Err      error // KindFailed
}

type Sink interface {
	Report(ev Event)
}

func newEvent(kind Kind, op, table string) Event {
	return Event{
		ID:    uuid.New(),
		Kind:  kind,
		Op:    op,
		Table: table,
		At:    time.Now().UTC(),
	}
}

func Created(op, table string, id int64) Event {
	ev := newEvent(KindCreated, op, table)
	ev.NewID = id
	return ev
}

func Affected(op, table string, n int64) Event {
	ev := newEvent(KindAffected, op, table)
	ev.Affected = n
	return ev
}

func Rows(op, table string, rows any, count int) Event {
	ev := newEvent(KindRows, op, table)
	ev.Rows = rows
	ev.Count = count
	return ev
}

func Failed(op, table string, err error) Event {
	ev := newEvent(KindFailed, op, table)
	ev.Err = err
	return ev
}

// Tee отправляет событие во все приёмники по порядку.
type Tee []Sink

func (t Tee) Report(ev Event) {
	for _, s := range t {
		if s != nil {
			s.Report(ev)
		}
	}
}

type nop struct{}

func (nop) Report(Event) {}

// Nop отбрасывает все события.
var Nop Sink = nop{}

// Recorder запоминает события; безопасен для конкурентного использования.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Report(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Last возвращает последнее событие; ok=false, если событий не было.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
