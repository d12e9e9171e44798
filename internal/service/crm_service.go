package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/repository"
	"github.com/Leganyst/crm-core/internal/sink"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

// DateLayout - формат дат в DATE-колонках и во входных данных.
const DateLayout = "2006-01-02"

// Repositories - набор репозиториев одного соединения.
type Repositories struct {
	Entities     repository.EntityRepository
	Interactions repository.InteractionRepository
	Contacts     repository.ContactRepository
	Deals        repository.DealRepository
	Orders       repository.OrderRepository
	Support      repository.SupportRepository
	Access       repository.AccessRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Entities:     repository.NewGormEntityRepository(db),
		Interactions: repository.NewGormInteractionRepository(db),
		Contacts:     repository.NewGormContactRepository(db),
		Deals:        repository.NewGormDealRepository(db),
		Orders:       repository.NewGormOrderRepository(db),
		Support:      repository.NewGormSupportRepository(db),
		Access:       repository.NewGormAccessRepository(db),
	}
}

// CRMService выполняет операции хранилища, проверяет вход и сообщает
// итог каждой операции в sink. Вызовы синхронные.
type CRMService struct {
	repos      Repositories
	out        sink.Sink
	validate   *validator.Validate
	bcryptCost int
	now        func() time.Time
}

func NewCRMService(repos Repositories, out sink.Sink, bcryptCost int) *CRMService {
	if out == nil {
		out = sink.Nop
	}
	return &CRMService{
		repos:      repos,
		out:        out,
		validate:   validator.New(),
		bcryptCost: bcryptCost,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ParseDate разбирает дату вида 2024-07-11.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, storeerr.New(storeerr.ConstraintViolation, "parse", "", err)
	}
	return t, nil
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil || t.IsZero() {
		return nil
	}
	d := datatypes.Date(*t)
	return &d
}

func (s *CRMService) fail(op, table string, err error) error {
	err = storeerr.Wrap(op, table, err)
	s.out.Report(sink.Failed(op, table, err))
	return err
}

// check проверяет входную структуру; ошибка валидации - ConstraintViolation.
func (s *CRMService) check(op, table string, in any) error {
	if err := s.validate.Struct(in); err != nil {
		return s.fail(op, table, storeerr.New(storeerr.ConstraintViolation, op, table, err))
	}
	return nil
}

func (s *CRMService) checkVar(op, table string, v any, tag string) error {
	if err := s.validate.Var(v, tag); err != nil {
		return s.fail(op, table, storeerr.New(storeerr.ConstraintViolation, op, table, err))
	}
	return nil
}

func (s *CRMService) created(op, table string, id int64, err error) (int64, error) {
	if err != nil {
		return 0, s.fail(op, table, err)
	}
	s.out.Report(sink.Created(op, table, id))
	return id, nil
}

func (s *CRMService) affected(op, table string, n int64, err error) (int64, error) {
	if err != nil {
		return 0, s.fail(op, table, err)
	}
	s.out.Report(sink.Affected(op, table, n))
	return n, nil
}

func readAll[T any](s *CRMService, op, table string, rows []T, err error) ([]T, error) {
	if err != nil {
		return nil, s.fail(op, table, err)
	}
	s.out.Report(sink.Rows(op, table, rows, len(rows)))
	return rows, nil
}

func readOne[T any](s *CRMService, op, table string, row *T, err error) (*T, error) {
	if err != nil {
		return nil, s.fail(op, table, err)
	}
	s.out.Report(sink.Rows(op, table, row, 1))
	return row, nil
}
