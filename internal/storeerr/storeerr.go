// Package storeerr сводит ошибки драйверов к видам ошибок хранилища.
//
// Репозитории оборачивают каждую ошибку через Wrap, и вызывающий проверяет
// вид через IsConstraint, IsNotFound и IsConnection одинаково для sqlite и
// postgres.
package storeerr

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

type Kind int

const (
	Internal Kind = iota
	// ConstraintViolation: NOT NULL, UNIQUE, FOREIGN KEY, CHECK и отклонённый ввод.
	ConstraintViolation
	NotFound
	ConnectionError
)

func (k Kind) String() string {
	switch k {
	case ConstraintViolation:
		return "constraint_violation"
	case NotFound:
		return "not_found"
	case ConnectionError:
		return "connection_error"
	default:
		return "internal"
	}
}

// Error - классифицированная ошибка хранилища.
type Error struct {
	Kind  Kind
	Op    string
	Table string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Table != "" {
		b.WriteString(" ")
		b.WriteString(e.Table)
	}
	fmt.Fprintf(&b, ": %s", e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создаёт ошибку заданного вида.
func New(kind Kind, op, table string, err error) *Error {
	return &Error{Kind: kind, Op: op, Table: table, Err: err}
}

// Wrap классифицирует err и добавляет операцию и таблицу. nil остаётся nil,
// уже классифицированная ошибка сохраняет свой вид.
func Wrap(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Kind: Classify(err), Op: op, Table: table, Err: err}
}

// KindOf возвращает вид ошибки; неклассифицированную разбирает на месте.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return Classify(err)
}

func IsConstraint(err error) bool { return err != nil && KindOf(err) == ConstraintViolation }
func IsNotFound(err error) bool   { return err != nil && KindOf(err) == NotFound }
func IsConnection(err error) bool { return err != nil && KindOf(err) == ConnectionError }

// Classify сопоставляет ошибку gorm или драйвера виду.
func Classify(err error) Kind {
	if err == nil {
		return Internal
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, sql.ErrNoRows):
		return NotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return ConstraintViolation
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return ConnectionError
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ConstraintViolation
	}

	if kind, ok := classifySQLite(err); ok {
		return kind
	}
	if kind, ok := classifyPostgres(err); ok {
		return kind
	}
	return Internal
}

func classifySQLite(err error) (Kind, bool) {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		var sep *sqlite3.Error
		if !errors.As(err, &sep) || sep == nil {
			return Internal, false
		}
		se = *sep
	}

	switch se.Code {
	case sqlite3.ErrConstraint:
		return ConstraintViolation, true
	case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrPerm, sqlite3.ErrReadonly:
		return ConnectionError, true
	}
	return Internal, true
}

// Классы SQLSTATE: 23 нарушение ограничения, 08 ошибка соединения,
// 28 неверная авторизация, 3D нет такой базы.
func classifyPostgres(err error) (Kind, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		switch {
		case strings.HasPrefix(pe.Code, "23"):
			return ConstraintViolation, true
		case strings.HasPrefix(pe.Code, "08"),
			strings.HasPrefix(pe.Code, "28"),
			strings.HasPrefix(pe.Code, "3D"):
			return ConnectionError, true
		}
		return Internal, true
	}

	var ce *pgconn.ConnectError
	if errors.As(err, &ce) {
		return ConnectionError, true
	}
	return Internal, false
}
