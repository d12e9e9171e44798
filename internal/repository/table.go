package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/crm-core/internal/storeerr"
)

// table - общий CRUD-контракт для таблицы с суррогатным ключом.
// Все ошибки классифицируются через storeerr.
type table[T any] struct {
	db   *gorm.DB
	name string
	pk   string
}

func newTable[T any](db *gorm.DB, name, pk string) table[T] {
	return table[T]{db: db, name: name, pk: pk}
}

func (t table[T]) byKey(id int64) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: t.pk}, Value: id}
}

func (t table[T]) keyOrder() clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: t.pk}}
}

func byEntity(entityID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "EntityID"}, Value: entityID})
	}
}

// create вставляет строку; ключ назначает база и GORM записывает его в row.
func (t table[T]) create(ctx context.Context, row *T) error {
	return storeerr.Wrap("create", t.name, t.db.WithContext(ctx).Create(row).Error)
}

// list возвращает строки в порядке вставки; пустая таблица - пустой срез.
func (t table[T]) list(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	rows := make([]T, 0)
	err := t.db.WithContext(ctx).
		Scopes(scopes...).
		Order(t.keyOrder()).
		Find(&rows).Error
	if err != nil {
		return nil, storeerr.Wrap("list", t.name, err)
	}
	return rows, nil
}

// each читает строки по одной. fn не должен обращаться к хранилищу:
// соединение занято курсором до конца обхода.
func (t table[T]) each(ctx context.Context, fn func(T) error) error {
	rows, err := t.db.WithContext(ctx).Model(new(T)).Order(t.keyOrder()).Rows()
	if err != nil {
		return storeerr.Wrap("each", t.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row T
		if err := t.db.ScanRows(rows, &row); err != nil {
			return storeerr.Wrap("each", t.name, err)
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return storeerr.Wrap("each", t.name, rows.Err())
}

// get возвращает строку по ключу или ошибку вида NotFound.
func (t table[T]) get(ctx context.Context, id int64) (*T, error) {
	var row T
	if err := t.db.WithContext(ctx).Where(t.byKey(id)).First(&row).Error; err != nil {
		return nil, storeerr.Wrap("get", t.name, err)
	}
	return &row, nil
}

// update применяет частичное обновление. Отсутствующий id - не ошибка,
// а 0 затронутых строк.
func (t table[T]) update(ctx context.Context, id int64, values map[string]any) (int64, error) {
	res := t.db.WithContext(ctx).Model(new(T)).Where(t.byKey(id)).Updates(values)
	if res.Error != nil {
		return 0, storeerr.Wrap("update", t.name, res.Error)
	}
	return res.RowsAffected, nil
}

// delete удаляет строку; 0 затронутых строк - не ошибка.
func (t table[T]) delete(ctx context.Context, id int64) (int64, error) {
	res := t.db.WithContext(ctx).Where(t.byKey(id)).Delete(new(T))
	if res.Error != nil {
		return 0, storeerr.Wrap("delete", t.name, res.Error)
	}
	return res.RowsAffected, nil
}

func (t table[T]) count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(T)).Count(&n).Error; err != nil {
		return 0, storeerr.Wrap("count", t.name, err)
	}
	return n, nil
}
