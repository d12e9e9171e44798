package model

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// HasSchema сообщает, была ли база уже инициализирована (есть Entities).
func HasSchema(db *gorm.DB) bool {
	return db.Migrator().HasTable(&Entity{})
}

// ApplySchema создаёт недостающие таблицы последовательно и без общей
// транзакции; существующие таблицы не трогаются, поэтому старый файл базы
// дополняется. Ошибка одного выражения передаётся в onErr и не останавливает
// остальные. Возвращает имена созданных таблиц и объединённую ошибку.
func ApplySchema(ctx context.Context, db *gorm.DB, onErr func(stmt Statement, err error)) ([]string, error) {
	stmts, err := Schema(db.Dialector.Name())
	if err != nil {
		return nil, err
	}

	tx := db.WithContext(ctx)
	var (
		created []string
		errs    []error
	)
	for _, stmt := range stmts {
		if tx.Migrator().HasTable(stmt.Table) {
			continue
		}
		if err := tx.Exec(stmt.SQL).Error; err != nil {
			err = fmt.Errorf("create table %s: %w", stmt.Table, err)
			if onErr != nil {
				onErr(stmt, err)
			}
			errs = append(errs, err)
			continue
		}
		created = append(created, stmt.Table)
	}
	return created, errors.Join(errs...)
}
