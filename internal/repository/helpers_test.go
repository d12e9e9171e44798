package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/config"
	"github.com/Leganyst/crm-core/internal/db"
	"github.com/Leganyst/crm-core/internal/model"
)

// newTestDB поднимает sqlite в памяти со схемой и без сида.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.NewGormDB(&config.DBConfig{
		Driver:   config.DriverSQLite,
		Path:     config.MemoryPath,
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	_, err = model.ApplySchema(context.Background(), gdb, nil)
	require.NoError(t, err)
	return gdb
}

func createEntity(t *testing.T, gdb *gorm.DB, email string) *model.Entity {
	t.Helper()

	e := &model.Entity{
		FirstName: "John",
		LastName:  "Doe",
		Email:     email,
		Role:      model.EntityRoleCustomer,
	}
	require.NoError(t, NewGormEntityRepository(gdb).Create(context.Background(), e))
	return e
}

func day(year int, month time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}
