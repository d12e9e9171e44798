package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	})
	gdb, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}
	return gdb, mock
}

func TestPostgres_UpdateNotesMissingID(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormInteractionRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "Interactions" SET "Notes"=$1 WHERE "Interactions"."InteractionID" = $2`)).
		WithArgs("Follow-up", int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.UpdateNotes(context.Background(), 999, "Follow-up")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Delete(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormInteractionRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Interactions" WHERE "Interactions"."InteractionID" = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateForeignKeyViolation(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormInteractionRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "Interactions"`).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	err := repo.Create(context.Background(), &model.Interaction{EntityID: 999, InteractionType: "Email"})
	require.Error(t, err)
	assert.True(t, storeerr.IsConstraint(err), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateAssignsReturnedKey(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormEntityRepository(gdb)

	mock.ExpectQuery(`INSERT INTO "Entities"`).
		WillReturnRows(sqlmock.NewRows([]string{"EntityID"}).AddRow(7))

	e := &model.Entity{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"}
	require.NoError(t, repo.Create(context.Background(), e))
	assert.Equal(t, int64(7), e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormDealRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "Deals" WHERE "Deals"."DealID" = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"DealID"}))

	_, err := repo.Get(context.Background(), 42)
	assert.True(t, storeerr.IsNotFound(err), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ConnectionFailure(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewGormEntityRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "Entities"`).
		WillReturnError(&pgconn.PgError{Code: "08006", Message: "connection failure"})

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.True(t, storeerr.IsConnection(err), "got %v", err)
}
