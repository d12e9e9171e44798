package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

func TestEntityRepository_CreateAssignsKeyAndTimestamp(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormEntityRepository(gdb)
	ctx := context.Background()

	e := &model.Entity{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "1234567890",
		Address: model.PostalAddress{
			Street:  "123 Main St",
			City:    "Anytown",
			State:   "Anystate",
			ZipCode: "12345",
			Country: "USA",
		},
		Role: model.EntityRoleCustomer,
	}
	require.NoError(t, repo.Create(ctx, e))
	assert.Equal(t, int64(1), e.ID)

	got, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got.FullName())
	assert.Equal(t, e.Address, got.Address)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.IsStaff())
}

func TestEntityRepository_DuplicateEmail(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormEntityRepository(gdb)
	ctx := context.Background()

	createEntity(t, gdb, "dup@example.com")

	err := repo.Create(ctx, &model.Entity{FirstName: "Jane", LastName: "Roe", Email: "dup@example.com"})
	require.Error(t, err)
	assert.True(t, storeerr.IsConstraint(err), "got %v", err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEntityRepository_MissingNames(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormEntityRepository(gdb)

	// NOT NULL нарушается только при NULL; GORM пишет пустую строку,
	// поэтому проверяем на уровне сырого INSERT.
	err := gdb.Exec(`INSERT INTO "Entities" ("Email") VALUES ('x@example.com')`).Error
	require.Error(t, err)
	assert.True(t, storeerr.IsConstraint(storeerr.Wrap("create", "Entities", err)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEntityRepository_ListEachAndEmpty(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormEntityRepository(gdb)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	createEntity(t, gdb, "a@example.com")
	createEntity(t, gdb, "b@example.com")

	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a@example.com", all[0].Email)
	assert.Equal(t, "b@example.com", all[1].Email)

	var seen []int64
	err = repo.Each(ctx, func(e model.Entity) error {
		seen = append(seen, e.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, seen)
}

func TestEntityRepository_GetByEmail(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormEntityRepository(gdb)
	ctx := context.Background()

	createEntity(t, gdb, "john.doe@example.com")

	got, err := repo.GetByEmail(ctx, "  John.Doe@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	mixed := createEntity(t, gdb, "Jane.Roe@Example.com")
	got, err = repo.GetByEmail(ctx, "jane.roe@example.com")
	require.NoError(t, err)
	assert.Equal(t, mixed.ID, got.ID)
	assert.Equal(t, "Jane.Roe@Example.com", got.Email)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.True(t, storeerr.IsNotFound(err), "got %v", err)
}

func TestEntityRepository_UpdateAndDelete(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormEntityRepository(gdb)
	ctx := context.Background()

	e := createEntity(t, gdb, "john.doe@example.com")

	addr := model.PostalAddress{Street: "1 Elm St", City: "Springfield", Country: "USA"}
	n, err := repo.UpdateContactInfo(ctx, e.ID, "555", addr)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "555", got.Phone)
	assert.Equal(t, addr, got.Address)

	n, err = repo.SetPasswordHash(ctx, e.ID, "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.UpdateContactInfo(ctx, 999, "555", addr)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, e.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = repo.Get(ctx, e.ID)
	assert.True(t, storeerr.IsNotFound(err), "got %v", err)
}

func TestEntityRepository_DeleteReferencedEntity(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormEntityRepository(gdb)
	ctx := context.Background()

	e := createEntity(t, gdb, "john.doe@example.com")
	require.NoError(t, NewGormInteractionRepository(gdb).Create(ctx, &model.Interaction{
		EntityID:        e.ID,
		InteractionType: "Email",
		InteractionDate: day(2024, 7, 1),
	}))

	_, err := repo.Delete(ctx, e.ID)
	require.Error(t, err)
	assert.True(t, storeerr.IsConstraint(err), "got %v", err)
}
