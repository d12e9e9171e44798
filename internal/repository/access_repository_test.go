package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

func TestAccessRepository_DefinitionsForEntity(t *testing.T) {
	gdb := newTestDB(t)
	e := createEntity(t, gdb, "john.doe@example.com")
	repo := NewGormAccessRepository(gdb)
	ctx := context.Background()

	levels := map[string]*model.AccessLevel{}
	for _, name := range []string{model.AccessLevelAdmin, model.AccessLevelUser, model.AccessLevelGuest} {
		l := &model.AccessLevel{LevelName: name}
		require.NoError(t, repo.CreateLevel(ctx, l))
		levels[name] = l
	}

	require.NoError(t, repo.CreateDefinition(ctx, &model.AccessDefinition{
		LevelID: levels[model.AccessLevelAdmin].ID, EntityType: model.EntityTypeEntity,
		CanRead: true, CanWrite: true, CanDelete: true,
	}))
	require.NoError(t, repo.CreateDefinition(ctx, &model.AccessDefinition{
		LevelID: levels[model.AccessLevelGuest].ID, EntityType: model.EntityTypeEntity,
		CanRead: true,
	}))

	grant, err := repo.Grant(ctx, e.ID, levels[model.AccessLevelAdmin].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), grant.ID)

	got, err := repo.LevelsForEntity(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.AccessLevelAdmin, got[0].LevelName)

	defs, err := repo.DefinitionsForEntity(ctx, e.ID, model.EntityTypeEntity)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, model.Capabilities{Read: true, Write: true, Delete: true}, defs[0].Capabilities())

	defs, err = repo.DefinitionsForEntity(ctx, e.ID, "Deal")
	require.NoError(t, err)
	assert.Empty(t, defs)

	n, err := repo.Revoke(ctx, e.ID, levels[model.AccessLevelAdmin].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = repo.LevelsForEntity(ctx, e.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAccessRepository_GetLevelByName(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGormAccessRepository(gdb)
	ctx := context.Background()

	require.NoError(t, repo.CreateLevel(ctx, &model.AccessLevel{LevelName: model.AccessLevelUser}))

	l, err := repo.GetLevelByName(ctx, model.AccessLevelUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), l.ID)

	defs, err := repo.DefinitionsForLevel(ctx, l.ID)
	require.NoError(t, err)
	assert.Empty(t, defs)

	_, err = repo.GetLevelByName(ctx, "Root")
	assert.True(t, storeerr.IsNotFound(err), "got %v", err)
}

func TestAccessRepository_GrantUnknownLevel(t *testing.T) {
	gdb := newTestDB(t)
	e := createEntity(t, gdb, "john.doe@example.com")
	repo := NewGormAccessRepository(gdb)

	_, err := repo.Grant(context.Background(), e.ID, 42)
	require.Error(t, err)
	assert.True(t, storeerr.IsConstraint(err), "got %v", err)
}
