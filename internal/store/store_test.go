package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Leganyst/crm-core/internal/config"
	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
	"github.com/Leganyst/crm-core/internal/sink"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

func testConfig(path string, seed bool) *config.Config {
	cfg := config.Default()
	cfg.Database.Path = path
	cfg.Database.LogLevel = "silent"
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Seed = seed
	return cfg
}

func openStore(t *testing.T, cfg *config.Config, out sink.Sink) *Store {
	t.Helper()
	st, err := Open(cfg, out, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestInit_SeedsFirstRun(t *testing.T) {
	st := openStore(t, testConfig(config.MemoryPath, true), nil)
	ctx := context.Background()

	require.NoError(t, st.Init(ctx))
	svc := st.Service()

	entities, err := svc.ReadEntities(ctx)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, int64(1), entities[0].ID)
	assert.Equal(t, "john.doe@example.com", entities[0].Email)
	assert.Equal(t, "johndoe", entities[0].Credentials.Username)
	assert.NotEqual(t, "password123", entities[0].Credentials.PasswordHash)

	levels, err := svc.ReadAccessLevels(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, model.AccessLevelAdmin, levels[0].LevelName)
	assert.Equal(t, model.AccessLevelUser, levels[1].LevelName)
	assert.Equal(t, model.AccessLevelGuest, levels[2].LevelName)

	defs, err := svc.ReadAccessDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 3)
	want := []model.Capabilities{
		{Read: true, Write: true, Delete: true},
		{Read: true, Write: true, Delete: false},
		{Read: true, Write: false, Delete: false},
	}
	for i, d := range defs {
		assert.Equal(t, levels[i].ID, d.LevelID)
		assert.Equal(t, model.EntityTypeEntity, d.EntityType)
		assert.Equal(t, want[i], d.Capabilities(), "definition %d", i)
	}

	grants, err := svc.ReadGrants(ctx)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, int64(1), grants[0].EntityID)
	assert.Equal(t, levels[0].ID, grants[0].LevelID)
}

func TestInit_WithoutSeed(t *testing.T) {
	st := openStore(t, testConfig(config.MemoryPath, false), nil)
	ctx := context.Background()

	require.NoError(t, st.Init(ctx))

	n, err := st.Service().CountEntities(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, model.HasSchema(st.DB()))
}

func TestInit_FileReopenDoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.db")
	ctx := context.Background()

	first, err := Open(testConfig(path, true), nil, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Init(ctx))
	_, err = first.Service().CreateInteraction(ctx, 1, "Email", mustDate(t, "2024-07-12"), "kept")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := openStore(t, testConfig(path, true), nil)
	require.NoError(t, second.Init(ctx))

	n, err := second.Service().CountEntities(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	defs, err := second.Service().ReadAccessDefinitions(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 3)

	rows, err := second.Service().ReadInteractions(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "kept", rows[0].Notes)
}

func TestInit_CompletesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.db")
	ctx := context.Background()

	// Файл прежней версии: только Entities с одной строкой.
	old := openStore(t, testConfig(path, false), nil)
	stmts, err := model.Schema("sqlite")
	require.NoError(t, err)
	require.NoError(t, old.DB().Exec(stmts[0].SQL).Error)
	require.NoError(t, old.DB().Exec(
		`INSERT INTO Entities (FirstName, LastName, Email) VALUES ('Ann', 'Lee', 'ann@example.com')`).Error)
	require.NoError(t, old.Close())

	st := openStore(t, testConfig(path, true), nil)
	require.NoError(t, st.Init(ctx))
	svc := st.Service()

	n, err := svc.CountEntities(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "existing file must not be seeded")

	levels, err := svc.ReadAccessLevels(ctx)
	require.NoError(t, err)
	assert.Empty(t, levels)

	_, err = svc.CreateDeal(ctx, service.NewDeal{EntityID: 1, Type: "Sale", Amount: 10})
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, service.NewOrder{EntityID: 1, Quantity: 2, TotalAmount: 20})
	require.NoError(t, err)
	_, err = svc.OpenTicket(ctx, service.NewTicket{EntityID: 1, Subject: "Login"})
	require.NoError(t, err)
}

func TestInit_SeedFailureLoggedAsWarning(t *testing.T) {
	var buf bytes.Buffer
	st, err := Open(testConfig(config.MemoryPath, true), nil, zerolog.New(&buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	// AccessLevels занято представлением: уровни доступа не создадутся.
	require.NoError(t, st.DB().Exec(`CREATE VIEW AccessLevels AS SELECT 1 AS LevelID`).Error)

	require.Error(t, st.Init(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "seed data inserted with errors")
	assert.NotContains(t, out, `"message":"seed data inserted"`)
}

func TestSeed_ContinuesAfterFailure(t *testing.T) {
	rec := &sink.Recorder{}
	st := openStore(t, testConfig(config.MemoryPath, false), rec)
	ctx := context.Background()
	require.NoError(t, st.Init(ctx))

	svc := st.Service()
	_, err := svc.CreateEntity(ctx, service.NewEntity{FirstName: "Jane", LastName: "Roe", Email: "john.doe@example.com"})
	require.NoError(t, err)

	err = Seed(ctx, svc, model.DefaultSeed())
	require.Error(t, err)
	assert.True(t, storeerr.IsConstraint(err), "got %v", err)

	defs, err := svc.ReadAccessDefinitions(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, 3)

	grants, err := svc.ReadGrants(ctx)
	require.NoError(t, err)
	assert.Empty(t, grants)

	var failed int
	for _, ev := range rec.Events() {
		if ev.Kind == sink.KindFailed {
			failed++
		}
	}
	assert.Equal(t, 1, failed)
}

func TestOpen_ConnectionError(t *testing.T) {
	rec := &sink.Recorder{}
	cfg := testConfig(filepath.Join(t.TempDir(), "missing", "crm.db"), true)

	_, err := Open(cfg, rec, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, storeerr.IsConnection(err), "got %v", err)

	ev, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, sink.KindFailed, ev.Kind)
	assert.Equal(t, "open", ev.Op)
}

func TestClose_Idempotent(t *testing.T) {
	st, err := Open(testConfig(config.MemoryPath, false), nil, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, st.Close())
	require.NoError(t, st.Close())

	_, err = st.Service().ReadEntities(context.Background())
	require.Error(t, err)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := service.ParseDate(s)
	require.NoError(t, err)
	return d
}
