package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run выполняет команду с чистыми флагами и возвращает stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts = options{}

	t.Setenv("CRM_LOG__OUTPUT", filepath.Join(t.TempDir(), "crm.log"))
	t.Setenv("CRM_AUTH__BCRYPT_COST", "4")
	t.Setenv("CRM_DATABASE__LOG_LEVEL", "silent")

	var out bytes.Buffer
	cmd := newRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "john.doe@example.com")
	assert.Contains(t, out, "created interaction 1")
	assert.Contains(t, out, "Discussed project details")
	assert.Contains(t, out, "Discussed project details and budget")
	assert.Equal(t, 2, strings.Count(out, "1 row(s) affected"))
}

func TestFileDatabaseAcrossCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "crm.db")

	_, err := run(t, "init", "--db", db)
	require.NoError(t, err)

	out, err := run(t, "interaction", "create", "--db", db,
		"--entity", "1", "--type", "Email", "--date", "2024-07-12", "--notes", "sent proposal")
	require.NoError(t, err)
	assert.Contains(t, out, "created interaction 1")

	out, err = run(t, "interaction", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "sent proposal")
	assert.Contains(t, out, "2024-07-12")

	out, err = run(t, "interaction", "update-notes", "7", "x", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "0 row(s) affected")

	out, err = run(t, "access", "show", "1", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "read=true write=true delete=true")

	_, err = run(t, "interaction", "create", "--db", db,
		"--entity", "99", "--type", "Email", "--date", "2024-07-12")
	require.Error(t, err)
}

func TestEntityListJSON(t *testing.T) {
	out, err := run(t, "entity", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": 1`)
	assert.NotContains(t, out, "password123")
}

func TestMetricsOutput(t *testing.T) {
	out, err := run(t, "entity", "list", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `crm_store_operations_total{op="read_entities",outcome="ok",table="Entities"} 1`)
}
