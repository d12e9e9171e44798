package model

import (
	"context"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestSchema_SameTablesForEveryDialect(t *testing.T) {
	for _, dialect := range []string{"sqlite", "postgres"} {
		stmts, err := Schema(dialect)
		if err != nil {
			t.Fatalf("Schema(%s): %v", dialect, err)
		}
		if len(stmts) != len(Tables) {
			t.Fatalf("%s: %d statements, want %d", dialect, len(stmts), len(Tables))
		}
		for i, stmt := range stmts {
			if stmt.Table != Tables[i] {
				t.Fatalf("%s: statement %d is for %s, want %s", dialect, i, stmt.Table, Tables[i])
			}
			if !strings.Contains(stmt.SQL, stmt.Table) {
				t.Fatalf("%s: statement for %s does not name the table", dialect, stmt.Table)
			}
		}
	}

	if _, err := Schema("mysql"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}

func TestApplySchema_CreatesAllTables(t *testing.T) {
	db := openMemory(t)

	if HasSchema(db) {
		t.Fatalf("fresh database should not have schema")
	}
	created, err := ApplySchema(context.Background(), db, nil)
	if err != nil {
		t.Fatalf("ApplySchema: %v", err)
	}
	if len(created) != len(Tables) {
		t.Fatalf("created %v, want all of %v", created, Tables)
	}
	if !HasSchema(db) {
		t.Fatalf("schema missing after apply")
	}

	for _, table := range Tables {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s not created", table)
		}
	}
	if !db.Migrator().HasColumn(&Entity{}, "ZipCode") {
		t.Fatalf("Entities.ZipCode column missing")
	}
}

func TestApplySchema_BestEffortReportsEachFailure(t *testing.T) {
	db := openMemory(t)

	// Имя AccessLevels занято представлением: таблицы нет, а CREATE TABLE
	// упадёт. Остальные выражения выполнятся.
	if err := db.Exec(`CREATE VIEW AccessLevels AS SELECT 1 AS LevelID`).Error; err != nil {
		t.Fatalf("pre-create: %v", err)
	}

	var failed []string
	created, err := ApplySchema(context.Background(), db, func(stmt Statement, err error) {
		failed = append(failed, stmt.Table)
	})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if len(failed) != 1 || failed[0] != "AccessLevels" {
		t.Fatalf("failed = %v, want [AccessLevels]", failed)
	}
	if len(created) != len(Tables)-1 {
		t.Fatalf("created = %v", created)
	}
	for _, table := range []string{"EntityAccess", "SupportTickets"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s should be created after an earlier failure", table)
		}
	}
}

func TestApplySchema_CompletesExistingFile(t *testing.T) {
	db := openMemory(t)

	// Старый файл: есть Entities со строкой, остальных таблиц нет.
	stmts, err := Schema("sqlite")
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if err := db.Exec(stmts[0].SQL).Error; err != nil {
		t.Fatalf("create Entities: %v", err)
	}
	if err := db.Exec(`INSERT INTO Entities (FirstName, LastName, Email) VALUES ('Ann', 'Lee', 'ann@example.com')`).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	created, err := ApplySchema(context.Background(), db, nil)
	if err != nil {
		t.Fatalf("ApplySchema: %v", err)
	}
	if len(created) != len(Tables)-1 || created[0] != "Contacts" {
		t.Fatalf("created = %v, want every table but Entities", created)
	}

	var n int64
	if err := db.Table("Entities").Count(&n).Error; err != nil || n != 1 {
		t.Fatalf("existing rows: n=%d err=%v", n, err)
	}

	// Повторный вызов ничего не создаёт и не падает.
	created, err = ApplySchema(context.Background(), db, nil)
	if err != nil || len(created) != 0 {
		t.Fatalf("second apply: created=%v err=%v", created, err)
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	if seed.Entity.Email != "john.doe@example.com" {
		t.Fatalf("unexpected seed email %q", seed.Entity.Email)
	}
	want := []Capabilities{
		{Read: true, Write: true, Delete: true},
		{Read: true, Write: true, Delete: false},
		{Read: true, Write: false, Delete: false},
	}
	for i, def := range seed.Definitions {
		if def.Capabilities != want[i] {
			t.Fatalf("definition %d = %+v, want %+v", i, def.Capabilities, want[i])
		}
		if def.LevelName != seed.Levels[i] {
			t.Fatalf("definition %d level = %s, want %s", i, def.LevelName, seed.Levels[i])
		}
	}
}
