package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

// AccessRepository хранит уровни доступа, их правила и назначения.
// Права только читаются: проверка доступа вне хранилища.
type AccessRepository interface {
	CreateLevel(ctx context.Context, level *model.AccessLevel) error
	ListLevels(ctx context.Context) ([]model.AccessLevel, error)
	GetLevelByName(ctx context.Context, name string) (*model.AccessLevel, error)

	CreateDefinition(ctx context.Context, def *model.AccessDefinition) error
	ListDefinitions(ctx context.Context) ([]model.AccessDefinition, error)
	DefinitionsForLevel(ctx context.Context, levelID int64) ([]model.AccessDefinition, error)

	// Grant назначает уровень записи Entity; возвращает созданную строку.
	Grant(ctx context.Context, entityID, levelID int64) (*model.EntityAccess, error)
	Revoke(ctx context.Context, entityID, levelID int64) (int64, error)
	ListGrants(ctx context.Context) ([]model.EntityAccess, error)

	// Уровни и правила, выведенные из EntityAccess.
	LevelsForEntity(ctx context.Context, entityID int64) ([]model.AccessLevel, error)
	DefinitionsForEntity(ctx context.Context, entityID int64, entityType string) ([]model.AccessDefinition, error)
}

type GormAccessRepository struct {
	db     *gorm.DB
	levels table[model.AccessLevel]
	defs   table[model.AccessDefinition]
	grants table[model.EntityAccess]
}

func NewGormAccessRepository(db *gorm.DB) *GormAccessRepository {
	return &GormAccessRepository{
		db:     db,
		levels: newTable[model.AccessLevel](db, "AccessLevels", "LevelID"),
		defs:   newTable[model.AccessDefinition](db, "AccessDefinitions", "DefinitionID"),
		grants: newTable[model.EntityAccess](db, "EntityAccess", "AccessID"),
	}
}

func (r *GormAccessRepository) CreateLevel(ctx context.Context, level *model.AccessLevel) error {
	return r.levels.create(ctx, level)
}

func (r *GormAccessRepository) ListLevels(ctx context.Context) ([]model.AccessLevel, error) {
	return r.levels.list(ctx)
}

// GetLevelByName возвращает первый уровень с таким именем:
// LevelName не уникален в схеме.
func (r *GormAccessRepository) GetLevelByName(ctx context.Context, name string) (*model.AccessLevel, error) {
	var level model.AccessLevel
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "LevelName"}, Value: name}).
		Order(r.levels.keyOrder()).
		First(&level).Error
	if err != nil {
		return nil, storeerr.Wrap("get", "AccessLevels", err)
	}
	return &level, nil
}

func (r *GormAccessRepository) CreateDefinition(ctx context.Context, def *model.AccessDefinition) error {
	return r.defs.create(ctx, def)
}

func (r *GormAccessRepository) ListDefinitions(ctx context.Context) ([]model.AccessDefinition, error) {
	return r.defs.list(ctx)
}

func (r *GormAccessRepository) DefinitionsForLevel(ctx context.Context, levelID int64) ([]model.AccessDefinition, error) {
	return r.defs.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "LevelID"}, Value: levelID})
	})
}

func (r *GormAccessRepository) Grant(ctx context.Context, entityID, levelID int64) (*model.EntityAccess, error) {
	grant := &model.EntityAccess{EntityID: entityID, LevelID: levelID}
	if err := r.grants.create(ctx, grant); err != nil {
		return nil, err
	}
	return grant, nil
}

func (r *GormAccessRepository) Revoke(ctx context.Context, entityID, levelID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "EntityID"}, Value: entityID}).
		Where(clause.Eq{Column: clause.Column{Name: "LevelID"}, Value: levelID}).
		Delete(&model.EntityAccess{})
	if res.Error != nil {
		return 0, storeerr.Wrap("delete", "EntityAccess", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *GormAccessRepository) ListGrants(ctx context.Context) ([]model.EntityAccess, error) {
	return r.grants.list(ctx)
}

func (r *GormAccessRepository) LevelsForEntity(ctx context.Context, entityID int64) ([]model.AccessLevel, error) {
	levels := make([]model.AccessLevel, 0)
	err := r.db.WithContext(ctx).
		Joins(`JOIN "EntityAccess" ON "EntityAccess"."LevelID" = "AccessLevels"."LevelID"`).
		Where(`"EntityAccess"."EntityID" = ?`, entityID).
		Order(`"AccessLevels"."LevelID"`).
		Distinct(`"AccessLevels".*`).
		Find(&levels).Error
	if err != nil {
		return nil, storeerr.Wrap("list", "AccessLevels", err)
	}
	return levels, nil
}

// DefinitionsForEntity возвращает правила всех уровней записи для
// entityType. Пустой entityType - правила для всех типов.
func (r *GormAccessRepository) DefinitionsForEntity(
	ctx context.Context,
	entityID int64,
	entityType string,
) ([]model.AccessDefinition, error) {
	defs := make([]model.AccessDefinition, 0)
	q := r.db.WithContext(ctx).
		Joins(`JOIN "EntityAccess" ON "EntityAccess"."LevelID" = "AccessDefinitions"."LevelID"`).
		Where(`"EntityAccess"."EntityID" = ?`, entityID)
	if entityType != "" {
		q = q.Where(`"AccessDefinitions"."EntityType" = ?`, entityType)
	}
	err := q.Order(`"AccessDefinitions"."DefinitionID"`).
		Distinct(`"AccessDefinitions".*`).
		Find(&defs).Error
	if err != nil {
		return nil, storeerr.Wrap("list", "AccessDefinitions", err)
	}
	return defs, nil
}
