package service

import (
	"context"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/sink"
)

const (
	levelsTable      = "AccessLevels"
	definitionsTable = "AccessDefinitions"
	grantsTable      = "EntityAccess"
)

func (s *CRMService) CreateAccessLevel(ctx context.Context, name string) (int64, error) {
	const op = "create_access_level"
	if err := s.checkVar(op, levelsTable, name, "required,max=50"); err != nil {
		return 0, err
	}
	level := &model.AccessLevel{LevelName: name}
	err := s.repos.Access.CreateLevel(ctx, level)
	return s.created(op, levelsTable, level.ID, err)
}

func (s *CRMService) ReadAccessLevels(ctx context.Context) ([]model.AccessLevel, error) {
	rows, err := s.repos.Access.ListLevels(ctx)
	return readAll(s, "read_access_levels", levelsTable, rows, err)
}

func (s *CRMService) ReadAccessLevel(ctx context.Context, name string) (*model.AccessLevel, error) {
	row, err := s.repos.Access.GetLevelByName(ctx, name)
	return readOne(s, "read_access_level", levelsTable, row, err)
}

type newDefinition struct {
	LevelID    int64  `validate:"gt=0"`
	EntityType string `validate:"required,max=50"`
}

// DefineAccess добавляет правило уровня для типа сущности.
func (s *CRMService) DefineAccess(ctx context.Context, levelID int64, entityType string, caps model.Capabilities) (int64, error) {
	const op = "define_access"
	if err := s.check(op, definitionsTable, newDefinition{levelID, entityType}); err != nil {
		return 0, err
	}
	def := &model.AccessDefinition{
		LevelID:    levelID,
		EntityType: entityType,
		CanRead:    caps.Read,
		CanWrite:   caps.Write,
		CanDelete:  caps.Delete,
	}
	err := s.repos.Access.CreateDefinition(ctx, def)
	return s.created(op, definitionsTable, def.ID, err)
}

func (s *CRMService) ReadAccessDefinitions(ctx context.Context) ([]model.AccessDefinition, error) {
	rows, err := s.repos.Access.ListDefinitions(ctx)
	return readAll(s, "read_access_definitions", definitionsTable, rows, err)
}

func (s *CRMService) ReadLevelDefinitions(ctx context.Context, levelID int64) ([]model.AccessDefinition, error) {
	rows, err := s.repos.Access.DefinitionsForLevel(ctx, levelID)
	return readAll(s, "read_level_definitions", definitionsTable, rows, err)
}

func (s *CRMService) GrantAccess(ctx context.Context, entityID, levelID int64) (int64, error) {
	const op = "grant_access"
	grant, err := s.repos.Access.Grant(ctx, entityID, levelID)
	if err != nil {
		return 0, s.fail(op, grantsTable, err)
	}
	s.out.Report(sink.Created(op, grantsTable, grant.ID))
	return grant.ID, nil
}

func (s *CRMService) RevokeAccess(ctx context.Context, entityID, levelID int64) (int64, error) {
	n, err := s.repos.Access.Revoke(ctx, entityID, levelID)
	return s.affected("revoke_access", grantsTable, n, err)
}

func (s *CRMService) ReadGrants(ctx context.Context) ([]model.EntityAccess, error) {
	rows, err := s.repos.Access.ListGrants(ctx)
	return readAll(s, "read_grants", grantsTable, rows, err)
}

func (s *CRMService) EntityAccessLevels(ctx context.Context, entityID int64) ([]model.AccessLevel, error) {
	rows, err := s.repos.Access.LevelsForEntity(ctx, entityID)
	return readAll(s, "entity_access_levels", levelsTable, rows, err)
}

// EntityCapabilities объединяет права всех уровней записи для entityType.
// Это только вывод данных: хранилище доступ не проверяет.
func (s *CRMService) EntityCapabilities(ctx context.Context, entityID int64, entityType string) (model.Capabilities, error) {
	const op = "entity_capabilities"
	defs, err := s.repos.Access.DefinitionsForEntity(ctx, entityID, entityType)
	if err != nil {
		return model.Capabilities{}, s.fail(op, definitionsTable, err)
	}

	var caps model.Capabilities
	for _, d := range defs {
		c := d.Capabilities()
		caps.Read = caps.Read || c.Read
		caps.Write = caps.Write || c.Write
		caps.Delete = caps.Delete || c.Delete
	}
	s.out.Report(sink.Rows(op, definitionsTable, caps, len(defs)))
	return caps, nil
}
