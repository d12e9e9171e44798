package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/service"
)

// Seed вставляет строки data по одной, без общей транзакции. Ошибка строки
// не останавливает остальные; строки, зависящие от неудавшейся, пропускаются
// с собственной ошибкой.
func Seed(ctx context.Context, svc *service.CRMService, data model.SeedData) error {
	var errs []error

	entityID, err := svc.CreateEntity(ctx, service.NewEntity{
		FirstName: data.Entity.FirstName,
		LastName:  data.Entity.LastName,
		Email:     data.Entity.Email,
		Phone:     data.Entity.Phone,
		Address:   data.Entity.Address,
		Role:      data.Entity.Role,
		Username:  data.Entity.Credentials.Username,
		Password:  data.Password,
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("seed entity: %w", err))
	}

	levels := make(map[string]int64, len(data.Levels))
	for _, name := range data.Levels {
		id, err := svc.CreateAccessLevel(ctx, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("seed level %s: %w", name, err))
			continue
		}
		levels[name] = id
	}

	for _, def := range data.Definitions {
		levelID, ok := levels[def.LevelName]
		if !ok {
			errs = append(errs, fmt.Errorf("seed definition: level %s was not created", def.LevelName))
			continue
		}
		if _, err := svc.DefineAccess(ctx, levelID, def.EntityType, def.Capabilities); err != nil {
			errs = append(errs, fmt.Errorf("seed definition %s/%s: %w", def.LevelName, def.EntityType, err))
		}
	}

	for _, name := range data.Grants {
		levelID, ok := levels[name]
		if !ok || entityID == 0 {
			errs = append(errs, fmt.Errorf("seed grant %s: entity or level was not created", name))
			continue
		}
		if _, err := svc.GrantAccess(ctx, entityID, levelID); err != nil {
			errs = append(errs, fmt.Errorf("seed grant %s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
