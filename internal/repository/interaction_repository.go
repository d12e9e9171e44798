package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/model"
)

type InteractionRepository interface {
	// Создать взаимодействие; EntityID должен ссылаться на существующую запись.
	Create(ctx context.Context, interaction *model.Interaction) error
	// Все взаимодействия в порядке вставки.
	List(ctx context.Context) ([]model.Interaction, error)
	Get(ctx context.Context, id int64) (*model.Interaction, error)
	ListByEntity(ctx context.Context, entityID int64) ([]model.Interaction, error)
	// Обновить заметки; возвращает число затронутых строк.
	UpdateNotes(ctx context.Context, id int64, notes string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type GormInteractionRepository struct {
	t table[model.Interaction]
}

func NewGormInteractionRepository(db *gorm.DB) *GormInteractionRepository {
	return &GormInteractionRepository{t: newTable[model.Interaction](db, "Interactions", "InteractionID")}
}

func (r *GormInteractionRepository) Create(ctx context.Context, interaction *model.Interaction) error {
	return r.t.create(ctx, interaction)
}

func (r *GormInteractionRepository) List(ctx context.Context) ([]model.Interaction, error) {
	return r.t.list(ctx)
}

func (r *GormInteractionRepository) Get(ctx context.Context, id int64) (*model.Interaction, error) {
	return r.t.get(ctx, id)
}

func (r *GormInteractionRepository) ListByEntity(ctx context.Context, entityID int64) ([]model.Interaction, error) {
	return r.t.list(ctx, byEntity(entityID))
}

func (r *GormInteractionRepository) UpdateNotes(ctx context.Context, id int64, notes string) (int64, error) {
	return r.t.update(ctx, id, map[string]any{"Notes": notes})
}

func (r *GormInteractionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}
