package service

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/Leganyst/crm-core/internal/model"
)

const interactionsTable = "Interactions"

type newInteraction struct {
	EntityID int64     `validate:"gt=0"`
	Type     string    `validate:"required,max=100"`
	Date     time.Time `validate:"required"`
}

// CreateInteraction записывает взаимодействие с существующей записью Entity.
func (s *CRMService) CreateInteraction(
	ctx context.Context,
	entityID int64,
	interactionType string,
	date time.Time,
	notes string,
) (int64, error) {
	const op = "create_interaction"
	if err := s.check(op, interactionsTable, newInteraction{entityID, interactionType, date}); err != nil {
		return 0, err
	}

	in := &model.Interaction{
		EntityID:        entityID,
		InteractionType: interactionType,
		InteractionDate: datatypes.Date(date),
		Notes:           notes,
	}
	err := s.repos.Interactions.Create(ctx, in)
	return s.created(op, interactionsTable, in.ID, err)
}

func (s *CRMService) ReadInteractions(ctx context.Context) ([]model.Interaction, error) {
	rows, err := s.repos.Interactions.List(ctx)
	return readAll(s, "read_interactions", interactionsTable, rows, err)
}

func (s *CRMService) ReadInteraction(ctx context.Context, id int64) (*model.Interaction, error) {
	row, err := s.repos.Interactions.Get(ctx, id)
	return readOne(s, "read_interaction", interactionsTable, row, err)
}

func (s *CRMService) ReadEntityInteractions(ctx context.Context, entityID int64) ([]model.Interaction, error) {
	rows, err := s.repos.Interactions.ListByEntity(ctx, entityID)
	return readAll(s, "read_entity_interactions", interactionsTable, rows, err)
}

// UpdateInteractionNotes меняет только заметки. Отсутствующий id даёт 0.
func (s *CRMService) UpdateInteractionNotes(ctx context.Context, id int64, notes string) (int64, error) {
	n, err := s.repos.Interactions.UpdateNotes(ctx, id, notes)
	return s.affected("update_interaction_notes", interactionsTable, n, err)
}

func (s *CRMService) DeleteInteraction(ctx context.Context, id int64) (int64, error) {
	n, err := s.repos.Interactions.Delete(ctx, id)
	return s.affected("delete_interaction", interactionsTable, n, err)
}
