package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/model"
)

type SupportRepository interface {
	Create(ctx context.Context, ticket *model.SupportTicket) error
	List(ctx context.Context) ([]model.SupportTicket, error)
	Get(ctx context.Context, id int64) (*model.SupportTicket, error)
	ListByEntity(ctx context.Context, entityID int64) ([]model.SupportTicket, error)
	// Обновить статус; closedAt записывается, только если передан.
	UpdateStatus(ctx context.Context, id int64, status model.SupportStatus, closedAt *time.Time) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type GormSupportRepository struct {
	t table[model.SupportTicket]
}

func NewGormSupportRepository(db *gorm.DB) *GormSupportRepository {
	return &GormSupportRepository{t: newTable[model.SupportTicket](db, "SupportTickets", "SupportID")}
}

func (r *GormSupportRepository) Create(ctx context.Context, ticket *model.SupportTicket) error {
	return r.t.create(ctx, ticket)
}

func (r *GormSupportRepository) List(ctx context.Context) ([]model.SupportTicket, error) {
	return r.t.list(ctx)
}

func (r *GormSupportRepository) Get(ctx context.Context, id int64) (*model.SupportTicket, error) {
	return r.t.get(ctx, id)
}

func (r *GormSupportRepository) ListByEntity(ctx context.Context, entityID int64) ([]model.SupportTicket, error) {
	return r.t.list(ctx, byEntity(entityID))
}

func (r *GormSupportRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status model.SupportStatus,
	closedAt *time.Time,
) (int64, error) {
	update := map[string]any{
		"Status": status,
	}
	if closedAt != nil {
		update["ClosedAt"] = *closedAt
	}
	return r.t.update(ctx, id, update)
}

func (r *GormSupportRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}
