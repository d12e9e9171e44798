package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/model"
)

type DealRepository interface {
	Create(ctx context.Context, deal *model.Deal) error
	List(ctx context.Context) ([]model.Deal, error)
	Get(ctx context.Context, id int64) (*model.Deal, error)
	ListByEntity(ctx context.Context, entityID int64) ([]model.Deal, error)
	// UpdatedAt обновляется автоматически.
	UpdateAmount(ctx context.Context, id int64, amount float64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type GormDealRepository struct {
	t table[model.Deal]
}

func NewGormDealRepository(db *gorm.DB) *GormDealRepository {
	return &GormDealRepository{t: newTable[model.Deal](db, "Deals", "DealID")}
}

func (r *GormDealRepository) Create(ctx context.Context, deal *model.Deal) error {
	return r.t.create(ctx, deal)
}

func (r *GormDealRepository) List(ctx context.Context) ([]model.Deal, error) {
	return r.t.list(ctx)
}

func (r *GormDealRepository) Get(ctx context.Context, id int64) (*model.Deal, error) {
	return r.t.get(ctx, id)
}

func (r *GormDealRepository) ListByEntity(ctx context.Context, entityID int64) ([]model.Deal, error) {
	return r.t.list(ctx, byEntity(entityID))
}

func (r *GormDealRepository) UpdateAmount(ctx context.Context, id int64, amount float64) (int64, error) {
	return r.t.update(ctx, id, map[string]any{"Amount": amount})
}

func (r *GormDealRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}
