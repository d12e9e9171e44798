package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id int64) (*model.Order, error)
	ListByEntity(ctx context.Context, entityID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type GormOrderRepository struct {
	t table[model.Order]
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{t: newTable[model.Order](db, "Orders", "OrderID")}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.t.create(ctx, order)
}

func (r *GormOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.t.list(ctx)
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*model.Order, error) {
	return r.t.get(ctx, id)
}

func (r *GormOrderRepository) ListByEntity(ctx context.Context, entityID int64) ([]model.Order, error) {
	return r.t.list(ctx, byEntity(entityID))
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (int64, error) {
	return r.t.update(ctx, id, map[string]any{"Status": status})
}

func (r *GormOrderRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}
