package service

import (
	"context"
	"time"

	"github.com/Leganyst/crm-core/internal/model"
)

const ordersTable = "Orders"

type NewOrder struct {
	EntityID    int64   `validate:"gt=0"`
	Quantity    int     `validate:"gt=0"`
	TotalAmount float64 `validate:"gte=0,lt=100000000"`
	Date        *time.Time
	// Пустой статус сохраняется как pending.
	Status model.OrderStatus `validate:"omitempty,max=32"`
}

func (s *CRMService) CreateOrder(ctx context.Context, in NewOrder) (int64, error) {
	const op = "create_order"
	if err := s.check(op, ordersTable, in); err != nil {
		return 0, err
	}

	o := &model.Order{
		EntityID:    in.EntityID,
		Quantity:    in.Quantity,
		TotalAmount: in.TotalAmount,
		OrderDate:   toDate(in.Date),
		Status:      in.Status,
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	err := s.repos.Orders.Create(ctx, o)
	return s.created(op, ordersTable, o.ID, err)
}

func (s *CRMService) ReadOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := s.repos.Orders.List(ctx)
	return readAll(s, "read_orders", ordersTable, rows, err)
}

func (s *CRMService) ReadOrder(ctx context.Context, id int64) (*model.Order, error) {
	row, err := s.repos.Orders.Get(ctx, id)
	return readOne(s, "read_order", ordersTable, row, err)
}

func (s *CRMService) ReadEntityOrders(ctx context.Context, entityID int64) ([]model.Order, error) {
	rows, err := s.repos.Orders.ListByEntity(ctx, entityID)
	return readAll(s, "read_entity_orders", ordersTable, rows, err)
}

// UpdateOrderStatus записывает статус как есть: переходы не проверяются.
func (s *CRMService) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (int64, error) {
	const op = "update_order_status"
	if err := s.checkVar(op, ordersTable, string(status), "required,max=32"); err != nil {
		return 0, err
	}
	n, err := s.repos.Orders.UpdateStatus(ctx, id, status)
	return s.affected(op, ordersTable, n, err)
}

func (s *CRMService) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	n, err := s.repos.Orders.Delete(ctx, id)
	return s.affected("delete_order", ordersTable, n, err)
}
