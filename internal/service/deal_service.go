package service

import (
	"context"
	"time"

	"github.com/Leganyst/crm-core/internal/model"
)

const dealsTable = "Deals"

type NewDeal struct {
	EntityID int64  `validate:"gt=0"`
	Type     string `validate:"required,max=100"`
	Date     *time.Time
	Amount   float64 `validate:"gte=0,lt=100000000"` // DECIMAL(10,2)
}

func (s *CRMService) CreateDeal(ctx context.Context, in NewDeal) (int64, error) {
	const op = "create_deal"
	if err := s.check(op, dealsTable, in); err != nil {
		return 0, err
	}

	d := &model.Deal{
		EntityID: in.EntityID,
		DealType: in.Type,
		DealDate: toDate(in.Date),
		Amount:   in.Amount,
	}
	err := s.repos.Deals.Create(ctx, d)
	return s.created(op, dealsTable, d.ID, err)
}

func (s *CRMService) ReadDeals(ctx context.Context) ([]model.Deal, error) {
	rows, err := s.repos.Deals.List(ctx)
	return readAll(s, "read_deals", dealsTable, rows, err)
}

func (s *CRMService) ReadDeal(ctx context.Context, id int64) (*model.Deal, error) {
	row, err := s.repos.Deals.Get(ctx, id)
	return readOne(s, "read_deal", dealsTable, row, err)
}

func (s *CRMService) ReadEntityDeals(ctx context.Context, entityID int64) ([]model.Deal, error) {
	rows, err := s.repos.Deals.ListByEntity(ctx, entityID)
	return readAll(s, "read_entity_deals", dealsTable, rows, err)
}

func (s *CRMService) UpdateDealAmount(ctx context.Context, id int64, amount float64) (int64, error) {
	const op = "update_deal_amount"
	if err := s.checkVar(op, dealsTable, amount, "gte=0,lt=100000000"); err != nil {
		return 0, err
	}
	n, err := s.repos.Deals.UpdateAmount(ctx, id, amount)
	return s.affected(op, dealsTable, n, err)
}

func (s *CRMService) DeleteDeal(ctx context.Context, id int64) (int64, error) {
	n, err := s.repos.Deals.Delete(ctx, id)
	return s.affected("delete_deal", dealsTable, n, err)
}
