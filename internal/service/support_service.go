package service

import (
	"context"
	"time"

	"github.com/Leganyst/crm-core/internal/model"
)

const supportTable = "SupportTickets"

type NewTicket struct {
	EntityID    int64  `validate:"gt=0"`
	Subject     string `validate:"required,max=200"`
	Description string
}

// OpenTicket создаёт обращение в статусе open.
func (s *CRMService) OpenTicket(ctx context.Context, in NewTicket) (int64, error) {
	const op = "open_ticket"
	if err := s.check(op, supportTable, in); err != nil {
		return 0, err
	}

	t := &model.SupportTicket{
		EntityID:    in.EntityID,
		Subject:     in.Subject,
		Description: in.Description,
		Status:      model.SupportStatusOpen,
	}
	err := s.repos.Support.Create(ctx, t)
	return s.created(op, supportTable, t.ID, err)
}

func (s *CRMService) ReadTickets(ctx context.Context) ([]model.SupportTicket, error) {
	rows, err := s.repos.Support.List(ctx)
	return readAll(s, "read_tickets", supportTable, rows, err)
}

func (s *CRMService) ReadTicket(ctx context.Context, id int64) (*model.SupportTicket, error) {
	row, err := s.repos.Support.Get(ctx, id)
	return readOne(s, "read_ticket", supportTable, row, err)
}

func (s *CRMService) ReadEntityTickets(ctx context.Context, entityID int64) ([]model.SupportTicket, error) {
	rows, err := s.repos.Support.ListByEntity(ctx, entityID)
	return readAll(s, "read_entity_tickets", supportTable, rows, err)
}

// UpdateTicketStatus записывает статус; для closed дополнительно ставит ClosedAt.
func (s *CRMService) UpdateTicketStatus(ctx context.Context, id int64, status model.SupportStatus) (int64, error) {
	const op = "update_ticket_status"
	if err := s.checkVar(op, supportTable, string(status), "required,max=32"); err != nil {
		return 0, err
	}

	var closedAt *time.Time
	if status == model.SupportStatusClosed {
		now := s.now()
		closedAt = &now
	}
	n, err := s.repos.Support.UpdateStatus(ctx, id, status, closedAt)
	return s.affected(op, supportTable, n, err)
}

func (s *CRMService) CloseTicket(ctx context.Context, id int64) (int64, error) {
	return s.UpdateTicketStatus(ctx, id, model.SupportStatusClosed)
}

func (s *CRMService) DeleteTicket(ctx context.Context, id int64) (int64, error) {
	n, err := s.repos.Support.Delete(ctx, id)
	return s.affected("delete_ticket", supportTable, n, err)
}
