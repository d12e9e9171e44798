package service

import (
	"context"
	"time"

	"github.com/Leganyst/crm-core/internal/model"
)

const contactsTable = "Contacts"

type NewContact struct {
	// EntityID можно не указывать и привязать контакт позже.
	EntityID *int64 `validate:"omitempty,gt=0"`
	Type     string `validate:"required,max=100"`
	Date     *time.Time
	Notes    string
}

func (s *CRMService) CreateContact(ctx context.Context, in NewContact) (int64, error) {
	const op = "create_contact"
	if err := s.check(op, contactsTable, in); err != nil {
		return 0, err
	}

	c := &model.Contact{
		EntityID:    in.EntityID,
		ContactType: in.Type,
		ContactDate: toDate(in.Date),
		Notes:       in.Notes,
	}
	err := s.repos.Contacts.Create(ctx, c)
	return s.created(op, contactsTable, c.ID, err)
}

func (s *CRMService) ReadContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := s.repos.Contacts.List(ctx)
	return readAll(s, "read_contacts", contactsTable, rows, err)
}

func (s *CRMService) ReadContact(ctx context.Context, id int64) (*model.Contact, error) {
	row, err := s.repos.Contacts.Get(ctx, id)
	return readOne(s, "read_contact", contactsTable, row, err)
}

func (s *CRMService) ReadEntityContacts(ctx context.Context, entityID int64) ([]model.Contact, error) {
	rows, err := s.repos.Contacts.ListByEntity(ctx, entityID)
	return readAll(s, "read_entity_contacts", contactsTable, rows, err)
}

// AssociateContact привязывает контакт к записи Entity.
func (s *CRMService) AssociateContact(ctx context.Context, contactID, entityID int64) (int64, error) {
	n, err := s.repos.Contacts.AssociateEntity(ctx, contactID, entityID)
	return s.affected("associate_contact", contactsTable, n, err)
}

func (s *CRMService) UpdateContactNotes(ctx context.Context, id int64, notes string) (int64, error) {
	n, err := s.repos.Contacts.UpdateNotes(ctx, id, notes)
	return s.affected("update_contact_notes", contactsTable, n, err)
}

func (s *CRMService) DeleteContact(ctx context.Context, id int64) (int64, error) {
	n, err := s.repos.Contacts.Delete(ctx, id)
	return s.affected("delete_contact", contactsTable, n, err)
}
