package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/crm-core/internal/model"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id int64) (*model.Contact, error)
	ListByEntity(ctx context.Context, entityID int64) ([]model.Contact, error)
	// Привязать существующий контакт к записи Entity.
	AssociateEntity(ctx context.Context, id, entityID int64) (int64, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type GormContactRepository struct {
	t table[model.Contact]
}

func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{t: newTable[model.Contact](db, "Contacts", "ContactID")}
}

func (r *GormContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.t.create(ctx, contact)
}

func (r *GormContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	return r.t.list(ctx)
}

func (r *GormContactRepository) Get(ctx context.Context, id int64) (*model.Contact, error) {
	return r.t.get(ctx, id)
}

func (r *GormContactRepository) ListByEntity(ctx context.Context, entityID int64) ([]model.Contact, error) {
	return r.t.list(ctx, byEntity(entityID))
}

func (r *GormContactRepository) AssociateEntity(ctx context.Context, id, entityID int64) (int64, error) {
	return r.t.update(ctx, id, map[string]any{"EntityID": entityID})
}

func (r *GormContactRepository) UpdateNotes(ctx context.Context, id int64, notes string) (int64, error) {
	return r.t.update(ctx, id, map[string]any{"Notes": notes})
}

func (r *GormContactRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}
