package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

type EntityRepository interface {
	Create(ctx context.Context, entity *model.Entity) error
	Get(ctx context.Context, id int64) (*model.Entity, error)
	GetByEmail(ctx context.Context, email string) (*model.Entity, error)
	List(ctx context.Context) ([]model.Entity, error)
	// Each читает записи лениво, в порядке вставки.
	Each(ctx context.Context, fn func(model.Entity) error) error
	UpdateContactInfo(ctx context.Context, id int64, phone string, addr model.PostalAddress) (int64, error)
	SetPasswordHash(ctx context.Context, id int64, hash string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type GormEntityRepository struct {
	db *gorm.DB
	t  table[model.Entity]
}

func NewGormEntityRepository(db *gorm.DB) *GormEntityRepository {
	return &GormEntityRepository{db: db, t: newTable[model.Entity](db, "Entities", "EntityID")}
}


func (r *GormEntityRepository) Create(ctx context.Context, entity *model.Entity) error {
	return r.t.create(ctx, entity)
}

func (r *GormEntityRepository) Get(ctx context.Context, id int64) (*model.Entity, error) {
	return r.t.get(ctx, id)
}

// GetByEmail ищет без учёта регистра; адрес хранится как был передан.
// При нескольких совпадениях возвращается первая по ключу запись.
func (r *GormEntityRepository) GetByEmail(ctx context.Context, email string) (*model.Entity, error) {
	var e model.Entity
	err := r.db.WithContext(ctx).
		Where("LOWER(?) = ?", clause.Column{Name: "Email"}, strings.ToLower(strings.TrimSpace(email))).
		First(&e).Error
	if err != nil {
		return nil, storeerr.Wrap("get", "Entities", err)
	}
	return &e, nil
}

func (r *GormEntityRepository) List(ctx context.Context) ([]model.Entity, error) {
	return r.t.list(ctx)
}

func (r *GormEntityRepository) Each(ctx context.Context, fn func(model.Entity) error) error {
	return r.t.each(ctx, fn)
}

func (r *GormEntityRepository) UpdateContactInfo(ctx context.Context, id int64, phone string, addr model.PostalAddress) (int64, error) {
	return r.t.update(ctx, id, map[string]any{
		"Phone":   phone,
		"Address": addr.Street,
		"City":    addr.City,
		"State":   addr.State,
		"ZipCode": addr.ZipCode,
		"Country": addr.Country,
	})
}

func (r *GormEntityRepository) SetPasswordHash(ctx context.Context, id int64, hash string) (int64, error) {
	return r.t.update(ctx, id, map[string]any{"Password": hash})
}

func (r *GormEntityRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}

func (r *GormEntityRepository) Count(ctx context.Context) (int64, error) {
	return r.t.count(ctx)
}
