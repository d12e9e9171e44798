package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Leganyst/crm-core/internal/model"
	"github.com/Leganyst/crm-core/internal/sink"
	"github.com/Leganyst/crm-core/internal/storeerr"
)

const entitiesTable = "Entities"

type NewEntity struct {
	FirstName string              `validate:"required,max=100"`
	LastName  string              `validate:"required,max=100"`
	Email     string              `validate:"required,email"`
	Phone     string              `validate:"omitempty,max=32"`
	Address   model.PostalAddress `validate:"-"`
	Role      model.EntityRole    `validate:"omitempty,oneof=customer staff"`

	// Пароль без логина не принимается.
	Username string `validate:"required_with=Password,max=100"`
	Password string `validate:"omitempty,min=8,max=72"`
}

// CreateEntity создаёт запись Entity; пароль сохраняется только как bcrypt-хеш.
func (s *CRMService) CreateEntity(ctx context.Context, in NewEntity) (int64, error) {
	const op = "create_entity"
	if err := s.check(op, entitiesTable, in); err != nil {
		return 0, err
	}

	e := &model.Entity{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Credentials: model.Credentials{Username: in.Username},
		Role:        in.Role,
	}
	if e.Role == "" {
		e.Role = model.EntityRoleCustomer
	}
	if in.Password != "" {
		hash, err := s.hashPassword(in.Password)
		if err != nil {
			return 0, s.fail(op, entitiesTable, err)
		}
		e.Credentials.PasswordHash = hash
	}

	err := s.repos.Entities.Create(ctx, e)
	return s.created(op, entitiesTable, e.ID, err)
}

func (s *CRMService) ReadEntities(ctx context.Context) ([]model.Entity, error) {
	rows, err := s.repos.Entities.List(ctx)
	return readAll(s, "read_entities", entitiesTable, rows, err)
}

// StreamEntities отдаёт записи по одной, не загружая таблицу целиком.
// fn не должен вызывать другие операции хранилища.
func (s *CRMService) StreamEntities(ctx context.Context, fn func(model.Entity) error) error {
	const op = "stream_entities"
	n := 0
	err := s.repos.Entities.Each(ctx, func(e model.Entity) error {
		n++
		return fn(e)
	})
	if err != nil {
		return s.fail(op, entitiesTable, err)
	}
	s.out.Report(sink.Rows(op, entitiesTable, nil, n))
	return nil
}

func (s *CRMService) ReadEntity(ctx context.Context, id int64) (*model.Entity, error) {
	row, err := s.repos.Entities.Get(ctx, id)
	return readOne(s, "read_entity", entitiesTable, row, err)
}

func (s *CRMService) ReadEntityByEmail(ctx context.Context, email string) (*model.Entity, error) {
	row, err := s.repos.Entities.GetByEmail(ctx, email)
	return readOne(s, "read_entity", entitiesTable, row, err)
}

func (s *CRMService) UpdateEntityContact(ctx context.Context, id int64, phone string, addr model.PostalAddress) (int64, error) {
	n, err := s.repos.Entities.UpdateContactInfo(ctx, id, phone, addr)
	return s.affected("update_entity_contact", entitiesTable, n, err)
}

// SetEntityPassword заменяет хеш пароля записи.
func (s *CRMService) SetEntityPassword(ctx context.Context, id int64, password string) (int64, error) {
	const op = "set_entity_password"
	if err := s.checkVar(op, entitiesTable, password, "required,min=8,max=72"); err != nil {
		return 0, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return 0, s.fail(op, entitiesTable, err)
	}
	n, err := s.repos.Entities.SetPasswordHash(ctx, id, hash)
	return s.affected(op, entitiesTable, n, err)
}

func (s *CRMService) DeleteEntity(ctx context.Context, id int64) (int64, error) {
	n, err := s.repos.Entities.Delete(ctx, id)
	return s.affected("delete_entity", entitiesTable, n, err)
}

func (s *CRMService) CountEntities(ctx context.Context) (int64, error) {
	n, err := s.repos.Entities.Count(ctx)
	if err != nil {
		return 0, s.fail("count_entities", entitiesTable, err)
	}
	s.out.Report(sink.Rows("count_entities", entitiesTable, nil, int(n)))
	return n, nil
}

func (s *CRMService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", storeerr.New(storeerr.ConstraintViolation, "hash", entitiesTable, err)
	}
	return string(hash), nil
}
