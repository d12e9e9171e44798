package model

import (
	"strings"
	"time"
)

// Вид записи Entity: клиент или сотрудник.
type EntityRole string

const (
	EntityRoleCustomer EntityRole = "customer"
	EntityRoleStaff    EntityRole = "staff"
)

// PostalAddress - адресные колонки Entities.
type PostalAddress struct {
	Street  string `gorm:"column:Address"`
	City    string `gorm:"column:City"`
	State   string `gorm:"column:State"`
	ZipCode string `gorm:"column:ZipCode"`
	Country string `gorm:"column:Country"`
}

// Credentials хранит логин и bcrypt-хеш пароля (колонка Password).
type Credentials struct {
	Username     string `gorm:"column:Username"`
	PasswordHash string `gorm:"column:Password" json:"-"`
}

// Entities - общая запись клиента или сотрудника.
// Связанные контакты, взаимодействия и уровни доступа не кешируются
// на структуре, а выбираются запросом по EntityID.
type Entity struct {
	ID int64 `gorm:"column:EntityID;primaryKey;autoIncrement"`

	FirstName string `gorm:"column:FirstName;not null"`
	LastName  string `gorm:"column:LastName;not null"`
	Email     string `gorm:"column:Email;not null;unique"`
	Phone     string `gorm:"column:Phone"`

	Address PostalAddress `gorm:"embedded"`

	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime"`

	Credentials Credentials `gorm:"embedded"`

	Role EntityRole `gorm:"column:Role"`
}

func (Entity) TableName() string { return "Entities" }

func (e Entity) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

func (e Entity) IsStaff() bool {
	return e.Role == EntityRoleStaff
}

// HasCredentials сообщает, может ли запись входить в систему.
func (e Entity) HasCredentials() bool {
	return e.Credentials.Username != "" && e.Credentials.PasswordHash != ""
}
