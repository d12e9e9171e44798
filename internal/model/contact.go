package model

import (
	"time"

	"gorm.io/datatypes"
)

// Contacts - точка контакта. Привязка к Entity необязательна и может
// появиться позже создания записи.
type Contact struct {
	ID int64 `gorm:"column:ContactID;primaryKey;autoIncrement"`

	EntityID *int64 `gorm:"column:EntityID"`

	ContactType string          `gorm:"column:ContactType"`
	ContactDate *datatypes.Date `gorm:"column:ContactDate"`
	Notes       string          `gorm:"column:Notes"`

	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime"`
}

func (Contact) TableName() string { return "Contacts" }

// AssociateEntity привязывает контакт к записи Entity в памяти;
// сохранение делает ContactRepository.AssociateEntity.
func (c *Contact) AssociateEntity(entityID int64) {
	c.EntityID = &entityID
}

func (c Contact) Associated() bool {
	return c.EntityID != nil
}
