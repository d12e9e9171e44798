package model

import (
	"time"

	"gorm.io/datatypes"
)

// Interactions - журнал взаимодействий. Изменяемое поле одно: Notes.
type Interaction struct {
	ID int64 `gorm:"column:InteractionID;primaryKey;autoIncrement"`

	EntityID int64 `gorm:"column:EntityID"`

	InteractionType string         `gorm:"column:InteractionType"`
	InteractionDate datatypes.Date `gorm:"column:InteractionDate"`
	Notes           string         `gorm:"column:Notes"`

	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime"`
}

func (Interaction) TableName() string { return "Interactions" }
