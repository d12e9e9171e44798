package model

import (
	"time"

	"gorm.io/datatypes"
)

// deals
type Deal struct {
	ID int64 `gorm:"column:DealID;primaryKey;autoIncrement"`

	EntityID int64 `gorm:"column:EntityID"`

	DealType string          `gorm:"column:DealType"`
	DealDate *datatypes.Date `gorm:"column:DealDate"`
	Amount   float64         `gorm:"column:Amount;type:decimal(10,2)"`

	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:UpdatedAt;autoUpdateTime"`
}

func (Deal) TableName() string { return "Deals" }
