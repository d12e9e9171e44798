package model

import (
	"time"

	"gorm.io/datatypes"
)

// Статус заказа - непрозрачная строка, переходы не проверяются.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orders
type Order struct {
	ID int64 `gorm:"column:OrderID;primaryKey;autoIncrement"`

	EntityID int64 `gorm:"column:EntityID"`

	Quantity    int             `gorm:"column:Quantity"`
	TotalAmount float64         `gorm:"column:TotalAmount;type:decimal(10,2)"`
	OrderDate   *datatypes.Date `gorm:"column:OrderDate"`
	Status      OrderStatus     `gorm:"column:Status"`

	CreatedAt time.Time `gorm:"column:CreatedAt;autoCreateTime"`
}

func (Order) TableName() string { return "Orders" }
