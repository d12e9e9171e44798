package model

import "time"

type SupportStatus string

const (
	SupportStatusOpen   SupportStatus = "open"
	SupportStatusClosed SupportStatus = "closed"
)

// SupportTickets - обращения в поддержку.
type SupportTicket struct {
	ID int64 `gorm:"column:SupportID;primaryKey;autoIncrement"`

	EntityID int64 `gorm:"column:EntityID"`

	Subject     string        `gorm:"column:Subject"`
	Description string        `gorm:"column:Description"`
	Status      SupportStatus `gorm:"column:Status"`

	CreatedAt time.Time  `gorm:"column:CreatedAt;autoCreateTime"`
	ClosedAt  *time.Time `gorm:"column:ClosedAt"`
}

func (SupportTicket) TableName() string { return "SupportTickets" }
