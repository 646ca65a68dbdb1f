package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	UserID      string         `gorm:"column:user_id;index" json:"userId"`
	UserEmail   string         `gorm:"column:user_email" json:"userEmail"`
	Files       datatypes.JSON `gorm:"column:files" json:"files"`
	Settings    datatypes.JSON `gorm:"column:settings" json:"settings"`
	TotalAmount float64        `gorm:"column:total_amount" json:"totalAmount"`
	Status      string         `gorm:"column:status;default:paid" json:"status"`
	OTP         string         `gorm:"column:otp;size:4;index:idx_orders_active_otp,unique,where:status <> 'collected'" json:"otp"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// Statuses the vendor dashboard is known to set. The update endpoint does not
// enforce a closed set, any non-empty value is persisted.
const (
	StatusPaid      = "paid"
	StatusPrinting  = "printing"
	StatusReady     = "ready"
	StatusCollected = "collected"
)
