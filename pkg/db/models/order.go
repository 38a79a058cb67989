package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/minhtridev/edustore-backend/pkg/enums"
)

// Order is a checkout awaiting (or past) manual bank-transfer settlement.
// Amounts are whole VND.
type Order struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	TotalAmount int64             `gorm:"column:total_amount;not null"`
	Status      enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	PaidAt      *time.Time        `gorm:"column:paid_at"`
	CancelledAt *time.Time        `gorm:"column:cancelled_at"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}
