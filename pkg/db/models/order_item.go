package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderItem snapshots one cart line at checkout. Title, types and price are
// copied from the catalog so later catalog edits never rewrite history.
type OrderItem struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID      uuid.UUID      `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID    string         `gorm:"column:product_id;type:text;not null"`
	Title        string         `gorm:"column:title;not null"`
	ProductTypes pq.StringArray `gorm:"column:product_types;type:text[];not null"`
	Price        int64          `gorm:"column:price;not null"`
	Quantity     int            `gorm:"column:quantity;not null"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}
