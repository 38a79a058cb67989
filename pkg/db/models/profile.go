package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile stores the customer-facing details shown on the account page.
// The row shares its primary key with the owning user.
type Profile struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email     string    `gorm:"type:text;not null"`
	FullName  string    `gorm:"column:full_name;not null;default:''"`
	Phone     string    `gorm:"column:phone;not null;default:''"`
	Address   string    `gorm:"column:address;not null;default:''"`
	AvatarURL *string   `gorm:"column:avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
