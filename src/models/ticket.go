package models

import (
	"time"
)

// Ticket rows do not carry the bulk-request amount; that value only sizes
// the batch being created and is never persisted per row.
type Ticket struct {
	ID      uint    `gorm:"primarykey" json:"id"`
	UserID  *uint   `json:"user_id"`
	Name    string  `gorm:"not null" json:"name"`
	Price   float64 `gorm:"not null" json:"price"`
	IsValid bool    `gorm:"not null;default:true" json:"is_valid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
