package models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone   string `gorm:"size:255;not null" json:"phone"`
	Address string `gorm:"size:255" json:"address,omitempty"`

	// Identity that registered this client, when known.
	UserID *uint `gorm:"index" json:"user_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
