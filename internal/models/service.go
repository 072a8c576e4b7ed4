package models

import "time"

// Service rows are removed for real on delete. Every other entity keeps a
// tombstone; the catalog does not.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"size:255;not null" json:"description"`
	Duration    int     `gorm:"not null" json:"duration"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
