package models

import (
	"time"

	"gorm.io/gorm"
)

type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone          string `gorm:"size:255;not null" json:"phone"`
	Document       string `gorm:"size:11;uniqueIndex;not null" json:"document"`
	Specialization string `gorm:"size:255" json:"specialization,omitempty"`
	Bio            string `gorm:"type:text" json:"bio,omitempty"`

	UserID uint `gorm:"index" json:"user_id"`

	Services []Service `gorm:"many2many:provider_services;" json:"services,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
