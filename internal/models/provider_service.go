package models

import "time"

// ProviderService is the join row behind Provider.Services. The pair is
// unique; attach inserts missing pairs and never touches existing ones.
type ProviderService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint `gorm:"uniqueIndex:idx_provider_service;not null" json:"provider_id"`
	ServiceID  uint `gorm:"uniqueIndex:idx_provider_service;not null" json:"service_id"`

	PriceOverride *float64 `gorm:"type:decimal(10,2)" json:"price_override,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
