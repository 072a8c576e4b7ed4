package dto

// ProviderServiceDTO is a provider's view of one attached service. Price is
// the effective value: the pair's override when set, the base price otherwise.
type ProviderServiceDTO struct {
	ServiceID     uint     `json:"service_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Duration      int      `json:"duration"`
	Price         float64  `json:"price"`
	BasePrice     float64  `json:"base_price"`
	PriceOverride *float64 `json:"price_override,omitempty"`
}
