package models

import "time"

// Entregas do webhook de pagamento. TransactionID único permite
// reprocessar entregas repetidas sem reaplicar o upgrade de plano.
type PaymentEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Provider      string `gorm:"size:20;default:'mercadopago'" json:"provider"`
	TransactionID string `gorm:"size:100;uniqueIndex;not null" json:"transaction_id"`
	EventType     string `gorm:"size:50" json:"event_type"`

	CustomerEmail string  `gorm:"size:100" json:"customer_email"`
	ProductRef    string  `gorm:"size:100" json:"product_ref"`
	PlanApplied   string  `gorm:"size:20" json:"plan_applied"`
	Amount        float64 `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}
