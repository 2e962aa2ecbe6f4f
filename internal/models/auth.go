package models

import "time"

// Registro consultivo de tentativas de login (ver internal/auth/throttle.go).
type AuthAttempt struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email   string `gorm:"size:100;index" json:"email"`
	IP      string `gorm:"size:45" json:"ip"`
	Success bool   `json:"success"`

	CreatedAt time.Time `json:"created_at"`
}

type UserSession struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID uint   `gorm:"index" json:"user_id"`

	UserAgent string `gorm:"size:255" json:"user_agent"`
	IP        string `gorm:"size:45" json:"ip"`

	CreatedAt  time.Time  `json:"created_at"`
	LastSeenAt time.Time  `json:"last_seen_at"`
	RevokedAt  *time.Time `json:"revoked_at"`
}
