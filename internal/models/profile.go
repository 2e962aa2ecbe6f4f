package models

import "time"

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	ClinicName string `gorm:"size:100" json:"clinic_name"`
	Timezone   string `gorm:"size:50" json:"timezone"`

	Plan          string     `gorm:"size:20;default:'free'" json:"plan"`
	PlanExpiresAt *time.Time `json:"plan_expires_at"`

	Role           string `gorm:"size:20;default:'user'" json:"role"`
	Active         bool   `gorm:"default:true" json:"active"`
	EmailConfirmed bool   `gorm:"default:false" json:"email_confirmed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
