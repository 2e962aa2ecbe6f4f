package models

import "time"

type CalendarSchedule struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CalendarPermission struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CalendarID uint `gorm:"index:idx_calendar_permissions,unique" json:"calendar_id"`
	UserID     uint `gorm:"index:idx_calendar_permissions,unique" json:"user_id"`

	// view | edit | manage
	Permission string `gorm:"size:20;not null" json:"permission"`

	CreatedAt time.Time `json:"created_at"`
}
