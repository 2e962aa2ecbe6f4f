package models

import "time"

type MedicalRecord struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	Description string `gorm:"size:255" json:"description"`
	RecordDate  string `gorm:"size:10" json:"record_date"`
	Notes       string `gorm:"type:text" json:"notes"`

	Files []MedicalRecordFile `gorm:"foreignKey:RecordID" json:"files"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MedicalRecordFile struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	RecordID uint `gorm:"index" json:"record_id"`

	FileName    string `gorm:"size:255;not null" json:"file_name"`
	ContentType string `gorm:"size:100" json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`

	// Chave do objeto no bucket, nunca exposta diretamente ao cliente.
	StorageKey string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
