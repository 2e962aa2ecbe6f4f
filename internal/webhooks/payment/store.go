package payment

import (
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/models"
)

// Store é o recorte de persistência do webhook. Erros de "não achei" e
// de chave duplicada seguem os sentinelas do gorm.
type Store interface {
	FindEvent(transactionID string) (*models.PaymentEvent, error)
	FindProfileByEmail(email string) (*models.Profile, error)
	SaveProfile(p *models.Profile) error
	RecordEvent(ev *models.PaymentEvent) error
}

type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) FindEvent(transactionID string) (*models.PaymentEvent, error) {
	var ev models.PaymentEvent
	if err := s.db.Where("transaction_id = ?", transactionID).First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *gormStore) FindProfileByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *gormStore) SaveProfile(p *models.Profile) error {
	return s.db.Save(p).Error
}

func (s *gormStore) RecordEvent(ev *models.PaymentEvent) error {
	return s.db.Create(ev).Error
}

var _ Store = (*gormStore)(nil)
