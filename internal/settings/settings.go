package settings

import (
	"encoding/json"
	"errors"
	"regexp"

	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/models"
)

// Chaves com cara de segredo nunca saem em listagens.
var secretKeyPattern = regexp.MustCompile(`(?i)password|token|key|secret`)

const redactedValue = `"[REDACTED]"`

func IsSecretKey(key string) bool {
	return secretKeyPattern.MatchString(key)
}

// Redact substitui o valor de chaves sensíveis pelo marcador.
func Redact(key, value string) string {
	if IsSecretKey(key) {
		return redactedValue
	}
	return value
}

// ======================================================
// SERVICE
// ======================================================

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// --------------------------------------------------
// System settings
// --------------------------------------------------

func (s *Service) GetSystem(key string) (string, error) {
	var setting models.SystemSetting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return "", err
	}
	return setting.Value, nil
}

// GetSystemBool decodifica um flag; ausente ou inválido conta como false.
func (s *Service) GetSystemBool(key string) bool {
	raw, err := s.GetSystem(key)
	if err != nil {
		return false
	}
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return false
	}
	return v
}

func (s *Service) SetSystem(key, value string) error {
	if !json.Valid([]byte(value)) {
		return errors.New("setting value must be valid JSON")
	}

	var setting models.SystemSetting
	err := s.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.db.Create(&models.SystemSetting{Key: key, Value: value}).Error
	}

	setting.Value = value
	return s.db.Save(&setting).Error
}

func (s *Service) ListSystem() ([]models.SystemSetting, error) {
	var out []models.SystemSetting
	if err := s.db.Order("key ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Value = Redact(out[i].Key, out[i].Value)
	}
	return out, nil
}

// --------------------------------------------------
// User settings
// --------------------------------------------------

func (s *Service) GetUser(userID uint, key string) (string, error) {
	var setting models.UserSetting
	if err := s.db.
		Where("user_id = ? AND key = ?", userID, key).
		First(&setting).Error; err != nil {
		return "", err
	}
	return setting.Value, nil
}

// GetUserString decodifica um valor string; ausente vira "".
func (s *Service) GetUserString(userID uint, key string) string {
	raw, err := s.GetUser(userID, key)
	if err != nil {
		return ""
	}
	var v string
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return ""
	}
	return v
}

func (s *Service) SetUser(userID uint, key, value string) error {
	if !json.Valid([]byte(value)) {
		return errors.New("setting value must be valid JSON")
	}

	var setting models.UserSetting
	err := s.db.
		Where("user_id = ? AND key = ?", userID, key).
		First(&setting).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.db.Create(&models.UserSetting{UserID: userID, Key: key, Value: value}).Error
	}

	setting.Value = value
	return s.db.Save(&setting).Error
}

func (s *Service) ListUser(userID uint) ([]models.UserSetting, error) {
	var out []models.UserSetting
	if err := s.db.
		Where("user_id = ?", userID).
		Order("key ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Value = Redact(out[i].Key, out[i].Value)
	}
	return out, nil
}
