package db

import (
	"log"
	"time"

	"github.com/agendopro/agendopro-api/internal/config"
	"github.com/agendopro/agendopro-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Service{},
		&models.Appointment{},
		&models.MedicalRecord{},
		&models.MedicalRecordFile{},
		&models.SystemSetting{},
		&models.UserSetting{},
		&models.CalendarSchedule{},
		&models.CalendarPermission{},
		&models.AuditLog{},
		&models.AuthAttempt{},
		&models.UserSession{},
		&models.PaymentEvent{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Backstop do double-booking: no máximo um agendamento não cancelado
	// por (user, date, time). A usecase trata a violação como slot_unavailable.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_user_slot
        ON appointments (user_id, date, time)
        WHERE status IN ('pending', 'confirmed')
    `)

	db.Exec(`
        UPDATE profiles
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// Flags de sistema precisam existir para o painel admin listar.
	db.Exec(`
        INSERT INTO system_settings (key, value, created_at, updated_at)
        VALUES ('whatsapp_notifications_enabled', 'false', NOW(), NOW())
        ON CONFLICT (key) DO NOTHING
    `)

	return db
}
