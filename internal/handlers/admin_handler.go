package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/models"
	"github.com/agendopro/agendopro-api/internal/timezone"
)

// Estatísticas da conta (admin da clínica).

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) Statistics(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	today := timezone.Now().Format("2006-01-02")

	var totalAppointments int64
	h.db.Model(&models.Appointment{}).
		Where("user_id = ?", userID).
		Count(&totalAppointments)

	var appointmentsToday int64
	h.db.Model(&models.Appointment{}).
		Where("user_id = ? AND date = ?", userID, today).
		Count(&appointmentsToday)

	byStatus := map[string]int64{}
	rows, err := h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var status string
			var count int64
			if err := rows.Scan(&status, &count); err == nil {
				byStatus[status] = count
			}
		}
	}

	// Tamanho da equipe: perfis da mesma clínica.
	var teamUsers int64
	var me models.Profile
	if err := h.db.First(&me, userID).Error; err == nil && me.ClinicName != "" {
		h.db.Model(&models.Profile{}).
			Where("clinic_name = ?", me.ClinicName).
			Count(&teamUsers)
	} else {
		teamUsers = 1
	}

	var activeServices int64
	h.db.Model(&models.Service{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&activeServices)

	var upcoming int64
	h.db.Model(&models.Appointment{}).
		Where(
			"user_id = ? AND date >= ? AND status IN ('pending', 'confirmed')",
			userID, today,
		).
		Count(&upcoming)

	c.JSON(http.StatusOK, gin.H{
		"generated_at":       time.Now(),
		"total_users":        teamUsers,
		"total_appointments": totalAppointments,
		"appointments_today": appointmentsToday,
		"by_status":          byStatus,
		"active_services":    activeServices,
		"upcoming":           upcoming,
	})
}
