package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/domain/plan"
	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/models"
)

type PlanHandler struct {
	db *gorm.DB
}

func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

// GetMyPlan devolve plano, limites, uso atual e badges. Informativo:
// nenhum caminho de escrita bloqueia por limite.
func (h *PlanHandler) GetMyPlan(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var profile models.Profile
	if err := h.db.First(&profile, userID).Error; err != nil {
		httperr.Internal(c, "profile_not_found", "Perfil não encontrado.")
		return
	}

	p := plan.Plan(profile.Plan)
	limits := plan.LimitsFor(p)

	var userCount int64
	h.db.Model(&models.Profile{}).
		Where("clinic_name = ? AND clinic_name <> ''", profile.ClinicName).
		Count(&userCount)
	if userCount == 0 {
		userCount = 1
	}

	var calendarCount int64
	h.db.Model(&models.CalendarSchedule{}).
		Where("user_id = ? AND active = ?", userID, true).
		Count(&calendarCount)

	c.JSON(http.StatusOK, gin.H{
		"plan":            profile.Plan,
		"plan_expires_at": profile.PlanExpiresAt,
		"limits":          limits,
		"usage": gin.H{
			"users": gin.H{
				"count": userCount,
				"badge": plan.BadgeFor(int(userCount), limits.Users),
			},
			"calendars": gin.H{
				"count": calendarCount,
				"badge": plan.BadgeFor(int(calendarCount), limits.Calendars),
			},
		},
	})
}
