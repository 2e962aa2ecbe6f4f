package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/domain/plan"
	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/httpresp"
	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type SuperAdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSuperAdminHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SuperAdminHandler {
	return &SuperAdminHandler{db: db, audit: dispatcher}
}

// ======================================================
// ESTATÍSTICAS DO SISTEMA
// ======================================================

func (h *SuperAdminHandler) Statistics(c *gin.Context) {
	var totalUsers int64
	h.db.Model(&models.Profile{}).Count(&totalUsers)

	var activeUsers int64
	h.db.Model(&models.Profile{}).Where("active = ?", true).Count(&activeUsers)

	usersByPlan := map[string]int64{}
	rows, err := h.db.Model(&models.Profile{}).
		Select("plan, COUNT(*) as count").
		Group("plan").
		Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var p string
			var count int64
			if err := rows.Scan(&p, &count); err == nil {
				usersByPlan[p] = count
			}
		}
	}

	var totalAppointments int64
	h.db.Model(&models.Appointment{}).Count(&totalAppointments)

	var failedLogins24h int64
	h.db.Model(&models.AuthAttempt{}).
		Where("success = ? AND created_at >= ?", false, time.Now().Add(-24*time.Hour)).
		Count(&failedLogins24h)

	c.JSON(http.StatusOK, gin.H{
		"total_users":        totalUsers,
		"active_users":       activeUsers,
		"users_by_plan":      usersByPlan,
		"total_appointments": totalAppointments,
		"failed_logins_24h":  failedLogins24h,
	})
}

// ======================================================
// USUÁRIOS
// ======================================================

func (h *SuperAdminHandler) ListUsers(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.Model(&models.Profile{})

	if planFilter := c.Query("plan"); planFilter != "" {
		q = q.Where("plan = ?", planFilter)
	}
	if query := c.Query("query"); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
	}

	var total int64
	q.Count(&total)

	var profiles []models.Profile
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&profiles).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	httpresp.Paged(c, profiles, page, limit, total)
}

type SetPlanRequest struct {
	Plan      string `json:"plan" binding:"required"`
	ExpiresAt string `json:"expires_at"`
}

func (h *SuperAdminHandler) SetPlan(c *gin.Context) {
	profile, ok := h.loadTarget(c)
	if !ok {
		return
	}

	var req SetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !plan.IsValid(plan.Plan(req.Plan)) {
		httperr.BadRequest(c, "invalid_plan", "Plano inválido.")
		return
	}

	profile.Plan = req.Plan
	profile.PlanExpiresAt = nil
	if req.ExpiresAt != "" {
		expires, err := time.Parse("2006-01-02", req.ExpiresAt)
		if err != nil {
			httperr.BadRequest(c, "invalid_expiration", "Data de expiração inválida.")
			return
		}
		profile.PlanExpiresAt = &expires
	}

	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_plan", "Erro ao atualizar plano.")
		return
	}

	h.dispatchAudit(c, profile, "plan_changed", map[string]any{"plan": req.Plan})

	c.JSON(http.StatusOK, profile)
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *SuperAdminHandler) SetActive(c *gin.Context) {
	profile, ok := h.loadTarget(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	profile.Active = *req.Active
	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	action := "user_deactivated"
	if profile.Active {
		action = "user_activated"
	}
	h.dispatchAudit(c, profile, action, nil)

	c.JSON(http.StatusOK, profile)
}

// ResetPassword gera uma senha temporária e devolve uma única vez.
func (h *SuperAdminHandler) ResetPassword(c *gin.Context) {
	profile, ok := h.loadTarget(c)
	if !ok {
		return
	}

	raw := make([]byte, 9)
	if _, err := rand.Read(raw); err != nil {
		httperr.Internal(c, "failed_to_reset_password", "Erro ao gerar senha.")
		return
	}
	generated := base64.RawURLEncoding.EncodeToString(raw)

	hashed, err := bcrypt.GenerateFromPassword([]byte(generated), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_reset_password", "Erro ao gerar senha.")
		return
	}

	profile.PasswordHash = string(hashed)
	if err := h.db.Save(profile).Error; err != nil {
		httperr.Internal(c, "failed_to_reset_password", "Erro ao salvar senha.")
		return
	}

	h.dispatchAudit(c, profile, "password_reset_by_admin", nil)

	c.JSON(http.StatusOK, gin.H{
		"user_id":            profile.ID,
		"temporary_password": generated,
	})
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (h *SuperAdminHandler) loadTarget(c *gin.Context) (*models.Profile, bool) {
	id := c.Param("id")

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar usuário.")
		return nil, false
	}

	return &profile, true
}

func (h *SuperAdminHandler) dispatchAudit(
	c *gin.Context,
	target *models.Profile,
	action string,
	meta map[string]any,
) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	h.audit.Dispatch(audit.Event{
		UserID:   target.ID,
		ActorID:  &actorID,
		Action:   action,
		Entity:   "profile",
		EntityID: &target.ID,
		Metadata: meta,
	})
}
