package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/models"
)

type CalendarHandler struct {
	db *gorm.DB
}

func NewCalendarHandler(db *gorm.DB) *CalendarHandler {
	return &CalendarHandler{db: db}
}

// --------- Requests ---------

type CreateCalendarRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCalendarRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type CalendarPermissionEntry struct {
	UserID     uint   `json:"user_id" binding:"required"`
	Permission string `json:"permission" binding:"required,oneof=view edit manage"`
}

type PutCalendarPermissionsRequest struct {
	Permissions []CalendarPermissionEntry `json:"permissions" binding:"required"`
}

// --------- Handlers ---------

func (h *CalendarHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var calendars []models.CalendarSchedule
	if err := h.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&calendars).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_calendars"})
		return
	}

	c.JSON(http.StatusOK, calendars)
}

func (h *CalendarHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	calendar := models.CalendarSchedule{
		UserID: userID,
		Name:   req.Name,
		Active: true,
	}

	if err := h.db.Create(&calendar).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_calendar"})
		return
	}

	c.JSON(http.StatusCreated, calendar)
}

func (h *CalendarHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var calendar models.CalendarSchedule
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&calendar).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "calendar_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_calendar"})
		return
	}

	var req UpdateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		calendar.Name = *req.Name
	}
	if req.Active != nil {
		calendar.Active = *req.Active
	}

	if err := h.db.Save(&calendar).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_calendar"})
		return
	}

	c.JSON(http.StatusOK, calendar)
}

// PutPermissions substitui as permissões do calendário de uma vez,
// no mesmo espírito do update de grade de horários.
func (h *CalendarHandler) PutPermissions(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var calendar models.CalendarSchedule
	if err := h.db.
		Where("id = ? AND user_id = ?", id, userID).
		First(&calendar).Error; err != nil {
		httperr.NotFound(c, "calendar_not_found", "Calendário não encontrado.")
		return
	}

	var req PutCalendarPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("calendar_id = ?", calendar.ID).
			Delete(&models.CalendarPermission{}).Error; err != nil {
			return err
		}

		var toCreate []models.CalendarPermission
		for _, p := range req.Permissions {
			toCreate = append(toCreate, models.CalendarPermission{
				CalendarID: calendar.ID,
				UserID:     p.UserID,
				Permission: p.Permission,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_permissions", "Erro ao salvar permissões.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Permissions lista as permissões concedidas ao usuário autenticado
// em calendários de terceiros.
func (h *CalendarHandler) Permissions(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var permissions []models.CalendarPermission
	if err := h.db.
		Where("user_id = ?", userID).
		Find(&permissions).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_permissions"})
		return
	}

	c.JSON(http.StatusOK, permissions)
}
