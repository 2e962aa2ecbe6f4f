package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/settings"
)

type SettingsHandler struct {
	settings *settings.Service
}

func NewSettingsHandler(s *settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: s}
}

type PutSettingRequest struct {
	// Value é sempre JSON já serializado ("true", "\"https://...\"").
	Value string `json:"value" binding:"required"`
}

// ======================================================
// USER SETTINGS
// ======================================================

func (h *SettingsHandler) ListUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.settings.ListUser(userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Erro ao listar configurações.")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) GetUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	key := c.Param("key")

	value, err := h.settings.GetUser(userID, key)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "setting_not_found", "Configuração não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_setting", "Erro ao buscar configuração.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

func (h *SettingsHandler) PutUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	key := c.Param("key")

	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.settings.SetUser(userID, key, req.Value); err != nil {
		httperr.BadRequest(c, "invalid_setting_value", "Valor deve ser JSON válido.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// SYSTEM SETTINGS (admin)
// ======================================================

func (h *SettingsHandler) ListSystem(c *gin.Context) {
	out, err := h.settings.ListSystem()
	if err != nil {
		httperr.Internal(c, "failed_to_list_settings", "Erro ao listar configurações.")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) PutSystem(c *gin.Context) {
	key := c.Param("key")

	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.settings.SetSystem(key, req.Value); err != nil {
		httperr.BadRequest(c, "invalid_setting_value", "Valor deve ser JSON válido.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
