package whatsapp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/middleware"
)

// Handler expõe o envio manual de notificação (POST /webhooks/whatsapp-notify).
type Handler struct {
	notifier *Notifier
}

func NewHandler(notifier *Notifier) *Handler {
	return &Handler{notifier: notifier}
}

type NotifyRequest struct {
	AppointmentID   uint   `json:"appointmentId"`
	ClientName      string `json:"clientName" binding:"required"`
	ClientPhone     string `json:"clientPhone" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`
	ServiceName     string `json:"serviceName"`
}

func (h *Handler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos para notificação.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	sent, detail, err := h.notifier.Send(c.Request.Context(), userID, Payload{
		AppointmentID:   req.AppointmentID,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceName:     req.ServiceName,
	})
	if err != nil {
		httperr.Write(c, http.StatusBadGateway, "notification_failed", "Falha ao enviar notificação.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": sent,
		"message": detail,
	})
}
