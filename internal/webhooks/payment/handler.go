package payment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type Handler struct {
	store    Store
	audit    *audit.Dispatcher
	resolver *Resolver
}

func NewHandler(db *gorm.DB, dispatcher *audit.Dispatcher, resolver *Resolver) *Handler {
	return &Handler{
		store:    &gormStore{db: db},
		audit:    dispatcher,
		resolver: resolver,
	}
}

// ======================================================
// REQUEST
// ======================================================

type webhookRequest struct {
	EventType     string `json:"event_type"`
	CustomerEmail string `json:"customer_email"`
	Customer      struct {
		Email string `json:"email"`
	} `json:"Customer"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`

	// Formato de notificação do Mercado Pago (type + data.id).
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (r *webhookRequest) email() string {
	if r.CustomerEmail != "" {
		return r.CustomerEmail
	}
	return r.Customer.Email
}

// ======================================================
// HANDLE
// ======================================================

func (h *Handler) Handle(c *gin.Context) {
	var req webhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Payload inválido.")
		return
	}

	// Notificação crua do provedor: resolve o pagamento antes de mapear.
	if req.TransactionID == "" && req.Data.ID != "" && h.resolver != nil {
		resolved, err := h.resolver.Resolve(c.Request.Context(), req.Data.ID)
		if err != nil {
			httperr.BadRequest(c, "payment_not_found", "Pagamento não encontrado no provedor.")
			return
		}
		if !resolved.Approved {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "payment_not_approved"})
			return
		}
		req.EventType = "sale_approved"
		req.TransactionID = resolved.TransactionID
		req.CustomerEmail = resolved.CustomerEmail
		req.ProductName = resolved.ProductName
		req.Amount = resolved.Amount
	}

	if !IsApprovedEvent(req.EventType) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "event_ignored"})
		return
	}

	email := req.email()
	if email == "" {
		httperr.BadRequest(c, "missing_email", "E-mail do cliente ausente.")
		return
	}

	mapped, ok := PlanForProduct(req.ProductID, req.ProductName)
	if !ok {
		httperr.BadRequest(c, "unknown_product", "Produto não reconhecido.")
		return
	}

	// Entrega repetida: devolve o resultado já aplicado, sem reprocessar.
	if req.TransactionID != "" {
		prev, err := h.store.FindEvent(req.TransactionID)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"plan":       prev.PlanApplied,
				"user_email": prev.CustomerEmail,
			})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Internal(c, "webhook_failed", "Erro ao processar webhook.")
			return
		}
	}

	profile, err := h.store.FindProfileByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "profile_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "webhook_failed", "Erro ao processar webhook.")
		return
	}

	expires := time.Now().AddDate(0, 0, 30)
	profile.Plan = string(mapped)
	profile.PlanExpiresAt = &expires

	if err := h.store.SaveProfile(profile); err != nil {
		httperr.Internal(c, "plan_update_failed", "Erro ao atualizar plano.")
		return
	}

	if req.TransactionID != "" {
		event := models.PaymentEvent{
			TransactionID: req.TransactionID,
			EventType:     req.EventType,
			CustomerEmail: email,
			ProductRef:    req.ProductID + req.ProductName,
			PlanApplied:   string(mapped),
			Amount:        req.Amount,
		}
		if err := h.store.RecordEvent(&event); err != nil {
			// Corrida entre entregas duplicadas: o plano já foi aplicado.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				httperr.Internal(c, "webhook_failed", "Erro ao registrar evento.")
				return
			}
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   profile.ID,
		Action:   "plan_upgraded",
		Entity:   "profile",
		EntityID: &profile.ID,
		Metadata: map[string]any{
			"plan":           mapped,
			"transaction_id": req.TransactionID,
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"plan":       mapped,
		"user_email": email,
	})
}
