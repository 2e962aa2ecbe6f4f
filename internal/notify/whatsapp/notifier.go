package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/agendopro/agendopro-api/internal/models"
	"github.com/agendopro/agendopro-api/internal/settings"
)

// Flags que controlam o envio:
//   - system:  whatsapp_notifications_enabled (bool)
//   - usuário: whatsapp_webhook_url (string)
const (
	SettingEnabled    = "whatsapp_notifications_enabled"
	SettingWebhookURL = "whatsapp_webhook_url"
)

type Payload struct {
	AppointmentID   uint   `json:"appointmentId"`
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	ServiceName     string `json:"serviceName,omitempty"`
	Message         string `json:"message"`
}

// Flags é o recorte de settings que o notifier consulta.
type Flags interface {
	GetSystemBool(key string) bool
	GetUserString(userID uint, key string) string
}

var _ Flags = (*settings.Service)(nil)

// Notifier encaminha uma mensagem formatada para o webhook configurado
// pelo usuário. Sem confirmação de entrega, sem retry.
type Notifier struct {
	settings Flags
	client   *http.Client
}

func NewNotifier(s Flags) *Notifier {
	return &Notifier{
		settings: s,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send monta o payload e faz um único POST. Retorna erro apenas para o
// caller decidir o status HTTP; nada é re-enviado.
func (n *Notifier) Send(ctx context.Context, userID uint, p Payload) (bool, string, error) {
	if !n.settings.GetSystemBool(SettingEnabled) {
		return false, "notificações desativadas", nil
	}

	url := n.settings.GetUserString(userID, SettingWebhookURL)
	if url == "" {
		return false, "webhook não configurado", nil
	}

	p.Message = FormatMessage(p)

	body, err := json.Marshal(p)
	if err != nil {
		return false, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return false, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, "", fmt.Errorf("whatsapp webhook: %s: %s", resp.Status, string(slurp))
	}

	return true, "notificação enviada", nil
}

// FormatMessage gera o template fixo em português.
func FormatMessage(p Payload) string {
	msg := fmt.Sprintf(
		"Olá! Novo agendamento confirmado para %s no dia %s às %s.",
		p.ClientName, p.AppointmentDate, p.AppointmentTime,
	)
	if p.ServiceName != "" {
		msg += fmt.Sprintf(" Serviço: %s.", p.ServiceName)
	}
	return msg
}

// NotifyBooked implementa a interface do usecase de booking: dispara em
// background e apenas loga falha (best effort).
func (n *Notifier) NotifyBooked(_ context.Context, ap *models.Appointment, serviceName string) {
	payload := Payload{
		AppointmentID:   ap.ID,
		ClientName:      ap.ClientName,
		ClientPhone:     ap.ClientPhone,
		AppointmentDate: ap.Date,
		AppointmentTime: ap.Time,
		ServiceName:     serviceName,
	}

	userID := ap.UserID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, _, err := n.Send(ctx, userID, payload); err != nil {
			log.Println("whatsapp notify error:", err)
		}
	}()
}
