package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fakeFlags struct {
	enabled bool
	url     string
}

func (f *fakeFlags) GetSystemBool(string) bool         { return f.enabled }
func (f *fakeFlags) GetUserString(uint, string) string { return f.url }

func TestSend_Disabled_NoCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewNotifier(&fakeFlags{enabled: false, url: srv.URL})
	ok, msg, err := n.Send(context.Background(), 1, Payload{ClientName: "João"})
	if err != nil {
		t.Fatalf("desativado não é erro: %v", err)
	}
	if ok || called {
		t.Error("com flag desativado nada deve ser enviado")
	}
	if msg == "" {
		t.Error("deve explicar por que não enviou")
	}
}

func TestSend_NoWebhookURL_NoCall(t *testing.T) {
	n := NewNotifier(&fakeFlags{enabled: true, url: ""})
	ok, _, err := n.Send(context.Background(), 1, Payload{ClientName: "João"})
	if err != nil || ok {
		t.Errorf("sem URL configurada deve ser no-op, got ok=%v err=%v", ok, err)
	}
}

func TestSend_PostsFormattedMessage(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("método deve ser POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type deve ser application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("payload inválido: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(&fakeFlags{enabled: true, url: srv.URL})
	ok, _, err := n.Send(context.Background(), 1, Payload{
		AppointmentID:   42,
		ClientName:      "Maria Souza",
		ClientPhone:     "+5511988887777",
		AppointmentDate: "2030-05-10",
		AppointmentTime: "10:00",
		ServiceName:     "Consulta",
	})
	if err != nil {
		t.Fatalf("Send falhou: %v", err)
	}
	if !ok {
		t.Fatal("envio deveria ter sucesso")
	}

	if got.AppointmentID != 42 {
		t.Errorf("appointmentId = %d, want 42", got.AppointmentID)
	}
	if !strings.Contains(got.Message, "Maria Souza") ||
		!strings.Contains(got.Message, "2030-05-10") ||
		!strings.Contains(got.Message, "10:00") ||
		!strings.Contains(got.Message, "Consulta") {
		t.Errorf("mensagem formatada incompleta: %q", got.Message)
	}
}

func TestSend_WebhookError_ReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewNotifier(&fakeFlags{enabled: true, url: srv.URL})
	ok, _, err := n.Send(context.Background(), 1, Payload{ClientName: "João"})
	if err == nil || ok {
		t.Error("status 500 do webhook deve virar erro")
	}
}

func TestFormatMessage_WithoutService(t *testing.T) {
	msg := FormatMessage(Payload{
		ClientName:      "João",
		AppointmentDate: "2030-05-10",
		AppointmentTime: "09:30",
	})
	if strings.Contains(msg, "Serviço") {
		t.Errorf("sem serviço a mensagem não deve citar serviço: %q", msg)
	}
}
