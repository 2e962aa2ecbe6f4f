package payment

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/models"
)

// ======================================================
// FAKE STORE
// ======================================================

type fakeStore struct {
	profiles map[string]*models.Profile
	events   map[string]*models.PaymentEvent

	profileSaves int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: map[string]*models.Profile{},
		events:   map[string]*models.PaymentEvent{},
	}
}

func (s *fakeStore) FindEvent(transactionID string) (*models.PaymentEvent, error) {
	if ev, ok := s.events[transactionID]; ok {
		return ev, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) FindProfileByEmail(email string) (*models.Profile, error) {
	if p, ok := s.profiles[email]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) SaveProfile(p *models.Profile) error {
	s.profileSaves++
	return nil
}

func (s *fakeStore) RecordEvent(ev *models.PaymentEvent) error {
	if _, ok := s.events[ev.TransactionID]; ok {
		return gorm.ErrDuplicatedKey
	}
	s.events[ev.TransactionID] = ev
	return nil
}

var _ Store = (*fakeStore)(nil)

// ======================================================
// HELPERS
// ======================================================

func newWebhookRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &Handler{
		store: store,
		audit: audit.NewDispatcher(audit.New(nil)),
	}

	r := gin.New()
	r.POST("/webhooks/payment", h.Handle)
	return r
}

func postPayment(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(
		http.MethodPost, "/webhooks/payment", strings.NewReader(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ======================================================
// TESTS
// ======================================================

// Entrega duplicada do provedor: o mesmo transaction_id chega duas vezes,
// o plano é aplicado uma vez só e a segunda resposta repete o resultado.
func TestWebhookReplaysDuplicateTransaction(t *testing.T) {
	store := newFakeStore()
	store.profiles["dra@clinica.com"] = &models.Profile{
		ID:    7,
		Email: "dra@clinica.com",
		Plan:  "free",
	}

	r := newWebhookRouter(store)

	body := `{
		"event_type": "sale_approved",
		"customer_email": "dra@clinica.com",
		"product_id": "agendopro-profissional-mensal",
		"transaction_id": "tx-123",
		"amount": 99.9
	}`

	first := postPayment(t, r, body)
	if first.Code != http.StatusOK {
		t.Fatalf("primeira entrega: status %d, body %s", first.Code, first.Body)
	}
	if !strings.Contains(first.Body.String(), `"plan":"profissional"`) {
		t.Fatalf("primeira entrega deveria aplicar profissional: %s", first.Body)
	}

	if store.profileSaves != 1 {
		t.Fatalf("perfil salvo %d vezes, esperava 1", store.profileSaves)
	}
	if store.profiles["dra@clinica.com"].Plan != "profissional" {
		t.Fatalf("plano do perfil = %q", store.profiles["dra@clinica.com"].Plan)
	}

	second := postPayment(t, r, body)
	if second.Code != http.StatusOK {
		t.Fatalf("replay: status %d, body %s", second.Code, second.Body)
	}
	if !strings.Contains(second.Body.String(), `"plan":"profissional"`) {
		t.Fatalf("replay deveria repetir o plano aplicado: %s", second.Body)
	}
	if !strings.Contains(second.Body.String(), `"user_email":"dra@clinica.com"`) {
		t.Fatalf("replay deveria repetir o e-mail: %s", second.Body)
	}

	// O replay não reprocessa: nenhum save extra.
	if store.profileSaves != 1 {
		t.Fatalf("replay reprocessou o perfil: %d saves", store.profileSaves)
	}
	if len(store.events) != 1 {
		t.Fatalf("esperava 1 evento registrado, tem %d", len(store.events))
	}
}

// Eventos que não são de venda aprovada são reconhecidos e ignorados.
func TestWebhookIgnoresOtherEvents(t *testing.T) {
	store := newFakeStore()
	r := newWebhookRouter(store)

	w := postPayment(t, r, `{
		"event_type": "sale_refunded",
		"customer_email": "dra@clinica.com",
		"product_id": "agendopro-basico-mensal",
		"transaction_id": "tx-999"
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "event_ignored") {
		t.Fatalf("esperava event_ignored: %s", w.Body)
	}
	if store.profileSaves != 0 || len(store.events) != 0 {
		t.Fatal("evento ignorado não pode tocar na persistência")
	}
}
