package payment

import (
	"testing"

	"github.com/agendopro/agendopro-api/internal/domain/plan"
)

func TestPlanForProduct_ByID(t *testing.T) {
	p, ok := PlanForProduct("agendopro-basico-mensal", "")
	if !ok || p != plan.PlanBasico {
		t.Errorf("id básico deve mapear para basico, got %q ok=%v", p, ok)
	}

	p, ok = PlanForProduct("agendopro-premium-mensal", "")
	if !ok || p != plan.PlanPremium {
		t.Errorf("id premium deve mapear para premium, got %q ok=%v", p, ok)
	}
}

func TestPlanForProduct_ByNameFallback(t *testing.T) {
	cases := []struct {
		name string
		want plan.Plan
	}{
		{"AgendoPro Premium Anual", plan.PlanPremium},
		{"Plano Profissional", plan.PlanProfissional},
		{"Plano Básico mensal", plan.PlanBasico},
		{"plano basico", plan.PlanBasico},
	}
	for _, c := range cases {
		p, ok := PlanForProduct("produto-desconhecido", c.name)
		if !ok || p != c.want {
			t.Errorf("PlanForProduct(_, %q) = %q ok=%v, want %q", c.name, p, ok, c.want)
		}
	}
}

func TestPlanForProduct_Unknown(t *testing.T) {
	if _, ok := PlanForProduct("xyz", "Curso de Violão"); ok {
		t.Error("produto sem relação com planos não deve mapear")
	}
}

func TestIsApprovedEvent(t *testing.T) {
	for _, ev := range []string{"sale_approved", "sale_confirmed"} {
		if !IsApprovedEvent(ev) {
			t.Errorf("%s deve ser tratado", ev)
		}
	}
	for _, ev := range []string{"sale_refunded", "chargeback", "pix_generated", ""} {
		if IsApprovedEvent(ev) {
			t.Errorf("%s deve ser ignorado", ev)
		}
	}
}
