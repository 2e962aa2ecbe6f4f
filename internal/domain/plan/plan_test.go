package plan

import "testing"

func TestBadgeFor(t *testing.T) {
	cases := []struct {
		name  string
		count int
		limit int
		want  Badge
	}{
		{"abaixo do limiar", 1, 3, BadgeNone},
		{"near em 80%", 2, 3, BadgeNearLimit},
		{"at no limite exato", 3, 3, BadgeAtLimit},
		{"at acima do limite", 4, 3, BadgeAtLimit},
		{"ilimitado nunca gera badge", 1000, Unlimited, BadgeNone},
		{"zero de zero", 0, 0, BadgeAtLimit},
		{"near com limite 10", 8, 10, BadgeNearLimit},
		{"none com limite 10", 7, 10, BadgeNone},
		{"conta vazia não badgea", 0, 1, BadgeNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := BadgeFor(c.count, c.limit); got != c.want {
				t.Errorf("BadgeFor(%d, %d) = %q, want %q", c.count, c.limit, got, c.want)
			}
		})
	}
}

func TestLimitsFor(t *testing.T) {
	if l := LimitsFor(PlanBasico); l.Users != 3 || l.Calendars != 2 {
		t.Errorf("basico: got %+v", l)
	}
	if l := LimitsFor(PlanPremium); l.Users != Unlimited {
		t.Errorf("premium deve ser ilimitado, got %+v", l)
	}
	// Plano desconhecido cai no free.
	if l := LimitsFor(Plan("enterprise")); l.Users != 1 {
		t.Errorf("plano desconhecido deve cair no free, got %+v", l)
	}
}

func TestIsValid(t *testing.T) {
	for _, p := range []Plan{PlanFree, PlanBasico, PlanProfissional, PlanPremium} {
		if !IsValid(p) {
			t.Errorf("%s deveria ser válido", p)
		}
	}
	if IsValid(Plan("gold")) {
		t.Error("gold não é um plano válido")
	}
}
