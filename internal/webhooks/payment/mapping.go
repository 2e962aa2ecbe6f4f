package payment

import (
	"strings"

	"github.com/agendopro/agendopro-api/internal/domain/plan"
)

// Mapeamento estático produto → plano. IDs vêm do checkout do provedor;
// o fallback por nome cobre payloads que só trazem product_name.
var planByProductID = map[string]plan.Plan{
	"agendopro-basico-mensal":       plan.PlanBasico,
	"agendopro-profissional-mensal": plan.PlanProfissional,
	"agendopro-premium-mensal":      plan.PlanPremium,
}

// PlanForProduct resolve o plano a partir do id ou do nome do produto.
func PlanForProduct(productID, productName string) (plan.Plan, bool) {
	if p, ok := planByProductID[strings.TrimSpace(productID)]; ok {
		return p, true
	}

	name := strings.ToLower(productName)
	switch {
	case strings.Contains(name, "premium"):
		return plan.PlanPremium, true
	case strings.Contains(name, "profissional"):
		return plan.PlanProfissional, true
	case strings.Contains(name, "basico"), strings.Contains(name, "básico"):
		return plan.PlanBasico, true
	}

	return "", false
}

// IsApprovedEvent filtra os únicos eventos que alteram plano.
func IsApprovedEvent(eventType string) bool {
	switch eventType {
	case "sale_approved", "sale_confirmed":
		return true
	}
	return false
}
