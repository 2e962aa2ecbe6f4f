package plan

// ===============================
// Planos
// ===============================

type Plan string

const (
	PlanFree         Plan = "free"
	PlanBasico       Plan = "basico"
	PlanProfissional Plan = "profissional"
	PlanPremium      Plan = "premium"
)

// Unlimited marca um limite sem teto.
const Unlimited = -1

type Limits struct {
	Users     int `json:"users"`
	Calendars int `json:"calendars"`
}

var limitsByPlan = map[Plan]Limits{
	PlanFree:         {Users: 1, Calendars: 1},
	PlanBasico:       {Users: 3, Calendars: 2},
	PlanProfissional: {Users: 10, Calendars: 5},
	PlanPremium:      {Users: Unlimited, Calendars: Unlimited},
}

func IsValid(p Plan) bool {
	_, ok := limitsByPlan[p]
	return ok
}

// LimitsFor devolve os limites do plano; plano desconhecido cai no free.
func LimitsFor(p Plan) Limits {
	if l, ok := limitsByPlan[p]; ok {
		return l
	}
	return limitsByPlan[PlanFree]
}

// ===============================
// Badges de uso
// ===============================

type Badge string

const (
	BadgeNone      Badge = ""
	BadgeNearLimit Badge = "near_limit"
	BadgeAtLimit   Badge = "at_limit"
)

// BadgeFor: at_limit quando count >= limit, near_limit a partir de 80%
// do limite (arredondado para baixo: limite 3 → near com 2). Limite
// ilimitado nunca gera badge.
func BadgeFor(count, limit int) Badge {
	if limit == Unlimited {
		return BadgeNone
	}
	if count >= limit {
		return BadgeAtLimit
	}
	if count > 0 && count >= limit*4/5 {
		return BadgeNearLimit
	}
	return BadgeNone
}
