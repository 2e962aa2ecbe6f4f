package plancron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/domain/plan"
	"github.com/agendopro/agendopro-api/internal/models"
)

// Sweeper rebaixa para o plano free os usuários com plano pago expirado.
// Roda uma vez por dia; o horário fica fora do pico (03:00).
type Sweeper struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cron  *cron.Cron
}

func NewSweeper(db *gorm.DB, dispatcher *audit.Dispatcher) *Sweeper {
	return &Sweeper{
		db:    db,
		audit: dispatcher,
		cron:  cron.New(),
	}
}

func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc("0 3 * * *", s.Run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Run executa um ciclo da varredura. Exposto para disparo manual.
func (s *Sweeper) Run() {
	var expired []models.Profile
	if err := s.db.
		Where("plan <> ?", string(plan.PlanFree)).
		Where("plan_expires_at IS NOT NULL AND plan_expires_at < ?", time.Now()).
		Find(&expired).Error; err != nil {

		log.Println("plan sweep query error:", err)
		return
	}

	for i := range expired {
		p := &expired[i]
		previous := p.Plan

		p.Plan = string(plan.PlanFree)
		p.PlanExpiresAt = nil

		if err := s.db.Save(p).Error; err != nil {
			log.Println("plan sweep save error:", err)
			continue
		}

		s.audit.Dispatch(audit.Event{
			UserID:   p.ID,
			Action:   "plan_expired",
			Entity:   "profile",
			EntityID: &p.ID,
			Metadata: map[string]any{"previous_plan": previous},
		})
	}

	if len(expired) > 0 {
		log.Printf("plan sweep: %d usuário(s) rebaixado(s) para free", len(expired))
	}
}
