package appointment

import (
	"context"
	"time"

	"github.com/agendopro/agendopro-api/internal/audit"
	domain "github.com/agendopro/agendopro-api/internal/domain/appointment"
	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/models"
	"github.com/agendopro/agendopro-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// Notifier dispara o aviso de novo agendamento (best effort, sem retry).
type Notifier interface {
	NotifyBooked(ctx context.Context, ap *models.Appointment, serviceName string)
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
) *BookAppointment {
	return &BookAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	profile, err := uc.repo.GetProfileByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Data / hora no timezone da clínica
	// --------------------------------------------------
	date, err := timezone.ParseDate(profile, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.IsCandidateSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	now := timezone.NowForProfile(profile)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.UserID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	// --------------------------------------------------
	// Inserção com guarda de conflito (transação + lock)
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:      in.UserID,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ClientEmail: in.ClientEmail,
		ServiceID:   service.ID,
		Date:        in.Date,
		Time:        in.Time,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Auditoria + notificação
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		ActorID:  &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if uc.notifier != nil {
		uc.notifier.NotifyBooked(ctx, ap, service.Name)
	}

	return ap, nil
}
