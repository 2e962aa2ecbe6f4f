package appointment

import (
	"context"

	"github.com/agendopro/agendopro-api/internal/audit"
	domain "github.com/agendopro/agendopro-api/internal/domain/appointment"
	"github.com/agendopro/agendopro-api/internal/httperr"
	"github.com/agendopro/agendopro-api/internal/models"
	"github.com/agendopro/agendopro-api/internal/timezone"
)

// ======================================================
// CONFIRM / CANCEL / COMPLETE
// ======================================================

type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TransitionAppointment) Confirm(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.load(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanConfirm(domain.Status(ap.Status)); err != nil {
		return nil, err
	}
	ap.Status = string(domain.StatusConfirmed)

	return uc.save(ctx, userID, ap, "appointment_confirmed")
}

func (uc *TransitionAppointment) Cancel(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.load(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := timezone.NowForProfile(profile)

	ap.Status = string(domain.StatusCancelled)
	ap.CancelledAt = &now

	return uc.save(ctx, userID, ap, "appointment_cancelled")
}

func (uc *TransitionAppointment) Complete(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.load(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetProfileByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := timezone.NowForProfile(profile)

	ap.Status = string(domain.StatusCompleted)
	ap.CompletedAt = &now

	return uc.save(ctx, userID, ap, "appointment_completed")
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (uc *TransitionAppointment) load(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (uc *TransitionAppointment) save(
	ctx context.Context,
	userID uint,
	ap *models.Appointment,
	action string,
) (*models.Appointment, error) {

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		ActorID:  &userID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
