package appointment

import (
	"context"

	"github.com/agendopro/agendopro-api/internal/models"
)

type Repository interface {
	// -------- Profile --------
	GetProfileByID(
		ctx context.Context,
		id uint,
	) (*models.Profile, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		userID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	// CreateIfSlotFree insere o agendamento com status pending dentro de
	// uma transação: trava as linhas pending/confirmed do mesmo
	// (user, date, time) e falha com slot_unavailable se houver alguma.
	CreateIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListBookedTimes(
		ctx context.Context,
		userID uint,
		date string,
	) ([]string, error)

	// -------- Appointment (state change) --------
	GetAppointmentForUser(
		ctx context.Context,
		appointmentID uint,
		userID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listagens --------
	ListAppointmentsByDate(
		ctx context.Context,
		userID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByMonth(
		ctx context.Context,
		userID uint,
		yearMonth string,
	) ([]models.Appointment, error)
}
