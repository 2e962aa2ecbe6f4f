package appointment

import (
	"context"
	"fmt"

	domain "github.com/agendopro/agendopro-api/internal/domain/appointment"
	"github.com/agendopro/agendopro-api/internal/dto"
	"github.com/agendopro/agendopro-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ByDate(
	ctx context.Context,
	userID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return toListDTO(appointments), nil
}

func (uc *ListAppointments) ByMonth(
	ctx context.Context,
	userID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	yearMonth := fmt.Sprintf("%04d-%02d", year, month)

	appointments, err := uc.repo.ListAppointmentsByMonth(ctx, userID, yearMonth)
	if err != nil {
		return nil, err
	}
	return toListDTO(appointments), nil
}

func toListDTO(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			ClientName:  ap.ClientName,
			ServiceName: ap.Service.Name,
		})
	}
	return out
}
