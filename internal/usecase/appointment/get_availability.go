package appointment

import (
	"context"

	domain "github.com/agendopro/agendopro-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve a grade fixa menos os horários pending/confirmed do dia,
// na ordem dos candidatos.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	userID uint,
	date string,
) ([]string, error) {

	booked, err := uc.repo.ListBookedTimes(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(booked), nil
}
