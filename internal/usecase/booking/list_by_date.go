package booking

import (
	"context"
	"time"

	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
	"github.com/niramoy/clinic-booking/internal/dto"
)

type ListBookingsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookingsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap))
	}

	return out, nil
}
