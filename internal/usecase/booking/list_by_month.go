package booking

import (
	"context"
	"time"

	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
	"github.com/niramoy/clinic-booking/internal/dto"
	"github.com/niramoy/clinic-booking/internal/models"
)

type ListBookingsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookingsByMonth(
	repo domain.Repository,
	loc *time.Location,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

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

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:              ap.ID,
		Reference:       ap.Reference,
		Serial:          ap.Serial,
		PatientName:     ap.PatientName,
		DoctorName:      ap.DoctorName,
		AppointmentDate: ap.AppointmentDate,
		AppointmentType: ap.AppointmentType,
		IsScope:         ap.IsScope,
		Status:          ap.Status,
	}
}
