package booking

import (
	"context"

	"github.com/niramoy/clinic-booking/internal/audit"
	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/models"
	"github.com/niramoy/clinic-booking/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCancelBooking(
	repo domain.Repository,
	auditDispatcher AuditSink,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
