package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/niramoy/clinic-booking/internal/audit"
	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/models"
	"github.com/niramoy/clinic-booking/internal/notify"
	"github.com/niramoy/clinic-booking/internal/serial"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Intake   domain.Intake
	Identity *domain.Identity
}

// ======================================================
// USE CASE
// ======================================================

// AuditSink and NotifySink are satisfied by the audit and notify
// dispatchers; both are fire-and-forget.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

type NotifySink interface {
	Dispatch(n notify.Notification)
}

type CreateBooking struct {
	repo      domain.Repository
	allocator *serial.Allocator
	deny      domain.Denylist
	audit     AuditSink
	notify    NotifySink
	loc       *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	allocator *serial.Allocator,
	deny domain.Denylist,
	auditDispatcher AuditSink,
	notifyDispatcher NotifySink,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		allocator: allocator,
		deny:      deny,
		audit:     auditDispatcher,
		notify:    notifyDispatcher,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute validates first and only then allocates a serial, so rejected
// requests never burn a counter value. A counter gap (serial allocated,
// insert failed) is accepted; a duplicate never is.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	ap, err := domain.ValidateAndNormalize(in.Intake, in.Identity, uc.deny, uc.loc)
	if err != nil {
		return nil, err
	}

	if ap.DoctorID != nil {
		doctor, err := uc.repo.GetDoctorByID(ctx, *ap.DoctorID)
		if err != nil {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		ap.DoctorName = doctor.Name
	}

	serialValue, degraded := uc.allocator.Allocate(ctx)
	ap.Serial = serialValue
	ap.Reference = uuid.NewString()
	ap.Status = string(domain.InitialStatus())

	if degraded {
		uc.audit.Dispatch(audit.Event{
			Action: "serial_allocation_degraded",
			Entity: "appointment",
			Metadata: map[string]any{
				"serial": serialValue,
			},
		})
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"serial":   ap.Serial,
			"is_scope": ap.IsScope,
			"guest":    ap.UserID == "",
		},
	})

	uc.notify.Dispatch(notify.Notification{
		Appointment: *ap,
		Recipient:   ap.Email,
	})

	return ap, nil
}
