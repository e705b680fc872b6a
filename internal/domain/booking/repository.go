package booking

import (
	"context"
	"time"

	"github.com/niramoy/clinic-booking/internal/models"
)

type Repository interface {
	// -------- Counter --------

	// IncrementCounter bumps the named counter by one and returns the new
	// value, creating the row at 1 on first use. The whole operation must be
	// a single atomic statement: concurrent callers may never observe the
	// same value.
	IncrementCounter(
		ctx context.Context,
		name string,
	) (int64, error)

	GetCounter(
		ctx context.Context,
		name string,
	) (*models.Counter, error)

	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	ListActiveDoctors(
		ctx context.Context,
	) ([]models.Doctor, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Denylist --------
	ListBlacklistedTransactionIDs(
		ctx context.Context,
	) ([]string, error)
}
