package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
	"github.com/niramoy/clinic-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Counter
// --------------------------------------------------

// IncrementCounter is a single upsert so concurrent bookings can never read
// the same value. Postgres serializes the row update; RETURNING hands back
// the value this caller owns.
func (r *BookingGormRepository) IncrementCounter(
	ctx context.Context,
	name string,
) (int64, error) {

	var value int64
	err := r.db.WithContext(ctx).Raw(`
        INSERT INTO counters (name, value, created_at, updated_at)
        VALUES (?, 1, NOW(), NOW())
        ON CONFLICT (name)
        DO UPDATE SET value = counters.value + 1, updated_at = NOW()
        RETURNING value
    `, name).Scan(&value).Error

	if err != nil {
		return 0, err
	}

	return value, nil
}

func (r *BookingGormRepository) GetCounter(
	ctx context.Context,
	name string,
) (*models.Counter, error) {

	var counter models.Counter
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&counter).Error; err != nil {
		return nil, err
	}
	return &counter, nil
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *BookingGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *BookingGormRepository) ListActiveDoctors(
	ctx context.Context,
) ([]models.Doctor, error) {

	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where(
			"appointment_date >= ? AND appointment_date < ?",
			start, end,
		).
		Order("appointment_date ASC, serial ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Denylist
// --------------------------------------------------

func (r *BookingGormRepository) ListBlacklistedTransactionIDs(
	ctx context.Context,
) ([]string, error) {

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.BlacklistedTransaction{}).
		Pluck("transaction_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
