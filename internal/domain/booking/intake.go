package booking

import (
	"strings"
	"time"

	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/models"
)

// ===============================
// Intake
// ===============================

// Intake is the raw booking payload as it arrives from the client.
// AppointmentDate and AmountPaid stay untyped until validated.
type Intake struct {
	PatientName   string
	PatientAge    int
	PatientGender string
	Mobile        string
	Email         string

	AppointmentDate any
	DoctorName      string
	DoctorID        *uint
	AppointmentType string
	IsScope         bool

	PaymentMobile        string
	PaymentTransactionID string
	PaymentMethod        string
	AmountPaid           any
}

// Identity is the authenticated caller, when there is one. Guest bookings
// pass nil.
type Identity struct {
	ID    string
	Email string
}

// Denylist answers whether a payment transaction ID is known bad.
type Denylist interface {
	Contains(transactionID string) bool
}

// ===============================
// Validation pipeline
// ===============================

// ValidateAndNormalize runs the whole intake policy in order: required
// fields, date parsing, day-of-week eligibility, payment format and
// denylist. It stops at the first violation and never touches storage.
// The returned record has no serial yet; the caller allocates one.
func ValidateAndNormalize(
	in Intake,
	identity *Identity,
	deny Denylist,
	loc *time.Location,
) (*models.Appointment, error) {

	email := strings.TrimSpace(in.Email)
	if email == "" && identity != nil {
		email = identity.Email
	}

	if err := checkRequired(in, email); err != nil {
		return nil, err
	}

	date, err := ParseAppointmentDate(in.AppointmentDate, loc)
	if err != nil {
		return nil, err
	}

	if err := checkWeekday(date, in.IsScope); err != nil {
		return nil, err
	}

	txnID := strings.TrimSpace(in.PaymentTransactionID)
	if !IsValidTransactionID(txnID) {
		return nil, httperr.ErrBusinessDetail("invalid_transaction_format", txnID)
	}
	if deny != nil && deny.Contains(txnID) {
		return nil, httperr.ErrBusinessDetail("blacklisted_transaction", txnID)
	}

	amount := CoerceAmount(in.AmountPaid)
	if amount < 0 {
		amount = 0
	}

	userID := ""
	if identity != nil {
		userID = identity.ID
	}

	return &models.Appointment{
		PatientName:   strings.TrimSpace(in.PatientName),
		PatientAge:    in.PatientAge,
		PatientGender: in.PatientGender,
		Mobile:        strings.TrimSpace(in.Mobile),
		Email:         email,

		AppointmentDate: date,
		DoctorName:      strings.TrimSpace(in.DoctorName),
		DoctorID:        in.DoctorID,
		AppointmentType: in.AppointmentType,
		IsScope:         in.IsScope,

		PaymentMobile:        strings.TrimSpace(in.PaymentMobile),
		PaymentTransactionID: txnID,
		PaymentMethod:        in.PaymentMethod,
		AmountPaid:           amount,

		UserID: userID,
	}, nil
}

// ===============================
// Checks
// ===============================

func checkRequired(in Intake, email string) error {
	required := []struct {
		name  string
		value string
	}{
		{"patient_name", in.PatientName},
		{"patient_gender", in.PatientGender},
		{"mobile", in.Mobile},
		{"email", email},
		{"doctor_name", in.DoctorName},
		{"payment_mobile", in.PaymentMobile},
		{"payment_transaction_id", in.PaymentTransactionID},
		{"payment_method", in.PaymentMethod},
		{"appointment_type", in.AppointmentType},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return httperr.ErrBusinessDetail("missing_field", f.name)
		}
	}

	if in.PatientAge <= 0 {
		return httperr.ErrBusinessDetail("missing_field", "patient_age")
	}

	if in.AppointmentDate == nil {
		return httperr.ErrBusinessDetail("missing_field", "appointment_date")
	}
	if s, ok := in.AppointmentDate.(string); ok && strings.TrimSpace(s) == "" {
		return httperr.ErrBusinessDetail("missing_field", "appointment_date")
	}

	return nil
}

// Regular consultations do not run on Friday or Saturday. Scope (endoscopy)
// procedures follow their own schedule and book on any day.
func checkWeekday(date time.Time, isScope bool) error {
	if isScope {
		return nil
	}

	switch date.Weekday() {
	case time.Friday, time.Saturday:
		return httperr.ErrBusinessDetail("disallowed_day", date.Weekday().String())
	}

	return nil
}
