package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the opaque public identifier, Serial the human-facing
	// month-scoped booking number (e.g. 2025050007).
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`
	Serial    int64  `gorm:"index" json:"serial"`

	PatientName   string `gorm:"size:100;not null" json:"patient_name"`
	PatientAge    int    `json:"patient_age"`
	PatientGender string `gorm:"size:10" json:"patient_gender"`
	Mobile        string `gorm:"size:20" json:"mobile"`
	Email         string `gorm:"size:100" json:"email"`

	AppointmentDate time.Time `json:"appointment_date"`
	DoctorName      string    `gorm:"size:100" json:"doctor_name"`
	DoctorID        *uint     `json:"doctor_id"`
	Doctor          *Doctor   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor,omitempty"`

	AppointmentType string `gorm:"size:20" json:"appointment_type"`
	IsScope         bool   `json:"is_scope"`

	PaymentMobile        string  `gorm:"size:20" json:"payment_mobile"`
	PaymentTransactionID string  `gorm:"size:20" json:"payment_transaction_id"`
	PaymentMethod        string  `gorm:"size:10" json:"payment_method"`
	AmountPaid           float64 `json:"amount_paid"`

	// Empty for guest bookings.
	UserID string `gorm:"size:36" json:"user_id"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
