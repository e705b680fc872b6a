package notify

import (
	"fmt"

	"github.com/niramoy/clinic-booking/internal/models"
)

// Notification is one booking-confirmation email to send.
type Notification struct {
	Appointment models.Appointment
	Recipient   string
}

// Sender delivers a notification. Failures are logged by the dispatcher and
// never reach the booking flow.
type Sender interface {
	Send(n Notification) error
}

func subjectFor(ap *models.Appointment) string {
	if ap.IsScope {
		return fmt.Sprintf("Endoscopy booking confirmed - serial %d", ap.Serial)
	}
	return fmt.Sprintf("Appointment confirmed - serial %d", ap.Serial)
}

func bodyFor(ap *models.Appointment) string {
	kind := "consultation"
	if ap.IsScope {
		kind = "endoscopy procedure"
	}

	return fmt.Sprintf(
		"Dear %s,\n\nYour %s with %s is booked for %s.\nBooking serial: %d\nPlease arrive 15 minutes early with this serial number.\n\nNiramoy Clinic",
		ap.PatientName,
		kind,
		ap.DoctorName,
		ap.AppointmentDate.Format("Monday, 02 Jan 2006 at 15:04"),
		ap.Serial,
	)
}
