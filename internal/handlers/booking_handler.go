package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/middleware"
	ucBooking "github.com/niramoy/clinic-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
}

func NewBookingHandler(createUC *ucBooking.CreateBooking) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentDate and AmountPaid bind as raw JSON values; the intake
// validator decides what shapes are acceptable and yields precise error
// codes instead of gin's generic binding message.
type CreateBookingRequest struct {
	PatientName   string `json:"patient_name"`
	PatientAge    int    `json:"patient_age"`
	PatientGender string `json:"patient_gender"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`

	AppointmentDate any    `json:"appointment_date"`
	DoctorName      string `json:"doctor_name"`
	DoctorID        *uint  `json:"doctor_id"`
	AppointmentType string `json:"appointment_type"`
	IsScope         bool   `json:"is_scope"`

	PaymentMobile        string `json:"payment_mobile"`
	PaymentTransactionID string `json:"payment_transaction_id"`
	PaymentMethod        string `json:"payment_method"`
	AmountPaid           any    `json:"amount_paid"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	identity := middleware.IdentityFrom(c)

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Intake: domain.Intake{
				PatientName:   req.PatientName,
				PatientAge:    req.PatientAge,
				PatientGender: req.PatientGender,
				Mobile:        req.Mobile,
				Email:         req.Email,

				AppointmentDate: req.AppointmentDate,
				DoctorName:      req.DoctorName,
				DoctorID:        req.DoctorID,
				AppointmentType: req.AppointmentType,
				IsScope:         req.IsScope,

				PaymentMobile:        req.PaymentMobile,
				PaymentTransactionID: req.PaymentTransactionID,
				PaymentMethod:        req.PaymentMethod,
				AmountPaid:           req.AmountPaid,
			},
			Identity: identity,
		},
	)

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingErrors(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	detail := httperr.BusinessDetail(err)

	switch code {
	case "missing_field":
		httperr.BadRequest(c, code, "Required field missing: "+detail+".")
	case "invalid_date":
		httperr.BadRequest(c, code, "Could not parse appointment date: "+detail+".")
	case "invalid_input_type":
		httperr.BadRequest(c, code, "Appointment date has an unsupported type.")
	case "disallowed_day":
		httperr.BadRequest(c, code, "Regular appointments are not available on "+detail+".")
	case "invalid_transaction_format":
		httperr.BadRequest(c, code, "Payment transaction ID is not valid: "+detail+".")
	case "blacklisted_transaction":
		httperr.BadRequest(c, code, "This payment transaction ID cannot be used.")
	case "doctor_not_found":
		httperr.BadRequest(c, code, "Selected doctor does not exist.")
	default:
		// storage failures stay internal; nothing actionable for the client
		httperr.Internal(c, "failed_to_create_appointment", "Could not create the appointment.")
	}
}
