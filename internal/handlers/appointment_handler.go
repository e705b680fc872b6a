package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/httpresp"
	"github.com/niramoy/clinic-booking/internal/middleware"
	"github.com/niramoy/clinic-booking/internal/timezone"
	ucBooking "github.com/niramoy/clinic-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER (STAFF)
// ======================================================

type AppointmentHandler struct {
	confirmUC     *ucBooking.ConfirmBooking
	cancelUC      *ucBooking.CancelBooking
	completeUC    *ucBooking.CompleteBooking
	listByDateUC  *ucBooking.ListBookingsByDate
	listByMonthUC *ucBooking.ListBookingsByMonth
	clinicTZ      string
}

func NewAppointmentHandler(
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listByDateUC *ucBooking.ListBookingsByDate,
	listByMonthUC *ucBooking.ListBookingsByMonth,
	clinicTZ string,
) *AppointmentHandler {
	return &AppointmentHandler{
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		clinicTZ:      clinicTZ,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.clinicTZ))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date as YYYY-MM-DD.")
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Expected a valid 'year' query parameter.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Expected 'month' between 1 and 12.")
		return
	}

	out, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(userID, apID uint) (any, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment ID.")
		return
	}

	ap, err := run(userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Appointment is not in a state that allows this change.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Could not update the appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}
