package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/httpresp"
	"github.com/niramoy/clinic-booking/internal/serial"
	"github.com/niramoy/clinic-booking/internal/timezone"
)

// SerialHandler reports where the current month's booking counter stands,
// for the reception dashboard.
type SerialHandler struct {
	repo     domain.Repository
	clinicTZ string
}

func NewSerialHandler(repo domain.Repository, clinicTZ string) *SerialHandler {
	return &SerialHandler{repo: repo, clinicTZ: clinicTZ}
}

func (h *SerialHandler) Status(c *gin.Context) {
	bucket := serial.Bucket(timezone.NowIn(h.clinicTZ))

	counter, err := h.repo.GetCounter(c.Request.Context(), "appointment-"+bucket)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no bookings yet this month
			httpresp.OK(c, gin.H{
				"bucket": bucket,
				"issued": 0,
			})
			return
		}

		httperr.Internal(c, "counter_lookup_failed", "Could not read the serial counter.")
		return
	}

	httpresp.OK(c, gin.H{
		"bucket":      bucket,
		"issued":      counter.Value,
		"next_serial": serial.Format(bucket, counter.Value+1),
	})
}
