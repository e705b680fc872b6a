package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/niramoy/clinic-booking/internal/denylist"
	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/httpresp"
	"github.com/niramoy/clinic-booking/internal/models"
)

// DenylistHandler manages the blacklisted payment transaction IDs. Writes
// go to the database and then refresh the in-memory set the validator uses.
type DenylistHandler struct {
	db   *gorm.DB
	deny *denylist.Denylist
}

func NewDenylistHandler(db *gorm.DB, deny *denylist.Denylist) *DenylistHandler {
	return &DenylistHandler{db: db, deny: deny}
}

type DenylistEntryRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Reason        string `json:"reason"`
}

func (h *DenylistHandler) List(c *gin.Context) {
	var entries []models.BlacklistedTransaction
	if err := h.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_denylist", "Could not list denylist entries.")
		return
	}

	httpresp.List(c, entries)
}

func (h *DenylistHandler) Add(c *gin.Context) {
	var req DenylistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "transaction_id is required.")
		return
	}

	entry := models.BlacklistedTransaction{
		TransactionID: strings.ToUpper(strings.TrimSpace(req.TransactionID)),
		Reason:        req.Reason,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			httperr.BadRequest(c, "duplicate_entry", "This transaction ID is already denylisted.")
			return
		}
		httperr.Internal(c, "failed_to_add_entry", "Could not add the entry.")
		return
	}

	if err := h.deny.Refresh(); err != nil {
		httperr.Internal(c, "denylist_refresh_failed", "Entry saved but refresh failed.")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DenylistHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.BlacklistedTransaction{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_entry", "Could not delete entry.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "entry_not_found", "Denylist entry not found.")
		return
	}

	if err := h.deny.Refresh(); err != nil {
		httperr.Internal(c, "denylist_refresh_failed", "Entry deleted but refresh failed.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DenylistHandler) Refresh(c *gin.Context) {
	if err := h.deny.Refresh(); err != nil {
		httperr.Internal(c, "denylist_refresh_failed", "Could not refresh the denylist.")
		return
	}

	httpresp.OK(c, gin.H{"size": h.deny.Size()})
}
