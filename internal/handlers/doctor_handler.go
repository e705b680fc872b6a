package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/niramoy/clinic-booking/internal/httperr"
	"github.com/niramoy/clinic-booking/internal/httpresp"
	"github.com/niramoy/clinic-booking/internal/models"
)

// ActiveDoctorLister is the slice of the booking repository the public
// doctor listing needs.
type ActiveDoctorLister interface {
	ListActiveDoctors(ctx context.Context) ([]models.Doctor, error)
}

type DoctorHandler struct {
	db      *gorm.DB
	doctors ActiveDoctorLister
}

func NewDoctorHandler(db *gorm.DB, doctors ActiveDoctorLister) *DoctorHandler {
	return &DoctorHandler{db: db, doctors: doctors}
}

// --------- Requests ---------

type DoctorRequest struct {
	Name        string `json:"name" binding:"required"`
	Specialty   string `json:"specialty"`
	Designation string `json:"designation"`
	Chamber     string `json:"chamber"`
	Active      *bool  `json:"active"`
}

// --------- Public ---------

func (h *DoctorHandler) ListPublic(c *gin.Context) {
	doctors, err := h.doctors.ListActiveDoctors(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	httpresp.List(c, doctors)
}

// --------- Staff ---------

func (h *DoctorHandler) List(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Could not list doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid doctor payload.")
		return
	}

	doctor := models.Doctor{
		Name:        req.Name,
		Specialty:   req.Specialty,
		Designation: req.Designation,
		Chamber:     req.Chamber,
		Active:      true,
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not create doctor.")
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid doctor ID.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, uint(id)).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	var req DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid doctor payload.")
		return
	}

	doctor.Name = req.Name
	doctor.Specialty = req.Specialty
	doctor.Designation = req.Designation
	doctor.Chamber = req.Chamber
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not update doctor.")
		return
	}

	httpresp.OK(c, doctor)
}
