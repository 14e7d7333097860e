package handlers

import (
	"errors"
	"net/http"

	"clinicore/models"
	"clinicore/services/booking"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves slot discovery and appointment booking for
// the patient portal.
type BookingHandler struct {
	Svc booking.BookingService
}

// GetAvailableSlotsHandler handles
// GET /api/appointments/slots?doctorId=&date=&session=.
func (h *BookingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	doctorID := c.Query("doctorId")
	date := c.Query("date")
	session := c.Query("session")
	if doctorID == "" || date == "" || session == "" {
		utils.JSONError(c, http.StatusBadRequest, "doctorId, date and session are required", "")
		return
	}

	resp, err := h.Svc.GetAvailableSlots(c.Request.Context(), doctorID, date, session)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDoctorNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		case errors.Is(err, booking.ErrInvalidTime):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		default:
			utils.GetLogger().Error("GetAvailableSlotsHandler: fetch failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch slots", "")
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	appt, err := h.Svc.BookAppointment(c.Request.Context(), c.GetString("patientID"), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// BookEmergencyHandler handles POST /api/appointments/emergency.
func (h *BookingHandler) BookEmergencyHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	appt, err := h.Svc.BookEmergency(c.Request.Context(), c.GetString("patientID"), req)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelAppointmentHandler handles DELETE /api/appointments/:id.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	err := h.Svc.CancelAppointment(c.Request.Context(), c.Param("id"), c.GetString("patientID"))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		case errors.Is(err, booking.ErrForbidden):
			utils.JSONError(c, http.StatusForbidden, err.Error(), "")
		default:
			utils.GetLogger().Error("CancelAppointmentHandler: cancel failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel appointment", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

// ListMyAppointmentsHandler handles GET /api/appointments.
func (h *BookingHandler) ListMyAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListForPatient(c.Request.Context(), c.GetString("patientID"))
	if err != nil {
		utils.GetLogger().Error("ListMyAppointmentsHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", "")
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrDoctorNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, booking.ErrInvalidTime):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrSlotTaken),
		errors.Is(err, booking.ErrSessionFull),
		errors.Is(err, booking.ErrDayFull),
		errors.Is(err, booking.ErrDoctorUnavailable):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.GetLogger().Error("booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", "")
	}
}
