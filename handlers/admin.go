package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"clinicore/config"
	"clinicore/services/booking"
	"clinicore/services/doctor"
	"clinicore/services/patient"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin portal: doctor approval, account
// listings and appointment oversight.
type AdminHandler struct {
	Patients patient.PatientService
	Doctors  doctor.DoctorService
	Bookings booking.BookingService
}

// SigninHandler handles POST /api/admin/signin. Admin credentials
// come from configuration; there is no stored admin account.
func (h *AdminHandler) SigninHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid signin payload", err.Error())
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(config.AppConfig.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.AppConfig.AdminPassword)) == 1
	if config.AppConfig.AdminEmail == "" || !emailOK || !passOK {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid admin credentials", "")
		return
	}

	token, err := utils.GenerateToken("admin", req.Email, "admin", 12*time.Hour)
	if err != nil {
		utils.GetLogger().Error("SigninHandler: admin token generation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Signin failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListPatientsHandler handles GET /api/admin/patients.
func (h *AdminHandler) ListPatientsHandler(c *gin.Context) {
	recs, err := h.Patients.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("ListPatientsHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list patients", "")
		return
	}
	c.JSON(http.StatusOK, recs)
}

// DeletePatientHandler handles DELETE /api/admin/patients/:id.
func (h *AdminHandler) DeletePatientHandler(c *gin.Context) {
	if err := h.Patients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.GetLogger().Error("DeletePatientHandler: delete failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete patient", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted"})
}

// ListDoctorsHandler handles GET /api/admin/doctors. All statuses are
// included so pending registrations show up for review.
func (h *AdminHandler) ListDoctorsHandler(c *gin.Context) {
	recs, err := h.Doctors.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("ListDoctorsHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", "")
		return
	}
	c.JSON(http.StatusOK, recs)
}

// SetDoctorStatusHandler handles PUT /api/admin/doctors/:id/status.
func (h *AdminHandler) SetDoctorStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}

	err := h.Doctors.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, doctor.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		default:
			utils.GetLogger().Error("SetDoctorStatusHandler: update failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update doctor status", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor status updated"})
}

// DeleteDoctorHandler handles DELETE /api/admin/doctors/:id.
func (h *AdminHandler) DeleteDoctorHandler(c *gin.Context) {
	if err := h.Doctors.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.GetLogger().Error("DeleteDoctorHandler: delete failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// ListAppointmentsHandler handles GET /api/admin/appointments.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Bookings.ListAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("ListAppointmentsHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", "")
		return
	}
	c.JSON(http.StatusOK, appts)
}

// UpdateAppointmentStatusHandler handles
// PUT /api/admin/appointments/:id/status.
func (h *AdminHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}

	err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		default:
			utils.GetLogger().Error("UpdateAppointmentStatusHandler: update failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update appointment", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated"})
}
