package handlers

import (
	"errors"
	"net/http"

	"clinicore/models"
	"clinicore/services/booking"
	"clinicore/services/doctor"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves doctor registration, signin, schedule setup
// and the doctor's own appointment views.
type DoctorHandler struct {
	Svc        doctor.DoctorService
	BookingSvc booking.BookingService
}

// RegisterHandler handles POST /api/doctors/register.
func (h *DoctorHandler) RegisterHandler(c *gin.Context) {
	var req models.DoctorRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	doc, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
		case errors.Is(err, doctor.ErrInvalidHours):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		default:
			utils.GetLogger().Error("RegisterHandler: doctor registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Registration failed", "")
		}
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// SigninHandler handles POST /api/doctors/signin.
func (h *DoctorHandler) SigninHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid signin payload", err.Error())
		return
	}

	doc, token, err := h.Svc.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, doctor.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
		case errors.Is(err, doctor.ErrNotApproved):
			utils.JSONError(c, http.StatusForbidden, err.Error(), "")
		default:
			utils.GetLogger().Error("SigninHandler: doctor signin failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Signin failed", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doc, "token": token})
}

// GetProfileHandler handles GET /api/doctors/me.
func (h *DoctorHandler) GetProfileHandler(c *gin.Context) {
	doctorID := c.GetString("doctorID")
	doc, err := h.Svc.GetByID(c.Request.Context(), doctorID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateProfileHandler handles PUT /api/doctors/me.
func (h *DoctorHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}
	req.ID = c.GetString("doctorID")

	updated, err := h.Svc.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.GetLogger().Error("UpdateProfileHandler: doctor update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetHoursHandler handles PUT /api/doctors/me/hours.
func (h *DoctorHandler) SetHoursHandler(c *gin.Context) {
	var req models.SetupHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hours payload", err.Error())
		return
	}

	doc, err := h.Svc.SetHours(c.Request.Context(), c.GetString("doctorID"), req.Hours)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidHours) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.GetLogger().Error("SetHoursHandler: hours update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update working hours", "")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AddOverrideHandler handles POST /api/doctors/me/overrides.
func (h *DoctorHandler) AddOverrideHandler(c *gin.Context) {
	var req models.ScheduleOverride
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid override payload", err.Error())
		return
	}
	req.DoctorID = c.GetString("doctorID")

	created, err := h.Svc.AddOverride(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidOverride) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.GetLogger().Error("AddOverrideHandler: override create failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create override", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListOverridesHandler handles GET /api/doctors/me/overrides.
func (h *DoctorHandler) ListOverridesHandler(c *gin.Context) {
	overrides, err := h.Svc.ListOverrides(c.Request.Context(), c.GetString("doctorID"))
	if err != nil {
		utils.GetLogger().Error("ListOverridesHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list overrides", "")
		return
	}
	c.JSON(http.StatusOK, overrides)
}

// DeleteOverrideHandler handles DELETE /api/doctors/me/overrides/:id.
func (h *DoctorHandler) DeleteOverrideHandler(c *gin.Context) {
	if err := h.Svc.DeleteOverride(c.Request.Context(), c.Param("id")); err != nil {
		utils.GetLogger().Error("DeleteOverrideHandler: delete failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete override", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Override deleted"})
}

// ListAppointmentsHandler handles GET /api/doctors/me/appointments.
// An optional ?date= query narrows the list to one day.
func (h *DoctorHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.BookingSvc.ListForDoctor(c.Request.Context(), c.GetString("doctorID"), c.Query("date"))
	if err != nil {
		utils.GetLogger().Error("ListAppointmentsHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", "")
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListApprovedHandler handles GET /api/doctors. It is the public
// directory patients browse before booking.
func (h *DoctorHandler) ListApprovedHandler(c *gin.Context) {
	docs, err := h.Svc.ListApproved(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("ListApprovedHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list doctors", "")
		return
	}
	c.JSON(http.StatusOK, docs)
}

// SignOutHandler handles POST /api/doctors/signout.
func (h *DoctorHandler) SignOutHandler(c *gin.Context) {
	doctorID := c.GetString("doctorID")
	if err := h.Svc.RevokeToken(c.Request.Context(), doctorID); err != nil {
		utils.GetLogger().Error("SignOutHandler: revoke failed", zap.String("id", doctorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Sign out failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
