package handlers

import (
	"errors"
	"net/http"

	"clinicore/models"
	"clinicore/services/patient"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler serves the patient-portal account endpoints.
type PatientHandler struct {
	Svc patient.PatientService
}

// RegisterHandler handles POST /api/patients/register.
func (h *PatientHandler) RegisterHandler(c *gin.Context) {
	var req models.PatientRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
		return
	}

	resp, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, patient.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
			return
		}
		utils.GetLogger().Error("RegisterHandler: registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", "")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SigninHandler handles POST /api/patients/signin.
func (h *PatientHandler) SigninHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid signin payload", err.Error())
		return
	}

	resp, err := h.Svc.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, patient.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.GetLogger().Error("SigninHandler: signin failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Signin failed", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyOTPHandler handles POST /api/patients/verify-otp.
func (h *PatientHandler) VerifyOTPHandler(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		Code      string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid verification payload", err.Error())
		return
	}

	resp, err := h.Svc.VerifyOTP(c.Request.Context(), req.SessionID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, patient.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		case errors.Is(err, patient.ErrOTPMismatch):
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
		default:
			utils.GetLogger().Error("VerifyOTPHandler: verification failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Verification failed", "")
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPasswordHandler handles POST /api/patients/forgot-password.
// The response is the same whether or not the account exists.
func (h *PatientHandler) ForgotPasswordHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.GetLogger().Error("ForgotPasswordHandler: request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Request failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset code has been sent"})
}

// ResetPasswordHandler handles POST /api/patients/reset-password.
func (h *PatientHandler) ResetPasswordHandler(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}

	if err := h.Svc.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		if errors.Is(err, patient.ErrOTPMismatch) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.GetLogger().Error("ResetPasswordHandler: reset failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Reset failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GetProfileHandler handles GET /api/patients/me.
func (h *PatientHandler) GetProfileHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	rec, err := h.Svc.GetByID(c.Request.Context(), patientID)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.GetLogger().Error("GetProfileHandler: fetch failed", zap.String("id", patientID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch profile", "")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateProfileHandler handles PUT /api/patients/me.
func (h *PatientHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
		return
	}
	req.ID = c.GetString("patientID")

	updated, err := h.Svc.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.GetLogger().Error("UpdateProfileHandler: update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update profile", "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SignOutHandler handles POST /api/patients/signout.
func (h *PatientHandler) SignOutHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	if err := h.Svc.RevokeToken(c.Request.Context(), patientID); err != nil {
		utils.GetLogger().Error("SignOutHandler: revoke failed", zap.String("id", patientID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Sign out failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
