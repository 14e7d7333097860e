package patient

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpPurposeVerify = "verify"
	otpPurposeSignin = "signin"
	otpPurposeReset  = "reset"

	tokenTTL = 72 * time.Hour
)

// Register creates the account immediately (unverified) and starts the
// email verification flow. The returned response carries only the
// session ID; the token is issued once the OTP is confirmed.
func (s *DefaultPatientService) Register(ctx context.Context, req models.PatientRegistration) (*models.PatientAuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	p := &models.Patient{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(p); err != nil {
		utils.GetLogger().Error("Register: failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	sessionID, err := s.startOTPSession(ctx, p, otpPurposeVerify)
	if err != nil {
		return nil, err
	}
	return &models.PatientAuthResponse{Patient: p, SessionID: sessionID}, nil
}

// Signin checks credentials. Verified accounts get a token right away;
// unverified accounts are pushed back into the OTP flow.
func (s *DefaultPatientService) Signin(ctx context.Context, email, password string) (*models.PatientAuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Signin: failed to fetch patient", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !rec.EmailVerified {
		sessionID, err := s.startOTPSession(ctx, rec, otpPurposeVerify)
		if err != nil {
			return nil, err
		}
		return &models.PatientAuthResponse{Patient: rec, SessionID: sessionID}, nil
	}

	token, err := s.issueToken(rec)
	if err != nil {
		return nil, err
	}
	return &models.PatientAuthResponse{Patient: rec, Token: token}, nil
}

// VerifyOTP completes a pending session: the code is checked against
// the OTP cache, the email is marked verified, and a token is issued.
func (s *DefaultPatientService) VerifyOTP(ctx context.Context, sessionID, code string) (*models.PatientAuthResponse, error) {
	sessionClient := utils.GetAuthCacheClient()
	session, err := utils.GetAuthSession(sessionClient, sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if err := utils.VerifyOTPRecord(session.AccountID, otpPurposeVerify, code); err != nil {
		return nil, ErrOTPMismatch
	}

	rec, err := s.Repo.GetByID(session.AccountID)
	if err != nil || rec == nil {
		utils.GetLogger().Error("VerifyOTP: failed to fetch patient", zap.Error(err))
		return nil, fmt.Errorf("verification failed, please try again")
	}

	if !rec.EmailVerified {
		if err := s.Repo.SetEmailVerified(rec.ID); err != nil {
			utils.GetLogger().Error("VerifyOTP: failed to mark email verified", zap.Error(err))
			return nil, fmt.Errorf("verification failed, please try again")
		}
		rec.EmailVerified = true
	}

	token, err := s.issueToken(rec)
	if err != nil {
		return nil, err
	}
	if err := utils.DeleteAuthSession(sessionClient, sessionID); err != nil {
		utils.GetLogger().Warn("VerifyOTP: failed to delete auth session", zap.Error(err))
	}
	return &models.PatientAuthResponse{Patient: rec, Token: token}, nil
}

// ForgotPassword emails a reset code. A missing account is not
// reported to the caller.
func (s *DefaultPatientService) ForgotPassword(ctx context.Context, email string) error {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to fetch patient", zap.Error(err))
		return fmt.Errorf("request failed, please try again")
	}
	if rec == nil {
		return nil
	}

	otp, err := utils.InitiateOTP(rec.ID, otpPurposeReset)
	if err != nil {
		return fmt.Errorf("failed to initiate reset: %w", err)
	}
	if err := s.Notifier.SendOTPEmail(ctx, rec.Email, otp); err != nil {
		utils.GetLogger().Error("ForgotPassword: failed to queue OTP email", zap.Error(err))
		return fmt.Errorf("request failed, please try again")
	}
	return nil
}

// ResetPassword verifies the reset code and replaces the password
// hash. Any outstanding token is revoked.
func (s *DefaultPatientService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("ResetPassword: failed to fetch patient", zap.Error(err))
		return fmt.Errorf("reset failed, please try again")
	}
	if rec == nil {
		return ErrOTPMismatch
	}

	if err := utils.VerifyOTPRecord(rec.ID, otpPurposeReset, code); err != nil {
		return ErrOTPMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.SetPasswordHash(rec.ID, string(hash)); err != nil {
		utils.GetLogger().Error("ResetPassword: failed to update password", zap.Error(err))
		return fmt.Errorf("reset failed, please try again")
	}
	if err := s.Repo.SetTokenHash(rec.ID, ""); err != nil {
		utils.GetLogger().Warn("ResetPassword: failed to revoke token", zap.Error(err))
	}
	return nil
}

// RevokeToken clears the stored token hash so the current token stops
// authenticating.
func (s *DefaultPatientService) RevokeToken(ctx context.Context, id string) error {
	return s.Repo.SetTokenHash(id, "")
}

// startOTPSession generates an OTP for the account, emails it, and
// saves a pending auth session keyed by a fresh session ID.
func (s *DefaultPatientService) startOTPSession(ctx context.Context, p *models.Patient, purpose string) (string, error) {
	otp, err := utils.InitiateOTP(p.ID, purpose)
	if err != nil {
		return "", fmt.Errorf("failed to initiate OTP: %w", err)
	}
	if err := s.Notifier.SendOTPEmail(ctx, p.Email, otp); err != nil {
		utils.GetLogger().Error("startOTPSession: failed to queue OTP email", zap.Error(err))
		return "", fmt.Errorf("failed to send verification code")
	}

	sessionID := uuid.New().String()
	session := utils.AuthSession{
		AccountID: p.ID,
		Role:      "patient",
		Email:     p.Email,
		Status:    "pending_otp",
		CreatedAt: time.Now(),
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), sessionID, session); err != nil {
		return "", fmt.Errorf("failed to create auth session: %w", err)
	}
	return sessionID, nil
}

// issueToken signs a JWT for the account and stores its hash for
// revocation checks.
func (s *DefaultPatientService) issueToken(p *models.Patient) (string, error) {
	token, err := utils.GenerateToken(p.ID, p.Email, "patient", tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(p.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}
	return token, nil
}
