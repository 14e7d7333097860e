package doctor

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/scheduling"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register creates the profile in the pending state. Approval is a
// separate admin action.
func (s *DefaultDoctorService) Register(ctx context.Context, req models.DoctorRegistration) (*models.Doctor, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := validateHours(req.Hours); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	doc := &models.Doctor{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Specialty:     req.Specialty,
		Qualification: req.Qualification,
		PasswordHash:  string(hash),
		Status:        models.DoctorStatusPending,
		Hours:         req.Hours,
		ConsultFee:    req.ConsultFee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(doc); err != nil {
		utils.GetLogger().Error("Register: failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return doc, nil
}

// Signin authenticates and issues a token. Pending and rejected
// profiles are refused.
func (s *DefaultDoctorService) Signin(ctx context.Context, email, password string) (*models.Doctor, string, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Signin: failed to fetch doctor", zap.Error(err))
		return nil, "", fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if rec.Status != models.DoctorStatusApproved {
		return nil, "", ErrNotApproved
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, "doctor", tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.SetTokenHash(rec.ID, utils.HashToken(token)); err != nil {
		utils.GetLogger().Error("Signin: failed to store token hash", zap.Error(err))
		return nil, "", fmt.Errorf("authentication failed, please try again")
	}
	return rec, token, nil
}

func (s *DefaultDoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID: failed to fetch doctor", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch doctor")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *DefaultDoctorService) GetAll(ctx context.Context) ([]models.Doctor, error) {
	recs, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("GetAll: failed to list doctors", zap.Error(err))
		return nil, fmt.Errorf("failed to list doctors")
	}
	return recs, nil
}

func (s *DefaultDoctorService) ListApproved(ctx context.Context) ([]models.Doctor, error) {
	recs, err := s.Repo.ListApproved()
	if err != nil {
		utils.GetLogger().Error("ListApproved: failed to list doctors", zap.Error(err))
		return nil, fmt.Errorf("failed to list doctors")
	}
	return recs, nil
}

// Update replaces profile fields. Status, hours and credentials have
// their own operations.
func (s *DefaultDoctorService) Update(ctx context.Context, doc *models.Doctor) (*models.Doctor, error) {
	existing, err := s.Repo.GetByID(doc.ID)
	if err != nil {
		utils.GetLogger().Error("Update: failed to fetch doctor", zap.String("id", doc.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update doctor")
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = doc.Name
	existing.Phone = doc.Phone
	existing.Specialty = doc.Specialty
	existing.Qualification = doc.Qualification
	existing.ConsultFee = doc.ConsultFee
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(existing); err != nil {
		utils.GetLogger().Error("Update: failed to persist doctor", zap.String("id", doc.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update doctor")
	}
	return existing, nil
}

func (s *DefaultDoctorService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Delete: failed to delete doctor", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete doctor")
	}
	return nil
}

// SetHours validates and stores the session configuration. Partial
// configurations are allowed; empty fields fall back to the clinic
// defaults at booking time.
func (s *DefaultDoctorService) SetHours(ctx context.Context, id string, hours models.WorkingHours) (*models.Doctor, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateHours(hours); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateHours(id, hours); err != nil {
		utils.GetLogger().Error("SetHours: failed to persist hours", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update working hours")
	}
	rec.Hours = hours
	return rec, nil
}

func (s *DefaultDoctorService) SetStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.DoctorStatusPending, models.DoctorStatusApproved, models.DoctorStatusRejected:
	default:
		return ErrInvalidStatus
	}
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateStatus(rec.ID, status); err != nil {
		utils.GetLogger().Error("SetStatus: failed to persist status", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update doctor status")
	}
	return nil
}

// AddOverride validates the override against the doctor's calendar
// and stores it.
func (s *DefaultDoctorService) AddOverride(ctx context.Context, o *models.ScheduleOverride) (*models.ScheduleOverride, error) {
	if _, err := s.GetByID(ctx, o.DoctorID); err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", o.Date); err != nil {
		return nil, ErrInvalidOverride
	}

	switch o.Kind {
	case models.OverrideHoliday:
		o.StartTime, o.EndTime = "", ""
	case models.OverrideBlackout:
		start, okS := scheduling.ParseTime(o.StartTime)
		end, okE := scheduling.ParseTime(o.EndTime)
		if !okS || !okE || start >= end {
			return nil, ErrInvalidOverride
		}
		// Store canonically so later comparisons need no reparse.
		o.StartTime = start.Format24()
		o.EndTime = end.Format24()
	default:
		return nil, ErrInvalidOverride
	}

	o.ID = uuid.New().String()
	o.CreatedAt = time.Now()
	if err := s.OverrideRepo.Create(o); err != nil {
		utils.GetLogger().Error("AddOverride: failed to persist override", zap.Error(err))
		return nil, fmt.Errorf("failed to create schedule override")
	}
	return o, nil
}

func (s *DefaultDoctorService) ListOverrides(ctx context.Context, doctorID string) ([]models.ScheduleOverride, error) {
	recs, err := s.OverrideRepo.ListByDoctor(doctorID)
	if err != nil {
		utils.GetLogger().Error("ListOverrides: failed to list overrides", zap.String("doctorId", doctorID), zap.Error(err))
		return nil, fmt.Errorf("failed to list schedule overrides")
	}
	return recs, nil
}

func (s *DefaultDoctorService) DeleteOverride(ctx context.Context, id string) error {
	if err := s.OverrideRepo.Delete(id); err != nil {
		utils.GetLogger().Error("DeleteOverride: failed to delete override", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete schedule override")
	}
	return nil
}

func (s *DefaultDoctorService) RevokeToken(ctx context.Context, id string) error {
	return s.Repo.SetTokenHash(id, "")
}

// validateHours rejects unparseable or inverted session windows.
// Empty strings are fine; they mean "use the defaults".
func validateHours(h models.WorkingHours) error {
	check := func(startRaw, endRaw string) error {
		if startRaw == "" && endRaw == "" {
			return nil
		}
		start, okS := scheduling.ParseTime(startRaw)
		end, okE := scheduling.ParseTime(endRaw)
		if !okS || !okE || start >= end {
			return ErrInvalidHours
		}
		return nil
	}
	if err := check(h.MorningStartTime, h.MorningEndTime); err != nil {
		return err
	}
	if err := check(h.EveningStartTime, h.EveningEndTime); err != nil {
		return err
	}
	if h.ConsultationDuration < 0 || h.ConsultationDuration > scheduling.MinutesPerDay {
		return ErrInvalidHours
	}
	return nil
}
