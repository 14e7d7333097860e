package patient

import (
	"context"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID: failed to fetch patient", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch patient")
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (s *DefaultPatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	recs, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("GetAll: failed to list patients", zap.Error(err))
		return nil, fmt.Errorf("failed to list patients")
	}
	return recs, nil
}

// Update replaces profile fields. Credentials and verification state
// are managed by the auth flow, never through Update.
func (s *DefaultPatientService) Update(ctx context.Context, p *models.Patient) (*models.Patient, error) {
	existing, err := s.Repo.GetByID(p.ID)
	if err != nil {
		utils.GetLogger().Error("Update: failed to fetch patient", zap.String("id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update patient")
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = p.Name
	existing.Phone = p.Phone
	existing.DateOfBirth = p.DateOfBirth
	existing.Gender = p.Gender
	existing.BloodGroup = p.BloodGroup
	existing.Address = p.Address
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(existing); err != nil {
		utils.GetLogger().Error("Update: failed to persist patient", zap.String("id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to update patient")
	}
	return existing, nil
}

func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Delete: failed to delete patient", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete patient")
	}
	return nil
}
