package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/google/uuid"
)

// hospitalService implements portssvc.HospitalSvcFacade.
type hospitalService struct {
	hospitalRepo portsrepo.HospitalRepository
	userRepo     portsrepo.UserRepository
}

// NewHospitalService creates a new hospital service.
func NewHospitalService(hospitalRepo portsrepo.HospitalRepository, userRepo portsrepo.UserRepository) portssvc.HospitalSvcFacade {
	return &hospitalService{hospitalRepo: hospitalRepo, userRepo: userRepo}
}

var _ portssvc.HospitalSvcFacade = (*hospitalService)(nil)

func (s *hospitalService) GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error) {
	return s.hospitalRepo.FindHospitalByID(ctx, hospitalID)
}

func (s *hospitalService) ListStates(ctx context.Context) ([]string, error) {
	states, err := s.hospitalRepo.ListStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

func (s *hospitalService) ListDistricts(ctx context.Context, state string) ([]string, error) {
	if state == "" {
		return nil, fmt.Errorf("state is required: %w", apperrors.ErrValidation)
	}
	districts, err := s.hospitalRepo.ListDistricts(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	return districts, nil
}

func (s *hospitalService) SearchHospitals(ctx context.Context, params dto.SearchHospitalsParams) ([]domain.Hospital, error) {
	filter := portsrepo.HospitalSearchFilter{
		State:      params.State,
		District:   params.District,
		NamePrefix: params.Name,
		Limit:      params.Limit,
	}
	hospitals, err := s.hospitalRepo.SearchHospitals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search hospitals: %w", err)
	}
	return hospitals, nil
}

func (s *hospitalService) CreateHospital(ctx context.Context, req dto.CreateHospitalRequest, requestingUserID string) (*domain.Hospital, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if requester.Role != domain.RoleHospitalAdmin {
		return nil, apperrors.ErrForbidden
	}
	if req.BedsAvailable > req.BedsTotal {
		return nil, fmt.Errorf("available beds exceed total: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	hospital := domain.Hospital{
		HospitalID:    uuid.NewString(),
		Name:          req.Name,
		State:         req.State,
		District:      req.District,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		BedsTotal:     req.BedsTotal,
		BedsAvailable: req.BedsAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.hospitalRepo.SaveHospital(ctx, hospital); err != nil {
		return nil, fmt.Errorf("failed to save hospital: %w", err)
	}
	return &hospital, nil
}

func (s *hospitalService) UpdateBeds(ctx context.Context, hospitalID string, req dto.UpdateBedsRequest, requestingUserID string) (*domain.Hospital, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	// Only the hospital's own admin may manage its beds.
	if requester.Role != domain.RoleHospitalAdmin || requester.HospitalID != hospitalID {
		return nil, apperrors.ErrForbidden
	}
	if req.BedsAvailable > req.BedsTotal {
		return nil, fmt.Errorf("available beds exceed total: %w", apperrors.ErrValidation)
	}

	if err := s.hospitalRepo.UpdateBeds(ctx, hospitalID, req.BedsTotal, req.BedsAvailable); err != nil {
		return nil, err
	}
	return s.hospitalRepo.FindHospitalByID(ctx, hospitalID)
}
