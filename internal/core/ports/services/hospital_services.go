package services

import (
	"context"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	"github.com/CareSetu/health_portal_app/internal/dto"
)

// HospitalReaderSvc defines lookup operations over the hospital directory.
type HospitalReaderSvc interface {
	GetHospital(ctx context.Context, hospitalID string) (*domain.Hospital, error)
	ListStates(ctx context.Context) ([]string, error)
	ListDistricts(ctx context.Context, state string) ([]string, error)
	SearchHospitals(ctx context.Context, params dto.SearchHospitalsParams) ([]domain.Hospital, error)
}

// HospitalWriterSvc defines administrative operations on hospitals.
type HospitalWriterSvc interface {
	// CreateHospital registers a hospital (hospital-admin action).
	CreateHospital(ctx context.Context, req dto.CreateHospitalRequest, requestingUserID string) (*domain.Hospital, error)

	// UpdateBeds updates bed counts. Only the hospital's own admin may call it.
	UpdateBeds(ctx context.Context, hospitalID string, req dto.UpdateBedsRequest, requestingUserID string) (*domain.Hospital, error)
}

// HospitalSvcFacade combines hospital service interfaces.
type HospitalSvcFacade interface {
	HospitalReaderSvc
	HospitalWriterSvc
}
