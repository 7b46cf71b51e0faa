package repositories

import (
	"context"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
)

// HospitalSearchFilter narrows hospital searches; zero-value fields are ignored.
type HospitalSearchFilter struct {
	State      string
	District   string
	NamePrefix string
	Limit      int
}

// HospitalRepository defines persistence operations for hospital records.
type HospitalRepository interface {
	SaveHospital(ctx context.Context, hospital domain.Hospital) error

	// FindHospitalByID returns apperrors.ErrNotFound if absent.
	FindHospitalByID(ctx context.Context, hospitalID string) (*domain.Hospital, error)

	// ListStates returns the distinct states that have at least one hospital.
	ListStates(ctx context.Context) ([]string, error)

	// ListDistricts returns the distinct districts within a state.
	ListDistricts(ctx context.Context, state string) ([]string, error)

	// SearchHospitals returns hospitals matching the filter.
	SearchHospitals(ctx context.Context, filter HospitalSearchFilter) ([]domain.Hospital, error)

	// UpdateBeds sets the bed counts for a hospital.
	UpdateBeds(ctx context.Context, hospitalID string, bedsTotal, bedsAvailable int) error
}
