package services_test

import (
	"context"
	"testing"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/core/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HospitalServiceTestSuite struct {
	suite.Suite
	mockHospitalRepo *MockHospitalRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.HospitalSvcFacade
}

func (suite *HospitalServiceTestSuite) SetupTest() {
	suite.mockHospitalRepo = new(MockHospitalRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewHospitalService(suite.mockHospitalRepo, suite.mockUserRepo)
}

func (suite *HospitalServiceTestSuite) TestListDistricts_RequiresState() {
	_, err := suite.service.ListDistricts(context.Background(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HospitalServiceTestSuite) TestSearchHospitals_MapsFilter() {
	ctx := context.Background()
	params := dto.SearchHospitalsParams{State: "Karnataka", District: "Bengaluru Urban", Name: "St", Limit: 10}

	suite.mockHospitalRepo.SearchHospitalsFn = func(ctx context.Context, filter portsrepo.HospitalSearchFilter) ([]domain.Hospital, error) {
		suite.Equal(params.State, filter.State)
		suite.Equal(params.District, filter.District)
		suite.Equal(params.Name, filter.NamePrefix)
		suite.Equal(params.Limit, filter.Limit)
		return []domain.Hospital{{Name: "St. Mary's"}}, nil
	}

	hospitals, err := suite.service.SearchHospitals(ctx, params)

	suite.Require().NoError(err)
	suite.Len(hospitals, 1)
}

func (suite *HospitalServiceTestSuite) TestCreateHospital_PatientForbidden() {
	ctx := context.Background()
	patientID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, patientID).
		Return(&domain.User{UserID: patientID, Role: domain.RolePatient}, nil).Once()

	hospital, err := suite.service.CreateHospital(ctx, dto.CreateHospitalRequest{Name: "X", State: "S", District: "D"}, patientID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(hospital)
	suite.mockHospitalRepo.AssertNotCalled(suite.T(), "SaveHospital", mock.Anything, mock.Anything)
}

func (suite *HospitalServiceTestSuite) TestUpdateBeds_Success() {
	ctx := context.Background()
	hospitalID := uuid.NewString()
	adminID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleHospitalAdmin, HospitalID: hospitalID}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()
	suite.mockHospitalRepo.On("UpdateBeds", ctx, hospitalID, 100, 40).Return(nil).Once()
	suite.mockHospitalRepo.On("FindHospitalByID", ctx, hospitalID).
		Return(&domain.Hospital{HospitalID: hospitalID, BedsTotal: 100, BedsAvailable: 40}, nil).Once()

	hospital, err := suite.service.UpdateBeds(ctx, hospitalID, dto.UpdateBedsRequest{BedsTotal: 100, BedsAvailable: 40}, adminID)

	suite.Require().NoError(err)
	suite.Equal(40, hospital.BedsAvailable)
	suite.mockHospitalRepo.AssertExpectations(suite.T())
}

func (suite *HospitalServiceTestSuite) TestUpdateBeds_OtherHospitalForbidden() {
	ctx := context.Background()
	adminID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleHospitalAdmin, HospitalID: "their-hospital"}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()

	_, err := suite.service.UpdateBeds(ctx, "someone-elses-hospital", dto.UpdateBedsRequest{BedsTotal: 10, BedsAvailable: 5}, adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockHospitalRepo.AssertNotCalled(suite.T(), "UpdateBeds", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HospitalServiceTestSuite) TestUpdateBeds_AvailableExceedsTotal() {
	ctx := context.Background()
	hospitalID := uuid.NewString()
	adminID := uuid.NewString()
	admin := &domain.User{UserID: adminID, Role: domain.RoleHospitalAdmin, HospitalID: hospitalID}

	suite.mockUserRepo.On("FindUserByID", ctx, adminID).Return(admin, nil).Once()

	_, err := suite.service.UpdateBeds(ctx, hospitalID, dto.UpdateBedsRequest{BedsTotal: 10, BedsAvailable: 11}, adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestHospitalService(t *testing.T) {
	suite.Run(t, new(HospitalServiceTestSuite))
}
