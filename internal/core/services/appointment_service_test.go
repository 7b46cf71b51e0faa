package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/CareSetu/health_portal_app/internal/apperrors"
	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/core/services"
	"github.com/CareSetu/health_portal_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AppointmentServiceTestSuite struct {
	suite.Suite
	mockAppointmentRepo *MockAppointmentRepository
	mockHospitalRepo    *MockHospitalRepository
	mockUserRepo        *MockUserRepository
	service             portssvc.AppointmentSvcFacade
}

func (suite *AppointmentServiceTestSuite) SetupTest() {
	suite.mockAppointmentRepo = new(MockAppointmentRepository)
	suite.mockHospitalRepo = new(MockHospitalRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewAppointmentService(suite.mockAppointmentRepo, suite.mockHospitalRepo, suite.mockUserRepo)
}

func (suite *AppointmentServiceTestSuite) TestCreateAppointment_Success() {
	ctx := context.Background()
	patientID := uuid.NewString()
	hospitalID := uuid.NewString()
	req := dto.CreateAppointmentRequest{
		HospitalID:  hospitalID,
		Department:  "Cardiology",
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Reason:      "follow-up",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, patientID).
		Return(&domain.User{UserID: patientID, Role: domain.RolePatient}, nil).Once()
	suite.mockHospitalRepo.On("FindHospitalByID", ctx, hospitalID).
		Return(&domain.Hospital{HospitalID: hospitalID}, nil).Once()
	suite.mockAppointmentRepo.On("SaveAppointment", ctx, mock.MatchedBy(func(a domain.Appointment) bool {
		return a.UserID == patientID && a.HospitalID == hospitalID && a.Status == domain.AppointmentRequested
	})).Return(nil).Once()

	appointment, err := suite.service.CreateAppointment(ctx, req, patientID)

	suite.Require().NoError(err)
	suite.Equal(domain.AppointmentRequested, appointment.Status)
	suite.NotEmpty(appointment.AppointmentID)
	suite.mockAppointmentRepo.AssertExpectations(suite.T())
}

func (suite *AppointmentServiceTestSuite) TestCreateAppointment_AdminForbidden() {
	ctx := context.Background()
	adminID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, Role: domain.RoleHospitalAdmin, HospitalID: "h-1"}, nil).Once()

	_, err := suite.service.CreateAppointment(ctx, dto.CreateAppointmentRequest{HospitalID: "h-1"}, adminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockAppointmentRepo.AssertNotCalled(suite.T(), "SaveAppointment", mock.Anything, mock.Anything)
}

func (suite *AppointmentServiceTestSuite) TestCreateAppointment_UnknownHospital() {
	ctx := context.Background()
	patientID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, patientID).
		Return(&domain.User{UserID: patientID, Role: domain.RolePatient}, nil).Once()
	suite.mockHospitalRepo.On("FindHospitalByID", ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAppointment(ctx, dto.CreateAppointmentRequest{HospitalID: "ghost"}, patientID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AppointmentServiceTestSuite) TestGetAppointment_OwnerAllowed() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	appointment := &domain.Appointment{AppointmentID: "a-1", UserID: ownerID, HospitalID: "h-1"}

	suite.mockAppointmentRepo.On("FindAppointmentByID", ctx, "a-1").Return(appointment, nil).Once()

	got, err := suite.service.GetAppointment(ctx, "a-1", ownerID)

	suite.Require().NoError(err)
	suite.Equal(appointment, got)
	// The owner path must not need a user lookup.
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *AppointmentServiceTestSuite) TestGetAppointment_HospitalAdminAllowed() {
	ctx := context.Background()
	adminID := uuid.NewString()
	appointment := &domain.Appointment{AppointmentID: "a-1", UserID: "someone-else", HospitalID: "h-1"}

	suite.mockAppointmentRepo.On("FindAppointmentByID", ctx, "a-1").Return(appointment, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, Role: domain.RoleHospitalAdmin, HospitalID: "h-1"}, nil).Once()

	got, err := suite.service.GetAppointment(ctx, "a-1", adminID)

	suite.Require().NoError(err)
	suite.Equal(appointment, got)
}

func (suite *AppointmentServiceTestSuite) TestGetAppointment_StrangerForbidden() {
	ctx := context.Background()
	strangerID := uuid.NewString()
	appointment := &domain.Appointment{AppointmentID: "a-1", UserID: "someone-else", HospitalID: "h-1"}

	suite.mockAppointmentRepo.On("FindAppointmentByID", ctx, "a-1").Return(appointment, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, strangerID).
		Return(&domain.User{UserID: strangerID, Role: domain.RolePatient}, nil).Once()

	_, err := suite.service.GetAppointment(ctx, "a-1", strangerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AppointmentServiceTestSuite) TestUpdateAppointment_CancelledIsTerminal() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	appointment := &domain.Appointment{
		AppointmentID: "a-1",
		UserID:        ownerID,
		HospitalID:    "h-1",
		Status:        domain.AppointmentCancelled,
	}

	suite.mockAppointmentRepo.On("FindAppointmentByID", ctx, "a-1").Return(appointment, nil).Once()

	confirmed := string(domain.AppointmentConfirmed)
	_, err := suite.service.UpdateAppointment(ctx, "a-1", dto.UpdateAppointmentRequest{Status: &confirmed}, ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAppointmentRepo.AssertNotCalled(suite.T(), "UpdateAppointment", mock.Anything, mock.Anything)
}

func (suite *AppointmentServiceTestSuite) TestUpdateAppointment_UnknownStatus() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	appointment := &domain.Appointment{AppointmentID: "a-1", UserID: ownerID, Status: domain.AppointmentRequested}

	suite.mockAppointmentRepo.On("FindAppointmentByID", ctx, "a-1").Return(appointment, nil).Once()

	bogus := "TELEPORTED"
	_, err := suite.service.UpdateAppointment(ctx, "a-1", dto.UpdateAppointmentRequest{Status: &bogus}, ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AppointmentServiceTestSuite) TestUpdateAppointment_ConfirmAndReschedule() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	appointment := &domain.Appointment{
		AppointmentID: "a-1",
		UserID:        ownerID,
		HospitalID:    "h-1",
		Status:        domain.AppointmentRequested,
		ScheduledAt:   time.Now().Add(24 * time.Hour),
	}

	suite.mockAppointmentRepo.On("FindAppointmentByID", ctx, "a-1").Return(appointment, nil).Once()

	newTime := time.Now().Add(72 * time.Hour)
	confirmed := string(domain.AppointmentConfirmed)
	suite.mockAppointmentRepo.On("UpdateAppointment", ctx, mock.MatchedBy(func(a domain.Appointment) bool {
		return a.Status == domain.AppointmentConfirmed && a.ScheduledAt.Equal(newTime)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAppointment(ctx, "a-1", dto.UpdateAppointmentRequest{Status: &confirmed, ScheduledAt: &newTime}, ownerID)

	suite.Require().NoError(err)
	suite.Equal(domain.AppointmentConfirmed, updated.Status)
	suite.True(updated.ScheduledAt.Equal(newTime))
	suite.mockAppointmentRepo.AssertExpectations(suite.T())
}

func (suite *AppointmentServiceTestSuite) TestListAppointmentsForHospital_WrongAdminForbidden() {
	ctx := context.Background()
	adminID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, adminID).
		Return(&domain.User{UserID: adminID, Role: domain.RoleHospitalAdmin, HospitalID: "their-hospital"}, nil).Once()

	_, err := suite.service.ListAppointmentsForHospital(ctx, "other-hospital", adminID, 20, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestAppointmentService(t *testing.T) {
	suite.Run(t, new(AppointmentServiceTestSuite))
}
