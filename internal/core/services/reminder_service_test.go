package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portssvc "github.com/CareSetu/health_portal_app/internal/core/ports/services"
	"github.com/CareSetu/health_portal_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const staleAfter = 7 * 24 * time.Hour

type ReminderServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockMailer   *MockMailSender
	service      portssvc.ReminderSvcFacade
}

func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockMailer = new(MockMailSender)
	suite.service = services.NewReminderService(suite.mockUserRepo, suite.mockMailer, staleAfter, "http://localhost:3000")
}

func stalePatient(email string) domain.User {
	return domain.User{
		UserID:               uuid.NewString(),
		Email:                email,
		Name:                 "Stale Patient",
		Role:                 domain.RolePatient,
		WeeklyLogLastUpdated: time.Now().Add(-8 * 24 * time.Hour),
	}
}

func (suite *ReminderServiceTestSuite) TestRunPass_SendsAndFlags() {
	ctx := context.Background()
	patient := stalePatient("stale@example.com")

	suite.mockUserRepo.FindStalePatientsFn = func(ctx context.Context, cutoff time.Time) ([]domain.User, error) {
		suite.WithinDuration(time.Now().Add(-staleAfter), cutoff, 5*time.Second)
		return []domain.User{patient}, nil
	}

	var mailed []string
	suite.mockMailer.SendFn = func(ctx context.Context, to, subject, htmlBody string) error {
		mailed = append(mailed, to)
		return nil
	}
	var flagged []string
	suite.mockUserRepo.MarkReminderSentFn = func(ctx context.Context, userID string) error {
		flagged = append(flagged, userID)
		return nil
	}

	sent, err := suite.service.RunPass(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, sent)
	suite.Equal([]string{patient.Email}, mailed)
	suite.Equal([]string{patient.UserID}, flagged)
}

func (suite *ReminderServiceTestSuite) TestRunPass_NoEligiblePatients() {
	ctx := context.Background()
	suite.mockUserRepo.FindStalePatientsFn = func(ctx context.Context, cutoff time.Time) ([]domain.User, error) {
		return nil, nil
	}

	sent, err := suite.service.RunPass(ctx)

	suite.Require().NoError(err)
	suite.Zero(sent)
}

func (suite *ReminderServiceTestSuite) TestRunPass_MailFailureSkipsFlagAndContinues() {
	ctx := context.Background()
	failing := stalePatient("unreachable@example.com")
	ok := stalePatient("reachable@example.com")

	suite.mockUserRepo.FindStalePatientsFn = func(ctx context.Context, cutoff time.Time) ([]domain.User, error) {
		return []domain.User{failing, ok}, nil
	}
	suite.mockMailer.SendFn = func(ctx context.Context, to, subject, htmlBody string) error {
		if to == failing.Email {
			return assert.AnError
		}
		return nil
	}
	var flagged []string
	suite.mockUserRepo.MarkReminderSentFn = func(ctx context.Context, userID string) error {
		flagged = append(flagged, userID)
		return nil
	}

	sent, err := suite.service.RunPass(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, sent)
	// The unreachable patient keeps an unset flag so the next pass retries.
	suite.Equal([]string{ok.UserID}, flagged)
}

func (suite *ReminderServiceTestSuite) TestRunPass_QueryFailure() {
	ctx := context.Background()
	suite.mockUserRepo.FindStalePatientsFn = func(ctx context.Context, cutoff time.Time) ([]domain.User, error) {
		return nil, assert.AnError
	}

	sent, err := suite.service.RunPass(ctx)

	suite.Require().Error(err)
	suite.Zero(sent)
}

func (suite *ReminderServiceTestSuite) TestRunPass_CancelledContext() {
	cancelledCtx, cancel := context.WithCancel(context.Background())

	suite.mockUserRepo.FindStalePatientsFn = func(ctx context.Context, cutoff time.Time) ([]domain.User, error) {
		// Cancel after the scan so the loop observes the cancelled context.
		cancel()
		return []domain.User{stalePatient("a@example.com"), stalePatient("b@example.com")}, nil
	}
	suite.mockMailer.SendFn = func(ctx context.Context, to, subject, htmlBody string) error {
		suite.Fail("no mail may be sent after cancellation")
		return nil
	}

	sent, err := suite.service.RunPass(cancelledCtx)

	suite.Require().Error(err)
	suite.Zero(sent)
}

func TestReminderService(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
