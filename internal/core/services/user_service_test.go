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
	"github.com/CareSetu/health_portal_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- UpdateProfile Tests ---

func (suite *UserServiceTestSuite) TestUpdateProfile_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Name: "Old Name", Phone: "111"}

	newName := "New Name"
	req := dto.UpdateUserRequest{Name: &newName}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == newName && user.Phone == "111"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, userID, req, userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("111", updated.Phone)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_OtherUserForbidden() {
	ctx := context.Background()
	newName := "New Name"
	req := dto.UpdateUserRequest{Name: &newName}

	updated, err := suite.service.UpdateProfile(ctx, "victim-id", req, "attacker-id")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(updated)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

// --- TouchWeeklyLog Tests ---

func (suite *UserServiceTestSuite) TestTouchWeeklyLog_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	var touchedAt time.Time
	suite.mockUserRepo.TouchWeeklyLogFn = func(ctx context.Context, id string, at time.Time) error {
		suite.Equal(userID, id)
		touchedAt = at
		return nil
	}

	err := suite.service.TouchWeeklyLog(ctx, userID)

	suite.Require().NoError(err)
	suite.WithinDuration(time.Now(), touchedAt, 5*time.Second)
}

func (suite *UserServiceTestSuite) TestTouchWeeklyLog_UnknownUser() {
	ctx := context.Background()
	suite.mockUserRepo.TouchWeeklyLogFn = func(ctx context.Context, id string, at time.Time) error {
		return apperrors.ErrNotFound
	}

	err := suite.service.TouchWeeklyLog(ctx, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- GetOrCreateGoogleUser Tests ---

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_ExistingLinkedAccount() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-1", Email: "linked@example.com", Name: "Linked"}
	linked := &domain.User{UserID: uuid.NewString(), Email: info.Email, AuthProvider: domain.AuthProviderGoogle, ProviderUserID: info.ID}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.AuthProviderGoogle, info.ID).
		Return(linked, nil).Once()

	user, err := suite.service.GetOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(linked.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_LinksLocalAccountKeepingPassword() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-2", Email: "local@example.com", Name: "Local User"}
	hash, _ := utils.HashPassword("local-password")
	local := &domain.User{UserID: uuid.NewString(), Email: info.Email, PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.AuthProviderGoogle, info.ID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).Return(local, nil).Once()

	var saved domain.User
	suite.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, err := suite.service.GetOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(local.UserID, user.UserID)
	suite.Equal(info.ID, saved.ProviderUserID)
	// The provider linkage is recorded so the next Google login resolves by
	// provider details instead of re-linking by email.
	suite.Equal(domain.AuthProviderGoogle, saved.AuthProvider)
	// The local password survives linking, so local login still works.
	suite.Equal(hash, saved.PasswordHash)
	suite.False(saved.IsExternalAuth())
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_LinkedLocalAccountResolvesByProvider() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-4", Email: "local@example.com", Name: "Local User"}
	hash, _ := utils.HashPassword("local-password")
	linked := &domain.User{
		UserID:         uuid.NewString(),
		Email:          info.Email,
		PasswordHash:   hash,
		AuthProvider:   domain.AuthProviderGoogle,
		ProviderUserID: info.ID,
	}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.AuthProviderGoogle, info.ID).
		Return(linked, nil).Once()

	user, err := suite.service.GetOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(linked.UserID, user.UserID)
	// Subsequent Google logins must not fall back to the email-link path or
	// rewrite the record.
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestGetOrCreateGoogleUser_CreatesPatientAccount() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-3", Email: "fresh@example.com", Name: "Fresh User"}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.AuthProviderGoogle, info.ID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).
		Return(nil, apperrors.ErrNotFound).Once()

	var created domain.User
	suite.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		created = user
		return nil
	}

	user, err := suite.service.GetOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(info.Email, created.Email)
	suite.Equal(domain.RolePatient, created.Role)
	suite.Empty(created.PasswordHash)
	suite.Equal(domain.AuthProviderGoogle, created.AuthProvider)
	suite.True(user.IsExternalAuth())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
