package services_test

import (
	"context"
	"time"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	portsrepo "github.com/CareSetu/health_portal_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	SaveUserFn                  func(ctx context.Context, user domain.User) error
	FindUserByIDFn              func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn           func(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderDetailsFn func(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
	UpdateUserFn                func(ctx context.Context, user domain.User) error
	SetResetTokenFn             func(ctx context.Context, userID string, token string, expiry time.Time) error
	UpdatePasswordFn            func(ctx context.Context, userID string, passwordHash string) error
	TouchWeeklyLogFn            func(ctx context.Context, userID string, at time.Time) error
	MarkReminderSentFn          func(ctx context.Context, userID string) error
	FindStalePatientsFn         func(ctx context.Context, cutoff time.Time) ([]domain.User, error)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error) {
	if m.FindUserByProviderDetailsFn != nil {
		return m.FindUserByProviderDetailsFn(ctx, authProvider, providerUserID)
	}
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID string, token string, expiry time.Time) error {
	if m.SetResetTokenFn != nil {
		return m.SetResetTokenFn(ctx, userID, token, expiry)
	}
	args := m.Called(ctx, userID, token, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, userID, passwordHash)
	}
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) TouchWeeklyLog(ctx context.Context, userID string, at time.Time) error {
	if m.TouchWeeklyLogFn != nil {
		return m.TouchWeeklyLogFn(ctx, userID, at)
	}
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) MarkReminderSent(ctx context.Context, userID string) error {
	if m.MarkReminderSentFn != nil {
		return m.MarkReminderSentFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) FindStalePatients(ctx context.Context, cutoff time.Time) ([]domain.User, error) {
	if m.FindStalePatientsFn != nil {
		return m.FindStalePatientsFn(ctx, cutoff)
	}
	args := m.Called(ctx, cutoff)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock HospitalRepository ---
type MockHospitalRepository struct {
	mock.Mock
	SaveHospitalFn     func(ctx context.Context, hospital domain.Hospital) error
	FindHospitalByIDFn func(ctx context.Context, hospitalID string) (*domain.Hospital, error)
	ListStatesFn       func(ctx context.Context) ([]string, error)
	ListDistrictsFn    func(ctx context.Context, state string) ([]string, error)
	SearchHospitalsFn  func(ctx context.Context, filter portsrepo.HospitalSearchFilter) ([]domain.Hospital, error)
	UpdateBedsFn       func(ctx context.Context, hospitalID string, bedsTotal, bedsAvailable int) error
}

func (m *MockHospitalRepository) SaveHospital(ctx context.Context, hospital domain.Hospital) error {
	if m.SaveHospitalFn != nil {
		return m.SaveHospitalFn(ctx, hospital)
	}
	args := m.Called(ctx, hospital)
	return args.Error(0)
}

func (m *MockHospitalRepository) FindHospitalByID(ctx context.Context, hospitalID string) (*domain.Hospital, error) {
	if m.FindHospitalByIDFn != nil {
		return m.FindHospitalByIDFn(ctx, hospitalID)
	}
	args := m.Called(ctx, hospitalID)
	var hospital *domain.Hospital
	if args.Get(0) != nil {
		hospital = args.Get(0).(*domain.Hospital)
	}
	return hospital, args.Error(1)
}

func (m *MockHospitalRepository) ListStates(ctx context.Context) ([]string, error) {
	if m.ListStatesFn != nil {
		return m.ListStatesFn(ctx)
	}
	args := m.Called(ctx)
	var states []string
	if args.Get(0) != nil {
		states = args.Get(0).([]string)
	}
	return states, args.Error(1)
}

func (m *MockHospitalRepository) ListDistricts(ctx context.Context, state string) ([]string, error) {
	if m.ListDistrictsFn != nil {
		return m.ListDistrictsFn(ctx, state)
	}
	args := m.Called(ctx, state)
	var districts []string
	if args.Get(0) != nil {
		districts = args.Get(0).([]string)
	}
	return districts, args.Error(1)
}

func (m *MockHospitalRepository) SearchHospitals(ctx context.Context, filter portsrepo.HospitalSearchFilter) ([]domain.Hospital, error) {
	if m.SearchHospitalsFn != nil {
		return m.SearchHospitalsFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var hospitals []domain.Hospital
	if args.Get(0) != nil {
		hospitals = args.Get(0).([]domain.Hospital)
	}
	return hospitals, args.Error(1)
}

func (m *MockHospitalRepository) UpdateBeds(ctx context.Context, hospitalID string, bedsTotal, bedsAvailable int) error {
	if m.UpdateBedsFn != nil {
		return m.UpdateBedsFn(ctx, hospitalID, bedsTotal, bedsAvailable)
	}
	args := m.Called(ctx, hospitalID, bedsTotal, bedsAvailable)
	return args.Error(0)
}

// --- Mock AppointmentRepository ---
type MockAppointmentRepository struct {
	mock.Mock
	SaveAppointmentFn            func(ctx context.Context, appointment domain.Appointment) error
	FindAppointmentByIDFn        func(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	FindAppointmentsByUserIDFn   func(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, error)
	FindAppointmentsByHospitalFn func(ctx context.Context, hospitalID string, limit, offset int) ([]domain.Appointment, error)
	UpdateAppointmentFn          func(ctx context.Context, appointment domain.Appointment) error
}

func (m *MockAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	if m.SaveAppointmentFn != nil {
		return m.SaveAppointmentFn(ctx, appointment)
	}
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	if m.FindAppointmentByIDFn != nil {
		return m.FindAppointmentByIDFn(ctx, appointmentID)
	}
	args := m.Called(ctx, appointmentID)
	var appointment *domain.Appointment
	if args.Get(0) != nil {
		appointment = args.Get(0).(*domain.Appointment)
	}
	return appointment, args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, error) {
	if m.FindAppointmentsByUserIDFn != nil {
		return m.FindAppointmentsByUserIDFn(ctx, userID, limit, offset)
	}
	args := m.Called(ctx, userID, limit, offset)
	var appointments []domain.Appointment
	if args.Get(0) != nil {
		appointments = args.Get(0).([]domain.Appointment)
	}
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByHospitalID(ctx context.Context, hospitalID string, limit, offset int) ([]domain.Appointment, error) {
	if m.FindAppointmentsByHospitalFn != nil {
		return m.FindAppointmentsByHospitalFn(ctx, hospitalID, limit, offset)
	}
	args := m.Called(ctx, hospitalID, limit, offset)
	var appointments []domain.Appointment
	if args.Get(0) != nil {
		appointments = args.Get(0).([]domain.Appointment)
	}
	return appointments, args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment domain.Appointment) error {
	if m.UpdateAppointmentFn != nil {
		return m.UpdateAppointmentFn(ctx, appointment)
	}
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

// --- Mock SessionStore ---
type MockSessionStore struct {
	mock.Mock
	CreateFn  func(ctx context.Context, userID string) (*domain.Session, error)
	GetFn     func(ctx context.Context, sessionID string) (*domain.Session, error)
	DestroyFn func(ctx context.Context, sessionID string) error
}

func (m *MockSessionStore) Create(ctx context.Context, userID string) (*domain.Session, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionStore) Destroy(ctx context.Context, sessionID string) error {
	if m.DestroyFn != nil {
		return m.DestroyFn(ctx, sessionID)
	}
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// --- Mock MailSender ---
// SendFn is preferred over mock expectations here because some callers deliver
// mail from a goroutine, which races testify's expectation bookkeeping.
type MockMailSender struct {
	mock.Mock
	SendFn func(ctx context.Context, to, subject, htmlBody string) error
}

func (m *MockMailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendFn != nil {
		return m.SendFn(ctx, to, subject, htmlBody)
	}
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}
