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

// appointmentService implements portssvc.AppointmentSvcFacade.
type appointmentService struct {
	appointmentRepo portsrepo.AppointmentRepository
	hospitalRepo    portsrepo.HospitalRepository
	userRepo        portsrepo.UserRepository
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(appointmentRepo portsrepo.AppointmentRepository, hospitalRepo portsrepo.HospitalRepository, userRepo portsrepo.UserRepository) portssvc.AppointmentSvcFacade {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		hospitalRepo:    hospitalRepo,
		userRepo:        userRepo,
	}
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

func (s *appointmentService) CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest, requestingUserID string) (*domain.Appointment, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if requester.Role != domain.RolePatient {
		return nil, apperrors.ErrForbidden
	}

	// The hospital must exist before a booking is accepted against it.
	if _, err := s.hospitalRepo.FindHospitalByID(ctx, req.HospitalID); err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := domain.Appointment{
		AppointmentID: uuid.NewString(),
		UserID:        requestingUserID,
		HospitalID:    req.HospitalID,
		Department:    req.Department,
		ScheduledAt:   req.ScheduledAt,
		Reason:        req.Reason,
		Status:        domain.AppointmentRequested,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.appointmentRepo.SaveAppointment(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}
	return &appointment, nil
}

func (s *appointmentService) GetAppointment(ctx context.Context, appointmentID string, requestingUserID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, appointment, requestingUserID); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) ListAppointmentsForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, error) {
	appointments, err := s.appointmentRepo.FindAppointmentsByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *appointmentService) ListAppointmentsForHospital(ctx context.Context, hospitalID string, requestingUserID string, limit, offset int) ([]domain.Appointment, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if requester.Role != domain.RoleHospitalAdmin || requester.HospitalID != hospitalID {
		return nil, apperrors.ErrForbidden
	}
	appointments, err := s.appointmentRepo.FindAppointmentsByHospitalID(ctx, hospitalID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospital appointments: %w", err)
	}
	return appointments, nil
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, appointmentID string, req dto.UpdateAppointmentRequest, requestingUserID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, appointment, requestingUserID); err != nil {
		return nil, err
	}

	// Cancelled is terminal.
	if appointment.Status == domain.AppointmentCancelled {
		return nil, fmt.Errorf("appointment is cancelled: %w", apperrors.ErrValidation)
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		appointment.Status = status
	}
	if req.ScheduledAt != nil {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	appointment.LastUpdatedAt = time.Now()

	if err := s.appointmentRepo.UpdateAppointment(ctx, *appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appointment, nil
}

// authorize permits the booking patient and the booked hospital's admin.
func (s *appointmentService) authorize(ctx context.Context, appointment *domain.Appointment, requestingUserID string) error {
	if appointment.UserID == requestingUserID {
		return nil
	}
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if requester.Role == domain.RoleHospitalAdmin && requester.HospitalID == appointment.HospitalID {
		return nil
	}
	return apperrors.ErrForbidden
}
