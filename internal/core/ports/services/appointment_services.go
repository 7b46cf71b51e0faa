package services

import (
	"context"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
	"github.com/CareSetu/health_portal_app/internal/dto"
)

// AppointmentSvcFacade manages patient appointments against hospitals.
type AppointmentSvcFacade interface {
	// CreateAppointment books an appointment for the requesting patient.
	CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest, requestingUserID string) (*domain.Appointment, error)

	// GetAppointment returns an appointment visible to the requester (owner or
	// the hospital's admin).
	GetAppointment(ctx context.Context, appointmentID string, requestingUserID string) (*domain.Appointment, error)

	// ListAppointmentsForUser lists the requester's own appointments.
	ListAppointmentsForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, error)

	// ListAppointmentsForHospital lists a hospital's appointments (admin only).
	ListAppointmentsForHospital(ctx context.Context, hospitalID string, requestingUserID string, limit, offset int) ([]domain.Appointment, error)

	// UpdateAppointment applies status/schedule changes subject to the
	// lifecycle rules (cancelled is terminal) and the requester's role.
	UpdateAppointment(ctx context.Context, appointmentID string, req dto.UpdateAppointmentRequest, requestingUserID string) (*domain.Appointment, error)
}
