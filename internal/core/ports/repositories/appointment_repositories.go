package repositories

import (
	"context"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	SaveAppointment(ctx context.Context, appointment domain.Appointment) error

	// FindAppointmentByID returns apperrors.ErrNotFound if absent.
	FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)

	// FindAppointmentsByUserID lists a user's appointments, newest first.
	FindAppointmentsByUserID(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, error)

	// FindAppointmentsByHospitalID lists a hospital's appointments, newest first.
	FindAppointmentsByHospitalID(ctx context.Context, hospitalID string, limit, offset int) ([]domain.Appointment, error)

	// UpdateAppointment persists status and schedule changes.
	UpdateAppointment(ctx context.Context, appointment domain.Appointment) error
}
