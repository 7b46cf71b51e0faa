package dto

import (
	"time"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
)

// CreateAppointmentRequest books an appointment at a hospital.
type CreateAppointmentRequest struct {
	HospitalID  string    `json:"hospitalID" binding:"required"`
	Department  string    `json:"department" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Reason      string    `json:"reason"`
}

// UpdateAppointmentRequest changes an appointment's status or schedule.
// Pointers distinguish omitted fields from zero values.
type UpdateAppointmentRequest struct {
	Status      *string    `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// ListAppointmentsParams defines pagination query parameters.
type ListAppointmentsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// AppointmentResponse is the client-facing appointment shape.
type AppointmentResponse struct {
	AppointmentID string    `json:"appointmentID"`
	UserID        string    `json:"userID"`
	HospitalID    string    `json:"hospitalID"`
	Department    string    `json:"department"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Reason        string    `json:"reason,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToAppointmentResponse converts a domain.Appointment to its response DTO.
func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.AppointmentID,
		UserID:        a.UserID,
		HospitalID:    a.HospitalID,
		Department:    a.Department,
		ScheduledAt:   a.ScheduledAt,
		Reason:        a.Reason,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}

// ToAppointmentListResponse converts a slice of appointments.
func ToAppointmentListResponse(as []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(as))
	for i := range as {
		out[i] = ToAppointmentResponse(&as[i])
	}
	return out
}
