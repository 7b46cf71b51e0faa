package domain

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentRequested AppointmentStatus = "REQUESTED"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// Valid reports whether s is a known appointment status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentRequested, AppointmentConfirmed, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment is a patient's booking against a hospital.
// Cancelled is terminal; no transition leaves it.
type Appointment struct {
	AppointmentID string            `json:"appointmentID"`
	UserID        string            `json:"userID"`
	HospitalID    string            `json:"hospitalID"`
	Department    string            `json:"department"`
	ScheduledAt   time.Time         `json:"scheduledAt"`
	Reason        string            `json:"reason,omitempty"`
	Status        AppointmentStatus `json:"status"`
	AuditFields
}
