package models

import "time"

// Appointment is the persisted shape of an appointment document.
type Appointment struct {
	AppointmentID string    `bson:"_id"`
	UserID        string    `bson:"user_id"`
	HospitalID    string    `bson:"hospital_id"`
	Department    string    `bson:"department"`
	ScheduledAt   time.Time `bson:"scheduled_at"`
	Reason        string    `bson:"reason,omitempty"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"created_at"`
	LastUpdatedAt time.Time `bson:"last_updated_at"`
}
