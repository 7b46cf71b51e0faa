package models

import "time"

// Hospital is the persisted shape of a hospital document.
type Hospital struct {
	HospitalID    string    `bson:"_id"`
	Name          string    `bson:"name"`
	State         string    `bson:"state"`
	District      string    `bson:"district"`
	Address       string    `bson:"address,omitempty"`
	Phone         string    `bson:"phone,omitempty"`
	Email         string    `bson:"email,omitempty"`
	BedsTotal     int       `bson:"beds_total"`
	BedsAvailable int       `bson:"beds_available"`
	CreatedAt     time.Time `bson:"created_at"`
	LastUpdatedAt time.Time `bson:"last_updated_at"`
}
