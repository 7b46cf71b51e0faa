package models

import "time"

// User is the persisted shape of a portal account, one document per user in the
// users collection. Email carries a unique index.
type User struct {
	UserID            string `bson:"_id"`
	Email             string `bson:"email"`
	Name              string `bson:"name"`
	PasswordHash      string `bson:"password_hash"`
	AuthProvider      string `bson:"auth_provider,omitempty"`
	ProviderUserID    string `bson:"provider_user_id,omitempty"`
	Role              string `bson:"role"`
	Phone             string `bson:"phone,omitempty"`
	PreferredLanguage string `bson:"preferred_language,omitempty"`
	HospitalID        string `bson:"hospital_id,omitempty"`

	ResetToken       string     `bson:"reset_token,omitempty"`
	ResetTokenExpiry *time.Time `bson:"reset_token_expiry,omitempty"`

	WeeklyLogLastUpdated time.Time `bson:"weekly_log_last_updated"`
	WeeklyReminderSent   bool      `bson:"weekly_reminder_sent"`

	CreatedAt     time.Time `bson:"created_at"`
	LastUpdatedAt time.Time `bson:"last_updated_at"`
}
