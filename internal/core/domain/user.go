package domain

import "time"

// Role distinguishes the two account shapes the portal serves.
type Role string

const (
	RolePatient       Role = "PATIENT"
	RoleHospitalAdmin Role = "HOSPITAL_ADMIN"
)

// Valid reports whether r is one of the known roles. This is the single dispatch
// point for role checks; handlers and services must not compare raw strings.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleHospitalAdmin:
		return true
	}
	return false
}

// AuthProvider values for User.AuthProvider.
const (
	AuthProviderLocal  = ""
	AuthProviderGoogle = "google"
)

// User represents a portal account in the domain.
//
// An empty PasswordHash is the external-auth sentinel: such accounts exist
// only through their provider, and local login and password reset must refuse
// them. A Google-linked account that still carries a local password keeps both
// login paths.
type User struct {
	UserID            string `json:"userID"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	PasswordHash      string `json:"-"`
	AuthProvider      string `json:"authProvider,omitempty"`
	ProviderUserID    string `json:"-"`
	Role              Role   `json:"role"`
	Phone             string `json:"phone,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`

	// HospitalID links a hospital-admin account to the hospital it manages.
	// Empty for patient accounts.
	HospitalID string `json:"hospitalID,omitempty"`

	// Password reset state. ResetToken is present only between issuance and
	// redemption; it is cleared in the same operation that commits a new
	// password hash so a redeemed token can never replay.
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	// Weekly health log tracking, consumed by the reminder scheduler.
	WeeklyLogLastUpdated time.Time `json:"weeklyLogLastUpdated"`
	WeeklyReminderSent   bool      `json:"-"`

	AuditFields
}

// IsExternalAuth reports whether the account can only authenticate through an
// external provider. The empty hash is the sentinel, so a linked account with
// a local password is not external-only even though it records a provider.
func (u *User) IsExternalAuth() bool {
	return u.PasswordHash == "" && u.AuthProvider != AuthProviderLocal
}
