package dto

import (
	"time"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
)

// UserResponse is the identity shape returned to clients. The password hash and
// reset token never appear here.
type UserResponse struct {
	UserID               string    `json:"userID"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	Role                 string    `json:"role"`
	AuthProvider         string    `json:"authProvider,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	PreferredLanguage    string    `json:"preferredLanguage,omitempty"`
	HospitalID           string    `json:"hospitalID,omitempty"`
	WeeklyLogLastUpdated time.Time `json:"weeklyLogLastUpdated"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:               u.UserID,
		Email:                u.Email,
		Name:                 u.Name,
		Role:                 string(u.Role),
		AuthProvider:         u.AuthProvider,
		Phone:                u.Phone,
		PreferredLanguage:    u.PreferredLanguage,
		HospitalID:           u.HospitalID,
		WeeklyLogLastUpdated: u.WeeklyLogLastUpdated,
		CreatedAt:            u.CreatedAt,
	}
}

// UpdateUserRequest defines the data allowed for updating a profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	PreferredLanguage *string `json:"preferredLanguage"`
}
