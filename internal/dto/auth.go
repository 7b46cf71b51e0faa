package dto

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email             string `json:"email" binding:"required,email"`
	Name              string `json:"name" binding:"required"`
	Password          string `json:"password" binding:"required,min=8"`
	ConfirmPassword   string `json:"confirmPassword" binding:"required"`
	Phone             string `json:"phone"`
	PreferredLanguage string `json:"preferredLanguage"`
	Role              string `json:"role" binding:"required,portalrole"`
	// HospitalID is required for hospital-admin accounts and ignored otherwise.
	HospitalID string `json:"hospitalID"`
}

// LoginRequest is the payload for local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RequestResetRequest asks for a password-reset link.
type RequestResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RedeemResetRequest redeems a reset token for a new password.
type RedeemResetRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// GoogleExchangeCodeRequest carries the authorization code from the frontend.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLoginURLResponse returns the Google consent URL and the CSRF state the
// frontend must echo back.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// MessageResponse is a generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
