package dto

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued access token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// ChangePasswordRequest replaces the operator password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=4,max=72"`
}

// AuthCheckResponse reports whether a password has been stored yet.
type AuthCheckResponse struct {
	PasswordSet bool `json:"passwordSet"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
