package auth

// RegisterRequest captures the signup form fields.
type RegisterRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	Username     string `json:"username" validate:"required,min=3"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,phone"`
	Password     string `json:"password" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Gender       string `json:"gender" validate:"required"`
	AgreeToTerms bool   `json:"agreeToTerms" validate:"eq=true"`
}

// LoginRequest carries the identifier (email or username) and credential.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UpdateProfileRequest holds a partial profile update; nil fields keep their
// prior values.
type UpdateProfileRequest struct {
	FullName     *string `json:"fullName,omitempty"`
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Location     *string `json:"location,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

// ForgotPasswordRequest starts the password recovery flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest completes the recovery flow with a minted token.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ResendVerificationRequest re-triggers the (simulated) verification mail.
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}
