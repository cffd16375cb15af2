package models

import "github.com/golang-jwt/jwt/v5"

// Credentials is sent once to the login or register resource and then
// discarded. Login only needs Email and Password; the remaining fields are
// filled in on registration.
type Credentials struct {
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Role        string `json:"role,omitempty"`
	Visa        string `json:"visa,omitempty"`
	StudyCourse string `json:"study_course,omitempty"`
	BatchNumber string `json:"batch_number,omitempty"`
}

// Registration carries the stricter rules applied before a register call.
type Registration struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	FirstName string `validate:"required"`
}

// RegistrationOf projects the fields validated on registration.
func RegistrationOf(c Credentials) Registration {
	return Registration{Email: c.Email, Password: c.Password, FirstName: c.FirstName}
}

// TokenResponse is the body returned by the login and register resources.
type TokenResponse struct {
	Token string `json:"token" validate:"required"`
}

// ErrorResponse is the body the backend sends with non-2xx statuses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Claims is the identity payload carried in the middle segment of the bearer
// token. Expiry and issue time come from the embedded registered claims
// (exp, iat).
type Claims struct {
	UserID      string   `json:"_id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name,omitempty"`
	Role        string   `json:"role,omitempty"`
	Visa        string   `json:"visa,omitempty"`
	StudyCourse string   `json:"study_course,omitempty"`
	BatchNumber string   `json:"batch_number,omitempty"`
	Profile     *Profile `json:"profile,omitempty"`

	jwt.RegisteredClaims
}
