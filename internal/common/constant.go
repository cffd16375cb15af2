// Package common contains shared constants and sentinel errors used across
// resumeportal components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// SessionTokenKey is the metadata key the bearer token is persisted under.
	SessionTokenKey = "session_token"

	// LastEmailKey is the metadata key holding the last e-mail used to log in.
	LastEmailKey = "last_email"

	// RoleAdmin is the only role value treated as administrator.
	RoleAdmin = "admin"
)
