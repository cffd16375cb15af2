// Package common defines shared constants and sentinel errors used across
// client layers of resumeportal. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Token lifecycle errors.
	ErrNoToken        = errors.New("no token")
	ErrMalformedToken = errors.New("malformed token")

	// Authorization errors raised locally, before any request is made.
	ErrForbidden = errors.New("forbidden")
)
