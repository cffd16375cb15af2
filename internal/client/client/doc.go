// Package client is the API gateway facade of resumeportal.
//
// # Overview
//
// HTTPClient turns domain operations (login, register, profile and resume
// calls) into JSON requests against {endpoint}/api/{resource}. Authenticated
// calls carry the session's bearer token; any 2xx response that includes a
// "token" field is written back to the session before the decoded response
// is returned, so login and register refresh the session transparently.
//
// Responses are decoded into the typed records of package models and
// validated; a body that does not match yields ErrInvalidResponse.
//
// # Error Handling
//
// No retries and no client-side timeout. Transport failures wrap
// ErrUnavailable. Non-2xx statuses return *APIError, which matches
// ErrUnauthorized (401, 403) or ErrUnavailable (502, 503, 504) with
// errors.Is.
//
// # Cached state
//
// The facade keeps the last fetched Student and Resume for convenience and
// resets both when the session publishes session.EventLoggedOut.
package client
