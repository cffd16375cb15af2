package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Is lets callers match an APIError against ErrUnauthorized and
// ErrUnavailable with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrUnavailable:
		switch e.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
	}
	return false
}

// newAPIError takes the message from a {"message": ...} body when present and
// falls back to the status text.
func newAPIError(status int, body []byte) *APIError {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && strings.TrimSpace(er.Message) != "" {
		return &APIError{StatusCode: status, Message: er.Message}
	}
	return &APIError{StatusCode: status, Message: http.StatusText(status)}
}
