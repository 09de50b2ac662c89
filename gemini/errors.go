package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

type (
	// AuthError indicates a missing or rejected credential. It is surfaced
	// distinctly so clients can prompt for re-authentication.
	AuthError struct {
		Message string
	}

	// UpstreamError indicates the generation API call itself failed: quota,
	// malformed model identifier or a transient network fault. It carries the
	// upstream message and is never retried here.
	UpstreamError struct {
		Code    int
		Status  string
		Message string
	}
)

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Message
}

func (e *UpstreamError) Error() string {
	if e.Code == 0 {
		return "gemini: " + e.Message
	}
	return fmt.Sprintf("gemini: %v %v: %v", e.Code, e.Status, e.Message)
}

// classify maps an upstream client failure onto the error taxonomy.
// Credential rejections become AuthError, everything else UpstreamError.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{Message: apiErr.Message}
		}
		return &UpstreamError{Code: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
	}
	return &UpstreamError{Message: err.Error()}
}
