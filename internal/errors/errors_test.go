package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"user not found", ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"store unavailable", ErrStoreUnavailable, http.StatusInternalServerError, "STORE_UNAVAILABLE"},
		{"query rejected", ErrQueryRejected, http.StatusInternalServerError, "QUERY_REJECTED"},
		{"recognition unavailable", ErrRecognitionUnavailable, http.StatusInternalServerError, "RECOGNITION_UNAVAILABLE"},
		{"unknown error", fmt.Errorf("something else"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.ToErrorResponse().Code)
		})
	}
}

func TestMapErrorToHTTP_WrappedCauseSurvives(t *testing.T) {
	err := fmt.Errorf("%w: connection refused", ErrStoreUnavailable)

	httpErr := MapErrorToHTTP(err)

	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Contains(t, httpErr.Message, "connection refused")
}
