package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/course-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", &ErrValidation{Field: "limit", Message: "failed max=50"}, http.StatusBadRequest},
		{"malformed", &ErrMalformedBody{Err: errors.New("unexpected EOF")}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("failed to decode: %w", &ErrValidation{}), http.StatusBadRequest},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestValidationError_NamesField(t *testing.T) {
	req := types.RecommendationRequest{
		Preferences: types.Preferences{TimeAvailability: "Someday"},
	}
	err := validationError(req.Validate())

	var verr *ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Preferences.TimeAvailability", verr.Field)
	assert.Contains(t, verr.Message, "oneof")
}

func TestValidationError_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("plain")
	assert.Equal(t, plain, validationError(plain))
}
