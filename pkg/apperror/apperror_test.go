package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", NewUnauthorized("Not authenticated", nil), http.StatusUnauthorized},
		{"invalid input", NewInvalidInput("Invalid items format", nil), http.StatusBadRequest},
		{"store", NewStore(errors.New("duplicate key")), http.StatusInternalServerError},
		{"upstream", NewUpstream("llm failed", errors.New("429")), http.StatusBadGateway},
		{"permission", NewPermissionDenied("admin only"), http.StatusForbidden},
		{"not found", NewNotFound("profile", "x"), http.StatusNotFound},
		{"wrapped", fmt.Errorf("outer: %w", NewInvalidInput("bad", nil)), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestNewStore_PassesMessageThrough(t *testing.T) {
	err := NewStore(errors.New("relation \"interviews\" does not exist"))
	assert.Equal(t, "relation \"interviews\" does not exist", Message(err))
	assert.ErrorIs(t, err, ErrStore)
}

func TestMessage_UnknownError(t *testing.T) {
	assert.Equal(t, ErrInternal.Error(), Message(errors.New("raw")))
}
