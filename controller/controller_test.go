package controller

import (
	"errors"
	"net/http"
	"testing"

	"orgsub-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"not found", models.NewNotFoundError("missing"), http.StatusNotFound},
		{"conflict", models.NewConflictError("duplicate"), http.StatusConflict},
		{"invalid state", models.NewInvalidStateError("already approved"), http.StatusConflict},
		{"storage", models.NewStorageError("disk full", nil), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusForError(tc.err))
		})
	}
}
