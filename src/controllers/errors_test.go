package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrInvalidState, http.StatusConflict},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrInvalidActor, http.StatusBadRequest},
		{services.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("%w: equipment 42", services.ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), "error: %v", tc.err)
	}
}
