package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{New(CodeImport, "bad doc"), http.StatusBadRequest},
		{NotFound("gone"), http.StatusNotFound},
		{New(CodeUnauthorized, "no"), http.StatusUnauthorized},
		{Geofence(450, 300), http.StatusUnprocessableEntity},
		{New(CodeLocationDenied, "no gps"), http.StatusForbidden},
		{New(CodeLocationTimeout, "slow gps"), http.StatusGatewayTimeout},
		{New(CodeLocationUnavailable, "no fix"), http.StatusServiceUnavailable},
		{New(CodeAssistant, "down"), http.StatusServiceUnavailable},
		{Storage(errors.New("disk full")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestGeofenceCarriesDistance(t *testing.T) {
	err := Geofence(451.7, 300)
	assert.Equal(t, CodeGeofenceRejected, err.Code)
	assert.InDelta(t, 451.7, err.DistanceMeters, 1e-9)
	assert.Contains(t, err.Message, "452m")
}

func TestCodeOfUnwrapsNestedErrors(t *testing.T) {
	wrapped := Storage(errors.New("io"))
	assert.Equal(t, CodeStorage, CodeOf(wrapped))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))

	var appErr *Error
	assert.True(t, errors.As(wrapped, &appErr))
	assert.EqualError(t, appErr.Unwrap(), "io")
}
