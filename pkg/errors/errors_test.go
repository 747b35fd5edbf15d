package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsCodeThroughWrapping(t *testing.T) {
	base := New(CodeNotFound, "contract not found")
	wrapped := fmt.Errorf("handler: %w", base)

	require.True(t, IsCode(wrapped, CodeNotFound))
	require.False(t, IsCode(wrapped, CodeConflict))
	require.False(t, IsCode(errors.New("plain"), CodeNotFound))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[Code]int{
		CodeInvalid:      http.StatusBadRequest,
		CodeNotFound:     http.StatusNotFound,
		CodeConflict:     http.StatusConflict,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeUnavailable:  http.StatusServiceUnavailable,
		CodeInternal:     http.StatusInternalServerError,
	}
	for code, want := range cases {
		require.Equal(t, want, HTTPStatus(New(code, "x")), string(code))
	}
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestClientMessageHidesWrappedCause(t *testing.T) {
	cause := errors.New(`pq: relation "contracts" does not exist (SQLSTATE 42P01)`)
	err := Wrap(cause, CodeInternal, "list contracts failed")

	require.Equal(t, "list contracts failed", ClientMessage(err))
	require.Contains(t, err.Error(), "SQLSTATE")
	require.Equal(t, "internal server error", ClientMessage(cause))
}

func TestWithMeta(t *testing.T) {
	err := New(CodeInvalid, "bad input").WithMeta("field", "status")
	require.Equal(t, "status", err.Meta["field"])
}
