package errors_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

func TestTypedErrors_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "invalid argument", err: NewInvalidArgumentError("scopeId", "must not be empty"), target: ErrInvalidArgument},
		{name: "authorization", err: &AuthorizationError{Domain: "device_management", Action: "read", ScopeID: "scope"}, target: ErrUnauthorized},
		{name: "transport", err: &TransportError{Err: io.ErrClosedPipe}, target: ErrTransport},
		{name: "timeout", err: &TimeoutError{Timeout: time.Second}, target: ErrTimeout},
		{name: "cancelled", err: &CancelledError{Err: context.Canceled}, target: ErrCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Errorf("wrapped: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.target)
			assert.ErrorIs(t, wrapped, ErrDevMgmt)
			assert.NotErrorIs(t, wrapped, ErrManagementResponse)
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	err := &TransportError{Err: io.ErrClosedPipe}
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestCancelledError_Unwrap(t *testing.T) {
	err := &CancelledError{Err: context.Canceled}
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestManagementResponseError_Is(t *testing.T) {
	err := &ManagementResponseError{
		Kind:             "snapshot.get",
		ResponseCode:     message.ResponseCodeNotFound,
		ExceptionMessage: "snapshot 7 not found",
	}
	assert.ErrorIs(t, err, ErrManagementResponse)
	assert.ErrorIs(t, err, ErrSnapshotManagement)
	assert.ErrorIs(t, err, ErrOperationNotFound)
	assert.ErrorIs(t, err, ErrDevMgmt)
	assert.NotErrorIs(t, err, ErrPackageManagement)
	assert.False(t, err.IsParseFailure())
	assert.Contains(t, err.Error(), "snapshot 7 not found")
}

func TestManagementResponseError_ParseFailure(t *testing.T) {
	cause := New("unexpected EOF")
	err := &ManagementResponseError{
		Kind:         "packages.get",
		ResponseCode: message.ResponseCodeAccepted,
		Body:         "<packages>",
		Err:          cause,
	}
	assert.ErrorIs(t, err, ErrPackageManagement)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrOperationNotFound)
	assert.True(t, err.IsParseFailure())
}

func TestManagementErrorKind(t *testing.T) {
	k := ManagementErrorKind("packages.install")
	assert.Equal(t, "packages", k.Application())
	assert.Equal(t, "install", k.Operation())
}

func TestAsManagementResponseError(t *testing.T) {
	org := &ManagementResponseError{Kind: "command.exec", ResponseCode: message.ResponseCodeInternalError}
	got, ok := AsManagementResponseError(Errorf("wrapped: %w", org))
	require.True(t, ok)
	assert.Same(t, org, got)

	_, ok = AsManagementResponseError(ErrTimeout)
	assert.False(t, ok)
}

func TestAsTimeoutError(t *testing.T) {
	org := &TimeoutError{Timeout: 2 * time.Second}
	got, ok := AsTimeoutError(Errorf("wrapped: %w", org))
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, got.Timeout)
}
