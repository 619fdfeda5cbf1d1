package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/aptpod/devmgmt-go/message"
)

func TestResponseCode_IsAccepted(t *testing.T) {
	tests := []struct {
		code ResponseCode
		want bool
	}{
		{code: ResponseCodeAccepted, want: true},
		{code: ResponseCodeBadRequest, want: false},
		{code: ResponseCodeNotFound, want: false},
		{code: ResponseCodeInternalError, want: false},
		{code: ResponseCodeUnauthorized, want: false},
		{code: ResponseCodeUnknown, want: false},
		{code: ResponseCode(99), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.IsAccepted())
		})
	}
}

func TestResponseCode_String(t *testing.T) {
	assert.Equal(t, "ACCEPTED", ResponseCodeAccepted.String())
	assert.Equal(t, "NOT_FOUND", ResponseCodeNotFound.String())
	assert.Equal(t, "UNKNOWN", ResponseCode(99).String())
}

func TestParseResponseCode(t *testing.T) {
	for _, c := range []ResponseCode{
		ResponseCodeUnknown,
		ResponseCodeAccepted,
		ResponseCodeBadRequest,
		ResponseCodeNotFound,
		ResponseCodeInternalError,
		ResponseCodeUnauthorized,
	} {
		assert.Equal(t, c, ParseResponseCode(c.String()))
	}
	assert.Equal(t, ResponseCodeUnknown, ParseResponseCode("TEAPOT"))
}
