package json_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptpod/devmgmt-go/encoding"
	. "github.com/aptpod/devmgmt-go/encoding/json"
	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

func Test_encoder_ContentType(t *testing.T) {
	assert.Equal(t, encoding.ContentTypeText, NewEncoding().ContentType())
	assert.Equal(t, encoding.NameJSON, NewEncoding().Name())
}

func Test_encoder_EncodeTo_DecodeFrom(t *testing.T) {
	tests := []struct {
		name string
		in   message.Message
		exp  message.Message
	}{
		{name: "request", in: request, exp: request},
		{name: "request with body", in: requestWithBody, exp: requestWithBody},
		{name: "response", in: response, exp: response},
		{name: "failed response", in: failedResponse, exp: failedResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			testee := NewEncoding()
			writtenBytes, err := testee.EncodeTo(&buf, tt.in)
			require.NoError(t, err)

			readBytes, m, err := testee.DecodeFrom(&buf)
			require.NoError(t, err)

			assert.Equal(t, readBytes, writtenBytes)
			assert.Equal(t, tt.exp, m)
		})
	}
}

func Test_encoder_EncodeTo_OrigName(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewEncoding().EncodeTo(&buf, request)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"correlation_id":"correlation-1"`)
	assert.Contains(t, buf.String(), `"app_name":"DEPLOY-V2"`)
}

func Test_encoder_DecodeFrom_Malformed(t *testing.T) {
	_, _, err := NewEncoding().DecodeFrom(strings.NewReader(`{"kind":`))
	assert.ErrorIs(t, err, errors.ErrMalformedMessage)
}
