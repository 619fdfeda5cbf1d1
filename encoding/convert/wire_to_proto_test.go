package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/aptpod/devmgmt-go/encoding/convert"
	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

func TestWireToProto(t *testing.T) {
	tests := []struct {
		name string
		in   message.Message
		want *Envelope
	}{
		{name: "request", in: request, want: requestPB},
		{name: "request without body", in: emptyRequest, want: emptyRequestPB},
		{name: "response", in: response, want: responsePB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WireToProto(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWireToProto_Nil(t *testing.T) {
	_, err := WireToProto(nil)
	assert.ErrorIs(t, err, errors.ErrMalformedMessage)
}
