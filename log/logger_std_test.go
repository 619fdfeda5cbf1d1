package log_test

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/aptpod/devmgmt-go/log"
)

func Test_stdLogger(t *testing.T) {
	testee := NewStd()
	ctx := context.Background()
	require.NotPanics(t, func() { testee.Infof(ctx, "message") })
	require.NotPanics(t, func() { testee.Warnf(ctx, "message") })
	require.NotPanics(t, func() { testee.Errorf(ctx, "message") })
	require.NotPanics(t, func() { testee.Debugf(ctx, "message") })
}

func Test_stdLogger_TrackCallID(t *testing.T) {
	var buf bytes.Buffer
	testee := NewStdWith(log.New(&buf, "", 0))
	ctx := WithTrackCallID(context.Background(), "correlation")
	testee.Warnf(ctx, "discard %s", "response")
	require.Equal(t, "WARN: track-call-id:correlation\tdiscard response\n", buf.String())
}

func Example_stdLogger() {
	ctx := context.Background()
	testee := NewStd()
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Lshortfile)
	testee.Infof(ctx, "message %s", "info")
	testee.Warnf(ctx, "message %s", "warn")
	testee.Errorf(ctx, "message %s", "error")
	testee.Debugf(ctx, "message %s", "debug")

	// Output:
	// logger_std_test.go:37: INFO: message info
	// logger_std_test.go:38: WARN: message warn
	// logger_std_test.go:39: ERROR: message error
	// logger_std_test.go:40: DEBUG: message debug
}

func Test_stdLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	testee := NewStdWithLevel(log.New(&buf, "", 0), LevelWarn)
	ctx := context.Background()
	testee.Debugf(ctx, "debug")
	testee.Infof(ctx, "info")
	testee.Warnf(ctx, "warn")
	testee.Errorf(ctx, "error")
	require.Equal(t, "WARN: warn\nERROR: error\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "trace", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
