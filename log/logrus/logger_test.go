package logrus_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptpod/devmgmt-go/log"
	. "github.com/aptpod/devmgmt-go/log/logrus"
)

func TestLogger(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	testee := New(l)

	ctx := log.WithTrackCallID(context.Background(), "correlation")
	testee.Infof(ctx, "message %s", "info")
	testee.Warnf(ctx, "message %s", "warn")
	testee.Errorf(ctx, "message %s", "error")
	testee.Debugf(context.Background(), "message %s", "debug")

	entries := hook.AllEntries()
	require.Len(t, entries, 4)
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, "message info", entries[0].Message)
	assert.Equal(t, "correlation", entries[0].Data["track_call_id"])
	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
	assert.Equal(t, logrus.ErrorLevel, entries[2].Level)
	assert.Equal(t, logrus.DebugLevel, entries[3].Level)
	assert.NotContains(t, entries[3].Data, "track_call_id")
}
