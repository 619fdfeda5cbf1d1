/*
Package logrus は、 sirupsen/logrus を使用したロガーを提供するパッケージです。
*/
package logrus

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aptpod/devmgmt-go/log"
)

var _ log.Logger = (*Logger)(nil)

// Loggerは、logrusのロガーをラップしたlog.Loggerの実装です。
//
// コンテキストにセットされたトラックIDは、フィールドとして出力します。
type Logger struct {
	l logrus.FieldLogger
}

// Newは、Loggerを返却します。
func New(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.entry(ctx).Infof(format, args...)
}

func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.entry(ctx).Warnf(format, args...)
}

func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.entry(ctx).Errorf(format, args...)
}

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.entry(ctx).Debugf(format, args...)
}

func (l *Logger) entry(ctx context.Context) logrus.FieldLogger {
	fields := logrus.Fields{}
	if id := log.TrackTransportID(ctx); id != "" {
		fields["track_transport_id"] = id
	}
	if id := log.TrackCallID(ctx); id != "" {
		fields["track_call_id"] = id
	}
	if len(fields) == 0 {
		return l.l
	}
	return l.l.WithFields(fields)
}
