package log

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aptpod/devmgmt-go/errors"
)

// Levelは、stdロガーが出力する最低のログレベルです。
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevelは、ログレベル名（debug, info, warn, warning, error）をLevelへ変換します。
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return 0, errors.NewInvalidArgumentError("level", fmt.Sprintf("unknown log level %q", s))
}

type stdLogger struct {
	l     *log.Logger
	level Level
}

func (l *stdLogger) Infof(ctx context.Context, format string, args ...any) {
	if l.level <= LevelInfo {
		outputLogf(ctx, l.l, LevelInfo, format, args...)
	}
}

func (l *stdLogger) Warnf(ctx context.Context, format string, args ...any) {
	if l.level <= LevelWarn {
		outputLogf(ctx, l.l, LevelWarn, format, args...)
	}
}

func (l *stdLogger) Errorf(ctx context.Context, format string, args ...any) {
	outputLogf(ctx, l.l, LevelError, format, args...)
}

func (l *stdLogger) Debugf(ctx context.Context, format string, args ...any) {
	if l.level <= LevelDebug {
		outputLogf(ctx, l.l, LevelDebug, format, args...)
	}
}

func outputLogf(ctx context.Context, l *log.Logger, level Level, format string, args ...any) {
	var b strings.Builder
	b.WriteString(level.String() + ": ")
	if id := TrackTransportID(ctx); id != "" {
		b.WriteString("track-transport-id:" + id + "\t")
	}
	if id := TrackCallID(ctx); id != "" {
		b.WriteString("track-call-id:" + id + "\t")
	}
	b.WriteString(fmt.Sprintf(format, args...))
	l.Output(3, b.String())
}

// NewStdは、`log` パッケージのデフォルトロガーへすべてのレベルを出力するロガーを返却します。
func NewStd() Logger {
	return NewStdWith(log.Default())
}

// NewStdWithは、指定した `log.Logger` へすべてのレベルを出力するロガーを返却します。
func NewStdWith(l *log.Logger) Logger {
	return NewStdWithLevel(l, LevelDebug)
}

// NewStdWithLevelは、level以上のログだけを `log.Logger` へ出力するロガーを返却します。
func NewStdWithLevel(l *log.Logger, level Level) Logger {
	return &stdLogger{l: l, level: level}
}
