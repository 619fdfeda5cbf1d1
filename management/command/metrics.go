package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AlekSi/pointer"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

func encodeInput(in *Input) map[string]string {
	m := map[string]string{MetricCommand: in.Command}
	for i, arg := range in.Arguments {
		m[MetricArgument+strconv.Itoa(i)] = arg
	}
	keys := make([]string, 0, len(in.Environment))
	for k := range in.Environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		m[MetricEnvironment+strconv.Itoa(i)] = k + "=" + in.Environment[k]
	}
	if in.WorkingDir != "" {
		m[MetricWorkingDir] = in.WorkingDir
	}
	if in.Timeout != nil {
		m[MetricTimeout] = strconv.FormatInt(pointer.GetDuration(in.Timeout).Milliseconds(), 10)
	}
	if in.RunAsync != nil {
		m[MetricRunAsync] = strconv.FormatBool(pointer.GetBool(in.RunAsync))
	}
	if in.Password != "" {
		m[MetricPassword] = in.Password
	}
	return m
}

func decodeOutput(resp *message.Response) (*Output, error) {
	p := resp.Payload()
	out := &Output{
		ExceptionMessage: p.ExceptionMessage,
		ExceptionStack:   p.ExceptionStack,
	}
	out.Stdout, _ = p.Metric(MetricStdout)
	out.Stderr, _ = p.Metric(MetricStderr)
	if v, ok := p.Metric(MetricExitCode); ok {
		code, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, errors.Errorf("%s: %w", MetricExitCode, err)
		}
		out.ExitCode = code
	}
	if v, ok := p.Metric(MetricTimedOut); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, errors.Errorf("%s: %w", MetricTimedOut, err)
		}
		out.TimedOut = b
	}
	return out, nil
}

func formatMetrics(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%q", k, m[k])
	}
	return b.String()
}
