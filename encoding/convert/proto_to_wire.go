package convert

import (
	"time"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

// ProtoToWireは、エンベロープをメッセージへ変換します。
func ProtoToWire(in *Envelope) (message.Message, error) {
	if in == nil {
		return nil, errors.Errorf("nil envelope: %w", errors.ErrMalformedMessage)
	}
	ch := toChannel(in.Channel)
	switch in.Kind {
	case KindRequest:
		p, _, _ := toPayload(in.Payload)
		req, err := message.NewRequestWithCorrelationID(in.ScopeId, in.DeviceId, ch, p, toTime(in.TimestampNanos), in.CorrelationId)
		if err != nil {
			return nil, errorConvertToWire(in, err)
		}
		return req, nil
	case KindResponse:
		if in.CorrelationId == "" {
			return nil, errorConvertToWire(in, errors.New("correlation id is required"))
		}
		p, exceptionMessage, exceptionStack := toPayload(in.Payload)
		return message.NewResponse(in.ScopeId, in.DeviceId, ch, message.ResponseCode(in.ResponseCode), message.ResponsePayload{
			Payload:          p,
			ExceptionMessage: exceptionMessage,
			ExceptionStack:   exceptionStack,
		}, toTime(in.TimestampNanos), in.CorrelationId), nil
	default:
		return nil, errorConvertToWire(in, errors.Errorf("unknown kind %d", in.Kind))
	}
}

func toChannel(in *EnvelopeChannel) message.Channel {
	if in == nil {
		return message.Channel{}
	}
	var params map[string]string
	if len(in.Parameters) != 0 {
		params = in.Parameters
	}
	return message.Channel{
		AppName:    in.AppName,
		AppVersion: in.AppVersion,
		Method:     message.Method(in.Method),
		Parameters: params,
	}.Clone()
}

func toPayload(in *EnvelopePayload) (message.Payload, string, string) {
	if in == nil {
		return message.NewPayload(nil, nil), "", ""
	}
	return message.NewPayload(in.Body, in.Metrics), in.ExceptionMessage, in.ExceptionStack
}

func toTime(nanos int64) time.Time {
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos)
}

func toUnixNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func errorConvertToWire(in *Envelope, err error) error {
	return errors.Errorf("failed to convert envelope[kind:%d correlation:%s]: %v: %w", in.Kind, in.CorrelationId, err, errors.ErrMalformedMessage)
}
