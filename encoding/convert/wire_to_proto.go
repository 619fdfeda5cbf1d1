package convert

import (
	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

// WireToProtoは、メッセージをエンベロープへ変換します。
func WireToProto(in message.Message) (*Envelope, error) {
	switch msg := in.(type) {
	case *message.Request:
		return &Envelope{
			Kind:           KindRequest,
			ScopeId:        msg.ScopeID(),
			DeviceId:       msg.DeviceID(),
			Channel:        toChannelProto(msg.Channel()),
			Payload:        toPayloadProto(msg.Payload(), "", ""),
			TimestampNanos: toUnixNanos(msg.CapturedOn()),
			CorrelationId:  msg.CorrelationID(),
		}, nil
	case *message.Response:
		p := msg.Payload()
		return &Envelope{
			Kind:           KindResponse,
			ScopeId:        msg.ScopeID(),
			DeviceId:       msg.DeviceID(),
			Channel:        toChannelProto(msg.Channel()),
			Payload:        toPayloadProto(p.Payload, p.ExceptionMessage, p.ExceptionStack),
			ResponseCode:   int32(msg.ResponseCode()),
			TimestampNanos: toUnixNanos(msg.ReceivedOn()),
			CorrelationId:  msg.CorrelationID(),
		}, nil
	case nil:
		return nil, errors.Errorf("nil message: %w", errors.ErrMalformedMessage)
	default:
		return nil, errors.Errorf("unknown message type %T: %w", in, errors.ErrMalformedMessage)
	}
}

func toChannelProto(ch message.Channel) *EnvelopeChannel {
	return &EnvelopeChannel{
		AppName:    ch.AppName,
		AppVersion: ch.AppVersion,
		Method:     string(ch.Method),
		Parameters: ch.Parameters,
	}
}

func toPayloadProto(p message.Payload, exceptionMessage, exceptionStack string) *EnvelopePayload {
	metrics := p.Metrics()
	if len(metrics) == 0 {
		metrics = nil
	}
	return &EnvelopePayload{
		Body:             p.Body(),
		Metrics:          metrics,
		ExceptionMessage: exceptionMessage,
		ExceptionStack:   exceptionStack,
	}
}
