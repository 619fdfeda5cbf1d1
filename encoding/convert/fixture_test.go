package convert_test

import (
	"time"

	"github.com/aptpod/devmgmt-go/encoding/convert"
	"github.com/aptpod/devmgmt-go/message"
)

var (
	capturedOn = time.Unix(1700000000, 123)
	receivedOn = time.Unix(1700000001, 456)
)

func mustRequest(req *message.Request, err error) *message.Request {
	if err != nil {
		panic(err)
	}
	return req
}

var (
	request = mustRequest(message.NewRequestWithCorrelationID("scope-1", "device-1", message.Channel{
		AppName:    "CONF-V1",
		AppVersion: "1.0",
		Method:     message.MethodExecute,
		Parameters: map[string]string{"resource": "snapshots", "snapshotId": "42"},
	}, message.NewPayload([]byte("<body/>"), map[string]string{"command.command": "ls"}), capturedOn, "correlation-1"))
	requestPB = &convert.Envelope{
		Kind:     convert.KindRequest,
		ScopeId:  "scope-1",
		DeviceId: "device-1",
		Channel: &convert.EnvelopeChannel{
			AppName:    "CONF-V1",
			AppVersion: "1.0",
			Method:     "EXECUTE",
			Parameters: map[string]string{"resource": "snapshots", "snapshotId": "42"},
		},
		Payload: &convert.EnvelopePayload{
			Body:    []byte("<body/>"),
			Metrics: map[string]string{"command.command": "ls"},
		},
		TimestampNanos: capturedOn.UnixNano(),
		CorrelationId:  "correlation-1",
	}

	emptyRequest = mustRequest(message.NewRequestWithCorrelationID("scope-1", "device-1", message.Channel{
		AppName: "CMD-V1",
		Method:  message.MethodRead,
	}, message.Payload{}, capturedOn, "correlation-2"))
	emptyRequestPB = &convert.Envelope{
		Kind:     convert.KindRequest,
		ScopeId:  "scope-1",
		DeviceId: "device-1",
		Channel: &convert.EnvelopeChannel{
			AppName: "CMD-V1",
			Method:  "READ",
		},
		Payload:        &convert.EnvelopePayload{Body: []byte{}},
		TimestampNanos: capturedOn.UnixNano(),
		CorrelationId:  "correlation-2",
	}

	response = message.NewResponse("scope-1", "device-1", message.Channel{
		AppName:    "CONF-V1",
		AppVersion: "1.0",
	}, message.ResponseCodeInternalError, message.ResponsePayload{
		Payload:          message.NewPayload(nil, map[string]string{"command.exit.code": "1"}),
		ExceptionMessage: "snapshot not found",
		ExceptionStack:   "at Snapshot.rollback",
	}, receivedOn, "correlation-1")
	responsePB = &convert.Envelope{
		Kind:     convert.KindResponse,
		ScopeId:  "scope-1",
		DeviceId: "device-1",
		Channel: &convert.EnvelopeChannel{
			AppName:    "CONF-V1",
			AppVersion: "1.0",
		},
		Payload: &convert.EnvelopePayload{
			Body:             []byte{},
			Metrics:          map[string]string{"command.exit.code": "1"},
			ExceptionMessage: "snapshot not found",
			ExceptionStack:   "at Snapshot.rollback",
		},
		ResponseCode:   int32(message.ResponseCodeInternalError),
		TimestampNanos: receivedOn.UnixNano(),
		CorrelationId:  "correlation-1",
	}
)
