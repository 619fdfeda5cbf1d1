package json_test

import (
	"time"

	"github.com/aptpod/devmgmt-go/message"
)

func mustRequest(req *message.Request, err error) *message.Request {
	if err != nil {
		panic(err)
	}
	return req
}

var (
	request = mustRequest(message.NewRequestWithCorrelationID("scope-1", "device-1", message.Channel{
		AppName:    "DEPLOY-V2",
		AppVersion: "1.0.0",
		Method:     message.MethodExecute,
		Parameters: map[string]string{"resource": "download"},
	}, message.NewPayload(nil, map[string]string{
		"dp.uri":     "http://example.com/pkg.dp",
		"dp.name":    "pkg",
		"dp.version": "1.0.0",
	}), time.Unix(1700000000, 100), "correlation-1"))

	requestWithBody = mustRequest(message.NewRequestWithCorrelationID("scope-1", "device-1", message.Channel{
		AppName:    "CONF-V1",
		AppVersion: "1.0",
		Method:     message.MethodWrite,
	}, message.NewPayload([]byte("<configurations/>"), nil), time.Unix(1700000000, 200), "correlation-2"))

	response = message.NewResponse("scope-1", "device-1", message.Channel{
		AppName:    "DEPLOY-V2",
		AppVersion: "1.0.0",
	}, message.ResponseCodeAccepted, message.ResponsePayload{
		Payload: message.NewPayload([]byte("<packages/>"), nil),
	}, time.Unix(1700000001, 0), "correlation-1")

	failedResponse = message.NewResponse("scope-1", "device-1", message.Channel{
		AppName:    "CMD-V1",
		AppVersion: "1.0",
	}, message.ResponseCodeInternalError, message.ResponsePayload{
		Payload:          message.NewPayload(nil, map[string]string{"command.exit.code": "2"}),
		ExceptionMessage: "command failed",
		ExceptionStack:   "at Command.exec",
	}, time.Unix(1700000002, 0), "correlation-3")
)
