package message

import (
	"fmt"
	"time"

	uuid "github.com/google/uuid"
)

var newCorrelationID = func() string {
	return uuid.NewString()
}

// Requestは、デバイスへ送信するリクエストメッセージです。
//
// 生成後にチャンネルやペイロードを変更することはできません。
type Request struct {
	scopeID       string
	deviceID      string
	channel       Channel
	payload       Payload
	capturedOn    time.Time
	correlationID string
}

// NewRequestは、リクエストメッセージを生成します。
//
// コリレーションIDは生成時に払い出します。
func NewRequest(scopeID, deviceID string, ch Channel, p Payload, capturedOn time.Time) (*Request, error) {
	return NewRequestWithCorrelationID(scopeID, deviceID, ch, p, capturedOn, newCorrelationID())
}

// NewRequestWithCorrelationIDは、コリレーションIDを指定してリクエストメッセージを生成します。
//
// 受信したメッセージをデコードする場合に使用します。
func NewRequestWithCorrelationID(scopeID, deviceID string, ch Channel, p Payload, capturedOn time.Time, correlationID string) (*Request, error) {
	switch {
	case scopeID == "":
		return nil, fmt.Errorf("scope id is required: %w", ErrInvalidMessage)
	case deviceID == "":
		return nil, fmt.Errorf("device id is required: %w", ErrInvalidMessage)
	case ch.AppName == "":
		return nil, fmt.Errorf("channel app name is required: %w", ErrInvalidMessage)
	case !ch.Method.Valid():
		return nil, fmt.Errorf("channel method %q is invalid: %w", ch.Method, ErrInvalidMessage)
	case correlationID == "":
		return nil, fmt.Errorf("correlation id is required: %w", ErrInvalidMessage)
	}
	if p.body == nil {
		p = NewPayload(nil, p.metrics)
	}
	return &Request{
		scopeID:       scopeID,
		deviceID:      deviceID,
		channel:       ch.Clone(),
		payload:       p,
		capturedOn:    capturedOn,
		correlationID: correlationID,
	}, nil
}

func (*Request) isMessage() {}

// ScopeIDは、スコープIDを返却します。
func (r *Request) ScopeID() string { return r.scopeID }

// DeviceIDは、宛先のデバイスIDを返却します。
func (r *Request) DeviceID() string { return r.deviceID }

// Channelは、チャンネルのコピーを返却します。
func (r *Request) Channel() Channel { return r.channel.Clone() }

// Payloadは、ペイロードを返却します。
func (r *Request) Payload() Payload { return r.payload }

// CapturedOnは、リクエストを発行した時刻を返却します。
func (r *Request) CapturedOn() time.Time { return r.capturedOn }

// CorrelationIDは、トランスポートがリクエストとレスポンスを対応付けるためのトークンを返却します。
func (r *Request) CorrelationID() string { return r.correlationID }

// CorrelationKeyは、コリレーションキーを返却します。
func (r *Request) CorrelationKey() CorrelationKey {
	return CorrelationKey{
		ScopeID:       r.scopeID,
		DeviceID:      r.deviceID,
		AppName:       r.channel.AppName,
		AppVersion:    r.channel.AppVersion,
		CorrelationID: r.correlationID,
	}
}

func (r *Request) String() string {
	return fmt.Sprintf("request[scope:%s device:%s app:%s/%s method:%s correlation:%s]",
		r.scopeID, r.deviceID, r.channel.AppName, r.channel.AppVersion, r.channel.Method, r.correlationID)
}
