package message

import (
	"fmt"
	"time"
)

// Responseは、デバイスから受信したレスポンスメッセージです。
//
// コリレーションキーによって、ただ一つのRequestと対応します。
type Response struct {
	scopeID       string
	deviceID      string
	channel       Channel
	code          ResponseCode
	payload       ResponsePayload
	receivedOn    time.Time
	correlationID string
}

// NewResponseは、レスポンスメッセージを生成します。
func NewResponse(scopeID, deviceID string, ch Channel, code ResponseCode, p ResponsePayload, receivedOn time.Time, correlationID string) *Response {
	if p.body == nil {
		p.Payload = NewPayload(nil, p.metrics)
	}
	return &Response{
		scopeID:       scopeID,
		deviceID:      deviceID,
		channel:       ch.Clone(),
		code:          code,
		payload:       p,
		receivedOn:    receivedOn,
		correlationID: correlationID,
	}
}

// ReplyToは、リクエストに対応するレスポンスを生成します。
//
// レスポンスのチャンネルはリクエストのアプリケーション名とバージョンを引き継ぎます。
func ReplyTo(req *Request, code ResponseCode, p ResponsePayload) *Response {
	return NewResponse(req.scopeID, req.deviceID, Channel{
		AppName:    req.channel.AppName,
		AppVersion: req.channel.AppVersion,
	}, code, p, time.Now(), req.correlationID)
}

func (*Response) isMessage() {}

// ScopeIDは、スコープIDを返却します。
func (r *Response) ScopeID() string { return r.scopeID }

// DeviceIDは、送信元のデバイスIDを返却します。
func (r *Response) DeviceID() string { return r.deviceID }

// Channelは、チャンネルのコピーを返却します。
func (r *Response) Channel() Channel { return r.channel.Clone() }

// ResponseCodeは、レスポンスコードを返却します。
func (r *Response) ResponseCode() ResponseCode { return r.code }

// Payloadは、レスポンスのペイロードを返却します。
func (r *Response) Payload() ResponsePayload { return r.payload }

// ReceivedOnは、レスポンスの時刻を返却します。
func (r *Response) ReceivedOn() time.Time { return r.receivedOn }

// CorrelationIDは、対応するリクエストのコリレーションIDを返却します。
func (r *Response) CorrelationID() string { return r.correlationID }

// CorrelationKeyは、コリレーションキーを返却します。
func (r *Response) CorrelationKey() CorrelationKey {
	return CorrelationKey{
		ScopeID:       r.scopeID,
		DeviceID:      r.deviceID,
		AppName:       r.channel.AppName,
		AppVersion:    r.channel.AppVersion,
		CorrelationID: r.correlationID,
	}
}

func (r *Response) String() string {
	return fmt.Sprintf("response[scope:%s device:%s app:%s/%s code:%s correlation:%s]",
		r.scopeID, r.deviceID, r.channel.AppName, r.channel.AppVersion, r.code, r.correlationID)
}

// CorrelationKeyは、レスポンスがどのリクエストに対するものかを識別するキーです。
//
// メソッドとパラメータはレスポンスのチャンネルに含まれないため、キーに含めません。
type CorrelationKey struct {
	ScopeID       string
	DeviceID      string
	AppName       string
	AppVersion    string
	CorrelationID string
}

func (k CorrelationKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", k.ScopeID, k.DeviceID, k.AppName, k.AppVersion, k.CorrelationID)
}
