package convert

import (
	"github.com/gogo/protobuf/proto"
)

// Kindは、エンベロープに格納されたメッセージの種別です。
type Kind int32

const (
	KindUnspecified Kind = 0
	KindRequest     Kind = 1
	KindResponse    Kind = 2
)

/*
Envelope は、デバイス管理メッセージのワイヤ表現です。

フィールド番号は固定であり、変更してはいけません。
*/
type Envelope struct {
	Kind           Kind             `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	ScopeId        string           `protobuf:"bytes,2,opt,name=scope_id,json=scopeId,proto3" json:"scope_id,omitempty"`
	DeviceId       string           `protobuf:"bytes,3,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Channel        *EnvelopeChannel `protobuf:"bytes,4,opt,name=channel,proto3" json:"channel,omitempty"`
	Payload        *EnvelopePayload `protobuf:"bytes,5,opt,name=payload,proto3" json:"payload,omitempty"`
	ResponseCode   int32            `protobuf:"varint,6,opt,name=response_code,json=responseCode,proto3" json:"response_code,omitempty"`
	TimestampNanos int64            `protobuf:"varint,7,opt,name=timestamp_nanos,json=timestampNanos,proto3" json:"timestamp_nanos,omitempty"`
	CorrelationId  string           `protobuf:"bytes,8,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
}

func (m *Envelope) Reset()         { *m = Envelope{} }
func (m *Envelope) String() string { return proto.CompactTextString(m) }
func (*Envelope) ProtoMessage()    {}

// EnvelopeChannelは、チャンネルのワイヤ表現です。
type EnvelopeChannel struct {
	AppName    string            `protobuf:"bytes,1,opt,name=app_name,json=appName,proto3" json:"app_name,omitempty"`
	AppVersion string            `protobuf:"bytes,2,opt,name=app_version,json=appVersion,proto3" json:"app_version,omitempty"`
	Method     string            `protobuf:"bytes,3,opt,name=method,proto3" json:"method,omitempty"`
	Parameters map[string]string `protobuf:"bytes,4,rep,name=parameters,proto3" json:"parameters,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *EnvelopeChannel) Reset()         { *m = EnvelopeChannel{} }
func (m *EnvelopeChannel) String() string { return proto.CompactTextString(m) }
func (*EnvelopeChannel) ProtoMessage()    {}

// EnvelopePayloadは、ペイロードのワイヤ表現です。
type EnvelopePayload struct {
	Body             []byte            `protobuf:"bytes,1,opt,name=body,proto3" json:"body,omitempty"`
	Metrics          map[string]string `protobuf:"bytes,2,rep,name=metrics,proto3" json:"metrics,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	ExceptionMessage string            `protobuf:"bytes,3,opt,name=exception_message,json=exceptionMessage,proto3" json:"exception_message,omitempty"`
	ExceptionStack   string            `protobuf:"bytes,4,opt,name=exception_stack,json=exceptionStack,proto3" json:"exception_stack,omitempty"`
}

func (m *EnvelopePayload) Reset()         { *m = EnvelopePayload{} }
func (m *EnvelopePayload) String() string { return proto.CompactTextString(m) }
func (*EnvelopePayload) ProtoMessage()    {}
