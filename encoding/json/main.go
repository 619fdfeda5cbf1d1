/*
Package json は、 JSON フォーマットを使用したエンコーディングを提供するパッケージです。
*/
package json

import (
	"bytes"
	"io"

	"github.com/gogo/protobuf/jsonpb"

	"github.com/aptpod/devmgmt-go/encoding"
	"github.com/aptpod/devmgmt-go/encoding/convert"
	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/internal/xio"
	"github.com/aptpod/devmgmt-go/message"
)

type encoder struct{}

func (e *encoder) ContentType() encoding.ContentType {
	return encoding.ContentTypeText
}

func (e *encoder) Name() encoding.Name {
	return encoding.NameJSON
}

/*
NewEncoding は、 JSON フォーマット用エンコーディングを生成します。
*/
func NewEncoding() encoding.Encoding {
	return &encoder{}
}

var marshaler = jsonpb.Marshaler{
	EmitDefaults: true,
	OrigName:     true,
}

var unmarshaler = jsonpb.Unmarshaler{
	AllowUnknownFields: true,
}

func (e *encoder) EncodeTo(wr io.Writer, m message.Message) (n int, er error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			er = errors.Errorf("%v: %w", recovered, errors.ErrMalformedMessage)
		}
	}()

	pb, err := convert.WireToProto(m)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := marshaler.Marshal(&buf, pb); err != nil {
		return 0, err
	}
	writtenBytes := buf.Len()

	if _, err := io.Copy(wr, &buf); err != nil {
		return 0, err
	}

	return writtenBytes, nil
}

func (e *encoder) DecodeFrom(rd io.Reader) (n int, m message.Message, er error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			er = errors.Errorf("%v: %w", recovered, errors.ErrMalformedMessage)
		}
	}()

	ird := xio.NewCaptureReader(rd)
	var pb convert.Envelope
	if err := unmarshaler.Unmarshal(ird, &pb); err != nil {
		return 0, nil, errors.Errorf("%v: %w", err, errors.ErrMalformedMessage)
	}
	res, err := convert.ProtoToWire(&pb)
	if err != nil {
		return 0, nil, err
	}

	return ird.ReadBytes, res, nil
}
