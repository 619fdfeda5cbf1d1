package management

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/aptpod/devmgmt-go/errors"
)

// BodyCodecは、アプリケーションのドメインオブジェクトとボディを相互に変換します。
type BodyCodec[T any] interface {
	// Decodeは、文字エンコーディングをデコード済みのボディをドメインオブジェクトへ変換します。
	Decode(body string) (T, error)

	// Encodeは、ドメインオブジェクトをボディへ変換します。
	Encode(v T) ([]byte, error)
}

// XMLCodecは、XMLのボディを扱うBodyCodecです。
type XMLCodec[T any] struct{}

func (XMLCodec[T]) Decode(body string) (T, error) {
	var v T
	dec := xml.NewDecoder(strings.NewReader(body))
	// 文字エンコーディングはDecoderで変換済み
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func (XMLCodec[T]) Encode(v T) ([]byte, error) {
	b, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}

// EncodeBodyは、ドメインオブジェクトをcodecで変換し、文字エンコーディングに従ってボディを返却します。
func EncodeBody[T any](d *Decoder, codec BodyCodec[T], v T) ([]byte, error) {
	b, err := codec.Encode(v)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("body", err.Error())
	}
	b, err = d.EncodeBody(b)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("body", err.Error())
	}
	return b, nil
}
