package management

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
)

// DefaultCharEncodingは、ボディの文字エンコーディングのデフォルト値です。
const DefaultCharEncoding = "UTF-8"

var defaultDecoder = mustNewDecoder(DefaultDecoderConfig())

// DecoderConfigは、レスポンスデコーダーの設定です。
type DecoderConfig struct {
	// ボディの文字エンコーディング
	//
	// IANAに登録された名前で指定します（e.g. UTF-8, ISO-8859-1, Shift_JIS）。
	CharEncoding string
}

// DefaultDecoderConfigは、デフォルトのDecoderConfigを返却します。
func DefaultDecoderConfig() DecoderConfig {
	return DecoderConfig{CharEncoding: DefaultCharEncoding}
}

// Decoderは、レスポンスコードを解釈し、受理されたレスポンスのボディをデコードします。
//
// Decoderは状態を持たないため、同じレスポンスを何度デコードしても同じ結果になります。
type Decoder struct {
	charEncoding string
	enc          encoding.Encoding
}

// NewDecoderは、Decoderを生成します。
//
// 文字エンコーディングが未知の場合はエラーを返却します。
func NewDecoder(c DecoderConfig) (*Decoder, error) {
	name := c.CharEncoding
	if name == "" {
		name = DefaultCharEncoding
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Errorf("char encoding %q: %v: %w", name, err, errors.ErrInvalidArgument)
	}
	if enc == nil {
		return nil, errors.Errorf("char encoding %q is not supported: %w", name, errors.ErrInvalidArgument)
	}
	return &Decoder{charEncoding: name, enc: enc}, nil
}

func mustNewDecoder(c DecoderConfig) *Decoder {
	d, err := NewDecoder(c)
	if err != nil {
		panic(err)
	}
	return d
}

// CharEncodingは、ボディの文字エンコーディング名を返却します。
func (d *Decoder) CharEncoding() string {
	return d.charEncoding
}

// Checkは、レスポンスが受理されたかどうかを確認します。
//
// 受理されていない場合、レスポンスの例外メッセージとスタックトレースをそのまま保持した
// *errors.ManagementResponseErrorを返却します。
func (d *Decoder) Check(kind errors.ManagementErrorKind, resp *message.Response) error {
	if resp == nil {
		return &errors.ManagementResponseError{
			Kind: kind,
			Err:  errors.New("no response"),
		}
	}
	if resp.ResponseCode().IsAccepted() {
		return nil
	}
	p := resp.Payload()
	return &errors.ManagementResponseError{
		Kind:             kind,
		ResponseCode:     resp.ResponseCode(),
		ExceptionMessage: p.ExceptionMessage,
		ExceptionStack:   p.ExceptionStack,
	}
}

// Bodyは、ボディを文字エンコーディングに従って文字列へデコードします。
func (d *Decoder) Body(resp *message.Response) (string, error) {
	b, err := d.enc.NewDecoder().Bytes(resp.Payload().Body())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeBodyは、文字列を文字エンコーディングに従ってリクエストのボディへエンコードします。
func (d *Decoder) EncodeBody(s []byte) ([]byte, error) {
	return d.enc.NewEncoder().Bytes(s)
}

// Decodeは、レスポンスを確認し、受理されていればボディをcodecでデコードします。
//
// デコードに失敗した場合は、受信したボディと原因を保持した*errors.ManagementResponseErrorを返却します。
func Decode[T any](d *Decoder, kind errors.ManagementErrorKind, resp *message.Response, codec BodyCodec[T]) (T, error) {
	var zero T
	if err := d.Check(kind, resp); err != nil {
		return zero, err
	}
	body, err := d.Body(resp)
	if err != nil {
		return zero, ParseFailure(kind, resp, string(resp.Payload().Body()), err)
	}
	v, err := codec.Decode(body)
	if err != nil {
		return zero, ParseFailure(kind, resp, body, err)
	}
	return v, nil
}

// ParseFailureは、受理されたレスポンスを解釈できなかったことを表すエラーを返却します。
//
// diagには、解釈できなかったボディやメトリクスなど、原因の調査に使用する内容を指定します。
func ParseFailure(kind errors.ManagementErrorKind, resp *message.Response, diag string, err error) error {
	return &errors.ManagementResponseError{
		Kind:         kind,
		ResponseCode: resp.ResponseCode(),
		Body:         diag,
		Err:          err,
	}
}
