/*
Package encoding は、デバイス管理メッセージのエンコーディングをまとめたパッケージです。
*/
package encoding

import (
	"bytes"
	"io"

	"github.com/aptpod/devmgmt-go/errors"
	"github.com/aptpod/devmgmt-go/message"
	"github.com/aptpod/devmgmt-go/transport"
)

//go:generate mockgen -destination ./${GOPACKAGE}mock/${GOFILE} -package ${GOPACKAGE}mock -source ./${GOFILE}

/*
Encoding は、メッセージのエンコード層を抽象化したインターフェースです。
*/
type Encoding interface {
	// EncodeTo は、メッセージをバイナリへエンコードし、与えられた Writer に書き込みます。
	EncodeTo(io.Writer, message.Message) (int, error)

	// DecodeFrom は、与えられた Reader から読みだしたバイナリを、メッセージへデコードします。
	DecodeFrom(io.Reader) (int, message.Message, error)

	// ContentType は、このエンコーディングの ContentType を返します。
	ContentType() ContentType

	// Name は、このエンコーディングの識別名を返します。
	Name() Name
}

// ContentType は、エンコードされたメッセージの形式を表します。
type ContentType string

const (
	// ContentTypeBinary は、バイナリ形式の EncodingContentType を表します。
	ContentTypeBinary ContentType = "binary"

	// ContentTypeText は、テキスト形式の EncodingContentType を表します。
	ContentTypeText ContentType = "text"
)

// Name は、エンコーディングの識別名を表します。
type Name string

const (
	// NameJSON は、 JSON 形式のエンコーディングを表す名称です。
	NameJSON Name = "json"

	// NameProtobuf は、 Protocol Buffers 形式のエンコーディングを表す名称です。
	NameProtobuf Name = "protobuf"
)

// TransportConfigは、Transportの設定です。
type TransportConfig struct {
	// バイト列を運ぶトランスポート
	Transport transport.ReadWriter

	// メッセージのエンコーディング
	Encoding Encoding

	// エンコード後のメッセージの最大サイズ。0の場合は制限しません。
	MaxMessageSize Size
}

// NewTransportは、バイト列のトランスポートをメッセージ単位で読み書きするTransportを生成します。
func NewTransport(c *TransportConfig) *Transport {
	return &Transport{
		rw:      c.Transport,
		enc:     c.Encoding,
		maxSize: c.MaxMessageSize,
		rx:      newCounter(),
		tx:      newCounter(),
	}
}

// Transportは、リクエストとレスポンスをエンコードしてトランスポートへ読み書きします。
//
// 読み書きしたメッセージは、MessageKindごとにカウントします。
type Transport struct {
	rw      transport.ReadWriter
	enc     Encoding
	maxSize Size

	rx *counter
	tx *counter
}

// Readは、トランスポートから一つのメッセージを読み込みます。
//
// トランスポートのエラーはそのまま返却します。
// サイズ超過とデコードの失敗は errors.ErrMalformedMessage を返却します。
func (c *Transport) Read() (message.Message, error) {
	bs, err := c.rw.Read()
	if err != nil {
		return nil, err
	}
	if err := c.checkSize(Size(len(bs))); err != nil {
		return nil, err
	}
	n, m, err := c.enc.DecodeFrom(bytes.NewReader(bs))
	if err != nil {
		return nil, errors.Errorf("%s: decode: %w", c.enc.Name(), err)
	}
	c.rx.Add(m, n)
	return m, nil
}

// Writeは、メッセージをエンコードしてトランスポートへ書き込みます。
func (c *Transport) Write(m message.Message) error {
	var buf bytes.Buffer
	n, err := c.enc.EncodeTo(&buf, m)
	if err != nil {
		return errors.Errorf("%s: encode: %w", c.enc.Name(), err)
	}
	if err := c.checkSize(Size(n)); err != nil {
		return err
	}
	if err := c.rw.Write(buf.Bytes()); err != nil {
		return err
	}
	c.tx.Add(m, n)
	return nil
}

// RxCountは、読み込んだメッセージのCountを返却します。
func (c *Transport) RxCount() *Count {
	return c.rx.Count()
}

// TxCountは、書き込んだメッセージのCountを返却します。
func (c *Transport) TxCount() *Count {
	return c.tx.Count()
}

// RxMessageCounterValueは、読み込んだメッセージの総数を返却します。
func (c *Transport) RxMessageCounterValue() uint64 {
	return c.rx.Total()
}

// TxMessageCounterValueは、書き込んだメッセージの総数を返却します。
func (c *Transport) TxMessageCounterValue() uint64 {
	return c.tx.Total()
}

// Encodingは、使用しているエンコーディングを返却します。
func (c *Transport) Encoding() Encoding {
	return c.enc
}

// Closeは、トランスポートを閉じます。
func (c *Transport) Close() error {
	return c.rw.Close()
}

func (c *Transport) checkSize(size Size) error {
	if c.maxSize == 0 || size <= c.maxSize {
		return nil
	}
	return errors.Errorf("message size %s exceeds %s: %w", size, c.maxSize, errors.ErrMessageTooLarge)
}
