package wire

import (
	"github.com/aptpod/devmgmt-go/message"
)

// EncodingTransportは、メッセージ単位で読み書きするトランスポートです。
//
// encoding.Transport がこのインターフェースを満たします。
//
//go:generate mockgen -destination ./${GOPACKAGE}mock/${GOFILE} -package ${GOPACKAGE}mock -source ./${GOFILE}
type EncodingTransport interface {
	Read() (message.Message, error)
	RxMessageCounterValue() uint64
	Write(message message.Message) error
	TxMessageCounterValue() uint64
	Close() error
}
