package transport

// Readerはトランスポートからメッセージを読み出すインターフェースです。
type Reader interface {
	// Read は、トランスポートからメッセージを読み出します。
	Read() ([]byte, error)
	// Close は、トランスポートのコネクションを切断します。
	Close() error
	// RxBytesCounterValue は、現在の受信バイトカウンターの値を返します。
	RxBytesCounterValue() uint64
}

// Writerはトランスポートへメッセージを書き込むインターフェースです。
type Writer interface {
	// Write は、トランスポートへメッセージを書き込みます。
	Write([]byte) error
	// Close は、トランスポートのコネクションを切断します。
	Close() error
	// TxBytesCounterValue は、現在の送信バイトカウンターの値を返します。
	TxBytesCounterValue() uint64
}

// ReadWriterはトランスポートからメッセージを読み書きするインターフェースです。
type ReadWriter interface {
	Reader
	Writer
}
