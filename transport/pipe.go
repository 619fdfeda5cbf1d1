package transport

import (
	"sync"
	"sync/atomic"

	"github.com/aptpod/devmgmt-go/errors"
)

// DefaultPipeQueueSizeは、Pipeのキューの長さのデフォルト値です。
const DefaultPipeQueueSize = 32

type pipe struct {
	rx        <-chan []byte
	rxCounter *uint64

	tx        chan<- []byte
	txCounter *uint64

	once           *sync.Once
	closedCh       chan struct{}
	remoteClosedCh <-chan struct{}
}

func (p *pipe) Read() ([]byte, error) {
	select {
	case <-p.closedCh:
		return nil, ErrAlreadyClosed
	case msg := <-p.rx:
		atomic.AddUint64(p.rxCounter, uint64(len(msg)))
		return msg, nil
	case <-p.remoteClosedCh:
		// リモートが閉じる前に書き込まれたメッセージは読み出す
		select {
		case msg := <-p.rx:
			atomic.AddUint64(p.rxCounter, uint64(len(msg)))
			return msg, nil
		default:
			return nil, EOF
		}
	}
}

func (p *pipe) Write(message []byte) error {
	select {
	case <-p.remoteClosedCh:
		return ErrAlreadyClosed
	case <-p.closedCh:
		return ErrAlreadyClosed
	default:
	}
	b := make([]byte, len(message))
	copy(b, message)
	select {
	case <-p.remoteClosedCh:
		return ErrAlreadyClosed
	case <-p.closedCh:
		return ErrAlreadyClosed
	case p.tx <- b:
		atomic.AddUint64(p.txCounter, uint64(len(message)))
		return nil
	}
}

func (p *pipe) RxBytesCounterValue() uint64 {
	return atomic.LoadUint64(p.rxCounter)
}

func (p *pipe) TxBytesCounterValue() uint64 {
	return atomic.LoadUint64(p.txCounter)
}

func (p *pipe) Close() error {
	p.once.Do(func() {
		close(p.closedCh)
	})
	return nil
}

// Pipeは、インメモリで接続されたトランスポートのペアを返却します。
//
// 一方へ書き込んだメッセージは、もう一方から読み出せます。
// 読み出し側が追いつかない場合、DefaultPipeQueueSize個まで書き込みをバッファします。
func Pipe() (ReadWriter, ReadWriter) {
	return PipeWithQueueSize(DefaultPipeQueueSize)
}

// PipeWithQueueSizeは、キューの長さを指定してPipeを生成します。
func PipeWithQueueSize(size int) (ReadWriter, ReadWriter) {
	if size < 0 {
		panic(errors.Errorf("invalid queue size %d", size))
	}
	ch1 := make(chan []byte, size)
	ch2 := make(chan []byte, size)

	chClosed1 := make(chan struct{})
	chClosed2 := make(chan struct{})

	return &pipe{
			rx:             ch2,
			tx:             ch1,
			txCounter:      func(u uint64) *uint64 { return &u }(0),
			rxCounter:      func(u uint64) *uint64 { return &u }(0),
			once:           &sync.Once{},
			closedCh:       chClosed1,
			remoteClosedCh: chClosed2,
		}, &pipe{
			rx:             ch1,
			tx:             ch2,
			txCounter:      func(u uint64) *uint64 { return &u }(0),
			rxCounter:      func(u uint64) *uint64 { return &u }(0),
			once:           &sync.Once{},
			closedCh:       chClosed2,
			remoteClosedCh: chClosed1,
		}
}

// Copyは、srcから読み出したメッセージをdstへ書き込み続けます。
//
// どちらかが閉じられると正常に終了します。
func Copy(dst Writer, src Reader) error {
	for {
		msg, err := src.Read()
		if err != nil {
			if errors.Is(err, EOF) {
				return nil
			}
			if errors.Is(err, ErrAlreadyClosed) {
				return nil
			}
			return err
		}
		if err := dst.Write(msg); err != nil {
			if errors.Is(err, ErrAlreadyClosed) {
				return nil
			}
			return err
		}
	}
}
