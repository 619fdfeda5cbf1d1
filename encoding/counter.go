package encoding

import (
	"sync"

	"github.com/aptpod/devmgmt-go/message"
)

// MessageKindは、カウンターがメッセージを集計する単位です。
type MessageKind string

const (
	MessageKindRequest  MessageKind = "request"
	MessageKindResponse MessageKind = "response"
	MessageKindUnknown  MessageKind = "unknown"
)

func kindOf(msg message.Message) MessageKind {
	switch msg.(type) {
	case *message.Request:
		return MessageKindRequest
	case *message.Response:
		return MessageKindResponse
	}
	return MessageKindUnknown
}

type counter struct {
	sync.RWMutex
	byteCount    map[MessageKind]uint64
	messageCount map[MessageKind]uint64
	total        uint64
}

func newCounter() *counter {
	return &counter{
		byteCount:    map[MessageKind]uint64{},
		messageCount: map[MessageKind]uint64{},
	}
}

func (c *counter) Add(msg message.Message, bytes int) {
	c.Lock()
	defer c.Unlock()
	kind := kindOf(msg)
	c.messageCount[kind]++
	c.total++
	c.byteCount[kind] += uint64(bytes)
}

func (c *counter) Total() uint64 {
	c.RLock()
	defer c.RUnlock()
	return c.total
}

func (c *counter) Count() *Count {
	c.RLock()
	defer c.RUnlock()
	res := &Count{
		ByteCount:    make(map[MessageKind]uint64, len(c.byteCount)),
		MessageCount: make(map[MessageKind]uint64, len(c.messageCount)),
	}
	for k, v := range c.byteCount {
		res.ByteCount[k] = v
	}
	for k, v := range c.messageCount {
		res.MessageCount[k] = v
	}
	return res
}

// Countは、メッセージ種別ごとの送受信のバイト数とメッセージ数を表します。
type Count struct {
	ByteCount    map[MessageKind]uint64
	MessageCount map[MessageKind]uint64
}
