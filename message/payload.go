package message

// Payloadは、メッセージの本体です。
//
// ボディは常に非nilのバイト列として保持します。
// 生成後に内容を変更することはできません。
type Payload struct {
	body    []byte
	metrics map[string]string
}

// NewPayloadは、ボディとメトリクスのコピーを保持するPayloadを返却します。
func NewPayload(body []byte, metrics map[string]string) Payload {
	b := make([]byte, len(body))
	copy(b, body)
	return Payload{
		body:    b,
		metrics: cloneStringMap(metrics),
	}
}

// Bodyは、ボディのコピーを返却します。
func (p Payload) Body() []byte {
	b := make([]byte, len(p.body))
	copy(b, p.body)
	return b
}

// BodyLenは、ボディのバイト数を返却します。
func (p Payload) BodyLen() int {
	return len(p.body)
}

// Metricsは、メトリクスのコピーを返却します。
func (p Payload) Metrics() map[string]string {
	res := cloneStringMap(p.metrics)
	if res == nil {
		res = map[string]string{}
	}
	return res
}

// Metricは、メトリクスの値を返却します。
func (p Payload) Metric(key string) (string, bool) {
	v, ok := p.metrics[key]
	return v, ok
}

// ResponsePayloadは、レスポンスのペイロードです。
//
// デバイス側で処理が失敗した場合、ボディの代わりに例外メッセージとスタックトレースを保持します。
// どちらも空文字列の場合があります。
type ResponsePayload struct {
	Payload

	ExceptionMessage string // 例外メッセージ
	ExceptionStack   string // 例外のスタックトレース
}
