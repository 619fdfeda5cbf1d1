package command

var (
	EncodeInput   = encodeInput
	FormatMetrics = formatMetrics
)
