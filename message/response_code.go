package message

/*
ResponseCode は、デバイスがリクエストをどのように処理したかを表す識別コードです。
*/
type ResponseCode int32

/*
ResponseCode は、以下の値を取ります。
*/
const (
	ResponseCodeUnknown       ResponseCode = iota // 不明な結果です。
	ResponseCodeAccepted                          // 処理が正常に受理されたことを表します。
	ResponseCodeBadRequest                        // リクエストが不正であることを表します。
	ResponseCodeNotFound                          // 対象のリソースが存在しないことを表します。
	ResponseCodeInternalError                     // デバイス内部でエラーが発生したことを表します。
	ResponseCodeUnauthorized                      // デバイスが操作を許可しなかったことを表します。
)

var responseCodeNames = map[ResponseCode]string{
	ResponseCodeUnknown:       "UNKNOWN",
	ResponseCodeAccepted:      "ACCEPTED",
	ResponseCodeBadRequest:    "BAD_REQUEST",
	ResponseCodeNotFound:      "NOT_FOUND",
	ResponseCodeInternalError: "INTERNAL_ERROR",
	ResponseCodeUnauthorized:  "UNAUTHORIZED",
}

// IsAcceptedは、コードがACCEPTEDの場合のみtrueを返却します。
func (c ResponseCode) IsAccepted() bool {
	return c == ResponseCodeAccepted
}

func (c ResponseCode) String() string {
	if s, ok := responseCodeNames[c]; ok {
		return s
	}
	return responseCodeNames[ResponseCodeUnknown]
}

// ParseResponseCodeは、文字列表現からResponseCodeを返却します。
//
// 未知の文字列はResponseCodeUnknownになります。
func ParseResponseCode(s string) ResponseCode {
	for k, v := range responseCodeNames {
		if v == s {
			return k
		}
	}
	return ResponseCodeUnknown
}
