package message

import "sort"

// Methodは、リモートアプリケーションに対する操作の種類です。
type Method string

/*
Method は、以下の値を取ります。
*/
const (
	MethodRead    Method = "READ"    // 読み出し
	MethodCreate  Method = "CREATE"  // 生成
	MethodWrite   Method = "WRITE"   // 書き込み
	MethodDelete  Method = "DELETE"  // 削除
	MethodExecute Method = "EXECUTE" // 実行
)

// Validは、定義済みのメソッドかどうかを判定します。
func (m Method) Valid() bool {
	switch m {
	case MethodRead, MethodCreate, MethodWrite, MethodDelete, MethodExecute:
		return true
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

// Channelは、メッセージがどのリモートアプリケーションのどの操作を対象にしているかを表します。
//
// レスポンスのチャンネルはアプリケーション名とバージョンのみを持ち、リクエストのチャンネルと一致します。
type Channel struct {
	AppName    string            // アプリケーション名
	AppVersion string            // アプリケーションのバージョン
	Method     Method            // メソッド
	Parameters map[string]string // 操作固有のパラメータ
}

// Parameterは、パラメータの値を返却します。
func (c Channel) Parameter(name string) (string, bool) {
	v, ok := c.Parameters[name]
	return v, ok
}

// ParameterNamesは、パラメータ名をソートして返却します。
func (c Channel) ParameterNames() []string {
	res := make([]string, 0, len(c.Parameters))
	for k := range c.Parameters {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Cloneは、パラメータを含めたチャンネルのコピーを返却します。
func (c Channel) Clone() Channel {
	res := c
	res.Parameters = cloneStringMap(c.Parameters)
	return res
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	res := make(map[string]string, len(src))
	for k, v := range src {
		res[k] = v
	}
	return res
}
