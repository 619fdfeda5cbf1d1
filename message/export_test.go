package message

import "testing"

func SetCorrelationID(t *testing.T, fix string) {
	org := newCorrelationID
	newCorrelationID = func() string { return fix }
	t.Cleanup(func() {
		newCorrelationID = org
	})
}
