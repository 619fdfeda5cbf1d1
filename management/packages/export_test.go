package packages

import "testing"

func SetNewOperationID(t *testing.T, f func() string) {
	orig := newOperationID
	newOperationID = f
	t.Cleanup(func() {
		newOperationID = orig
	})
}
