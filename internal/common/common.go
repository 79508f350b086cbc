// Package common holds small helpers shared by the SayTruth client layers.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to remove secret answers from memory after a login or
// recovery attempt. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
