package util

import "unsafe"

// Bytes converts s to a byte slice without copying. The result must not be
// modified.
func Bytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String converts b to a string without copying. b must not be modified
// afterwards.
func String(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
