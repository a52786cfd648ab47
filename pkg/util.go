package pkg

import (
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// Ptr returns a pointer to a copy of v. Handy for optional fields.
func Ptr[T any](v T) *T {
	return &v
}
