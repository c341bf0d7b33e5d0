package ffi

import (
	"github.com/halcyoncore/wallet-bridge/handle"
	"github.com/halcyoncore/wallet-bridge/keys"
)

// ByteVectorCreate copies count bytes from data into a new byte vector and
// returns its handle. Nil data yields handle.Nil; a count larger than
// len(data) yields handle.Nil and records a byte-array length error.
func ByteVectorCreate(data []byte, count uint32) handle.Handle {
	if data == nil {
		return handle.Nil
	}
	if int64(count) > int64(len(data)) {
		setLastError(&keys.ByteArrayError{Kind: keys.ByteArrayIncorrectLength})
		return handle.Nil
	}
	buf := make([]byte, count)
	copy(buf, data[:count])
	return byteVectors.Insert(buf)
}

// ByteVectorDestroy releases a byte vector. No-op on invalid handles.
func ByteVectorDestroy(h handle.Handle) {
	byteVectors.Remove(h)
}

// ByteVectorGetLength returns the vector's length, or 0 for an invalid
// handle.
func ByteVectorGetLength(h handle.Handle) uint32 {
	b, ok := byteVectors.Get(h)
	if !ok {
		return 0
	}
	return uint32(len(b))
}

// ByteVectorGetAt returns the byte at position. Invalid handles and
// positions at or beyond the length return 0.
func ByteVectorGetAt(h handle.Handle, position uint32) byte {
	b, ok := byteVectors.Get(h)
	if !ok || int64(position) >= int64(len(b)) {
		return 0
	}
	return b[position]
}
