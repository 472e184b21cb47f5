package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 512
	// Buffers that grew beyond this are left for the GC instead of being pooled
	maxPooledBufferSize = 64 << 10
)

var jsonBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return jsonBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	jsonBuffers.Put(buf)
}
