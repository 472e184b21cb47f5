package handler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool_ResetsBuffers(t *testing.T) {
	buf := getBuffer()
	buf.WriteString("stale")
	putBuffer(buf)

	// the pool may hand back any buffer, but never one with content
	assert.Zero(t, getBuffer().Len())
}

func TestBufferPool_DropsOversizedBuffers(t *testing.T) {
	big := bytes.NewBuffer(make([]byte, 0, maxPooledBufferSize+1))
	big.WriteString("kept")
	putBuffer(big)

	assert.Equal(t, "kept", big.String(), "oversized buffers are not reset or pooled")
}
