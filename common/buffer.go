package common

import (
	"bytes"
	"sync"
)

// BufferWriter is the subset of bytes.Buffer and strings.Builder used when
// writing SQL fragments.
type BufferWriter interface {
	Write(p []byte) (nn int, err error)
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
}

// BufferPool is sync pool for *bytes.Buffer
type BufferPool struct {
	sync.Pool
}

// NewBufferPool creates a buffer pool whose buffers start with size bytes
// of capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		Pool: sync.Pool{New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 0, size))
		}},
	}
}

// Get checks out a buffer which must be put back in.
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.Pool.Get().(*bytes.Buffer)
}

// Put returns a buffer which was previously checked out.
func (bp *BufferPool) Put(b *bytes.Buffer) {
	b.Reset()
	bp.Pool.Put(b)
}

// WriteJoined writes each item of items separated by sep.
func WriteJoined(buf BufferWriter, sep string, items []string) {
	for i, s := range items {
		if i > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(s)
	}
}
