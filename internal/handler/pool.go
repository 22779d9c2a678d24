package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical kit view without growing
const initialBufferSize = 1024

// bufferPool holds the buffers responses are encoded into
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
