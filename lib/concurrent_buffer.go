package lib

import (
	"bytes"
	"io"
	"sync"
)

// ConcurrentBuffer is a Buffer that can be used concurrently on multiple goroutines.
type ConcurrentBuffer struct {
	mutex sync.Mutex
	buf   bytes.Buffer
}

// NewConcurrentBuffer constructs a new ConcurrentBuffer.
func NewConcurrentBuffer() *ConcurrentBuffer {
	return &ConcurrentBuffer{}
}

func (crw *ConcurrentBuffer) Read(p []byte) (int, error) {
	crw.mutex.Lock()
	defer crw.mutex.Unlock()
	return crw.buf.Read(p)
}

func (crw *ConcurrentBuffer) Write(b []byte) (int, error) {
	crw.mutex.Lock()
	defer crw.mutex.Unlock()
	return crw.buf.Write(b)
}

// String returns everything written so far without consuming it.
func (crw *ConcurrentBuffer) String() string {
	crw.mutex.Lock()
	defer crw.mutex.Unlock()
	return crw.buf.String()
}

var _ io.ReadWriter = (*ConcurrentBuffer)(nil)
