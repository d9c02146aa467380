package nslog

import (
	"io"
	"sync"
)

const (
	lineWriterDefaultCap = 512
	lineWriterMaxCap     = 64 << 10
)

// lineWriter accumulates one record and hands it to dst in a single Write.
type lineWriter struct {
	dst     io.Writer
	buf     []byte
	lastLen int
}

var lineWriterPool = sync.Pool{
	New: func() any {
		return &lineWriter{buf: make([]byte, 0, lineWriterDefaultCap)}
	},
}

func acquireLineWriter(dst io.Writer) *lineWriter {
	lw := lineWriterPool.Get().(*lineWriter)
	lw.dst = dst
	lw.buf = lw.buf[:0]
	lw.lastLen = 0
	return lw
}

func releaseLineWriter(lw *lineWriter) {
	lw.dst = nil
	if cap(lw.buf) > lineWriterMaxCap {
		lw.buf = make([]byte, 0, lineWriterDefaultCap)
	} else {
		lw.buf = lw.buf[:0]
	}
	lw.lastLen = 0
	lineWriterPool.Put(lw)
}

func (lw *lineWriter) writeByte(b byte) {
	lw.buf = append(lw.buf, b)
}

func (lw *lineWriter) writeString(s string) {
	lw.buf = append(lw.buf, s...)
}

// writeChunk appends s, separated from any previous chunk by a space.
func (lw *lineWriter) writeChunk(s string) {
	if len(lw.buf) > 0 {
		lw.buf = append(lw.buf, ' ')
	}
	lw.buf = append(lw.buf, s...)
}

func (lw *lineWriter) finishLine() {
	lw.writeByte('\n')
}

func (lw *lineWriter) flush() {
	if len(lw.buf) == 0 || lw.dst == nil {
		lw.lastLen = 0
		lw.buf = lw.buf[:0]
		return
	}
	lw.lastLen = len(lw.buf)
	_, _ = lw.dst.Write(lw.buf)
	lw.buf = lw.buf[:0]
}
