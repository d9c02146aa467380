package nslog

import (
	"io"
	"sync/atomic"
)

// WriteFailure describes one failed write observed by ObservedWriter.
type WriteFailure struct {
	Err       error
	Written   int
	Attempted int
}

// ObservedWriterStats captures aggregated counters for ObservedWriter.
type ObservedWriterStats struct {
	Writes      uint64
	Bytes       uint64
	Failures    uint64
	ShortWrites uint64
}

// ObservedWriter wraps an io.Writer and records write failures. Sinks drop
// write errors, so wrapping the console output in an ObservedWriter is the way
// to notice lost records.
type ObservedWriter struct {
	dst        io.Writer
	onFailure  func(WriteFailure)
	writes     atomic.Uint64
	bytes      atomic.Uint64
	failures   atomic.Uint64
	shortWrite atomic.Uint64
}

// NewObservedWriter wraps dst. onFailure, when set, is called synchronously for
// every failed or short write.
func NewObservedWriter(dst io.Writer, onFailure func(WriteFailure)) *ObservedWriter {
	if dst == nil {
		dst = io.Discard
	}
	return &ObservedWriter{dst: dst, onFailure: onFailure}
}

func (w *ObservedWriter) Write(p []byte) (int, error) {
	if w == nil {
		return len(p), nil
	}
	w.writes.Add(1)
	n, err := w.dst.Write(p)
	if n > 0 {
		w.bytes.Add(uint64(n))
	}
	if n != len(p) {
		w.shortWrite.Add(1)
		if err == nil {
			err = io.ErrShortWrite
		}
	}
	if err != nil {
		w.failures.Add(1)
		if w.onFailure != nil {
			w.onFailure(WriteFailure{Err: err, Written: n, Attempted: len(p)})
		}
	}
	return n, err
}

// Stats returns the cumulative counters.
func (w *ObservedWriter) Stats() ObservedWriterStats {
	if w == nil {
		return ObservedWriterStats{}
	}
	return ObservedWriterStats{
		Writes:      w.writes.Load(),
		Bytes:       w.bytes.Load(),
		Failures:    w.failures.Load(),
		ShortWrites: w.shortWrite.Load(),
	}
}

// Fd exposes the wrapped descriptor so terminal detection still sees through
// the wrapper.
func (w *ObservedWriter) Fd() uintptr {
	if f, ok := w.dst.(fdWriter); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// Close closes the wrapped writer when it is an io.Closer.
func (w *ObservedWriter) Close() error {
	if w == nil {
		return nil
	}
	if c, ok := w.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
