// Package stream implements cursor-based readers and writers over byte
// slices for length-prefixed, alignment-padded records. Integers are
// fixed-width little-endian.
package stream

import (
	"encoding/binary"
	"errors"
	"io"
)

// DefaultGrain is the alignment boundary used when none is given.
const DefaultGrain = 8

// ErrNegativeSkip is returned when a backwards skip is requested.
var ErrNegativeSkip = errors.New("negative skip")

// Reader consumes a byte slice through an explicit cursor. All reads
// are exact: a short buffer yields io.ErrUnexpectedEOF and leaves the
// cursor where it was.
type Reader struct {
	buf   []byte
	pos   int
	grain int
}

// NewReader returns a reader over b aligning to the given grain.
// grain <= 0 selects DefaultGrain.
func NewReader(b []byte, grain int) *Reader {
	if grain <= 0 {
		grain = DefaultGrain
	}
	return &Reader{buf: b, grain: grain}
}

// ReadUint64 reads a little-endian uint64 and advances the cursor.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadFull reads exactly len(p) bytes into p and advances the cursor.
func (r *Reader) ReadFull(p []byte) error {
	if r.pos+len(p) > len(r.buf) {
		return io.ErrUnexpectedEOF
	}
	copy(p, r.buf[r.pos:])
	r.pos += len(p)
	return nil
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return ErrNegativeSkip
	}
	if r.pos+n > len(r.buf) {
		return io.ErrUnexpectedEOF
	}
	r.pos += n
	return nil
}

// Align advances the cursor to the next multiple of the reader's
// grain. A no-op when already aligned.
func (r *Reader) Align() error {
	rem := r.pos % r.grain
	if rem == 0 {
		return nil
	}
	return r.Skip(r.grain - rem)
}

// Pos returns the current cursor position.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Writer accumulates a byte slice, padding with zeros on Align so that
// records produced with WriteUint64/WriteBytes/Align round-trip
// through a Reader of the same grain.
type Writer struct {
	buf   []byte
	grain int
}

// NewWriter returns an empty writer aligning to the given grain.
// grain <= 0 selects DefaultGrain.
func NewWriter(grain int) *Writer {
	if grain <= 0 {
		grain = DefaultGrain
	}
	return &Writer{grain: grain}
}

// WriteUint64 appends a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WriteBytes appends p verbatim.
func (w *Writer) WriteBytes(p []byte) {
	w.buf = append(w.buf, p...)
}

// Align appends zero bytes up to the next multiple of the writer's
// grain. A no-op when already aligned.
func (w *Writer) Align() {
	rem := len(w.buf) % w.grain
	if rem == 0 {
		return
	}
	w.buf = append(w.buf, make([]byte, w.grain-rem)...)
}

// Bytes returns the accumulated record. The slice aliases the
// writer's buffer until the next write.
func (w *Writer) Bytes() []byte { return w.buf }

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return len(w.buf) }

// Reset truncates the writer for reuse, keeping its buffer.
func (w *Writer) Reset() { w.buf = w.buf[:0] }
