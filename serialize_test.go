package memlink

import (
	"bytes"
	"testing"

	"github.com/memkit/memlink/stream"
)

func TestLink_EncodeDecode(t *testing.T) {
	t.Parallel()

	src := NewLink([]byte("hello world"))
	w := stream.NewWriter(0)
	src.Encode(w)

	// uint64 size + 11 bytes, padded to the next 8-byte boundary
	if w.Pos() != 24 {
		t.Errorf("Encode() want 24 bytes, got=%d", w.Pos())
	}

	buf := make([]byte, 11)
	dst := NewLink(buf)
	r := stream.NewReader(w.Bytes(), 0)
	if err := dst.Decode(r); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if !bytes.Equal(dst.Bytes(), []byte("hello world")) {
		t.Errorf("Decode() want=%q, got=%q", "hello world", dst.Bytes())
	}
	if r.Remaining() != 0 {
		t.Errorf("Decode() expected cursor at end, %d bytes left", r.Remaining())
	}
}

func TestLink_DecodeTruncates(t *testing.T) {
	t.Parallel()

	src := NewLink([]byte("0123456789abcde")) // 15 bytes
	w := stream.NewWriter(0)
	src.Encode(w)

	// destination holds 8 of the 15 serialized bytes; the rest is
	// discarded but the cursor still ends past the whole record
	dst := NewLink(make([]byte, 8))
	r := stream.NewReader(w.Bytes(), 0)
	if err := dst.Decode(r); err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if dst.Size() != 8 {
		t.Errorf("Decode() want size=8, got=%d", dst.Size())
	}
	if !bytes.Equal(dst.Bytes(), []byte("01234567")) {
		t.Errorf("Decode() unexpected contents: %q", dst.Bytes())
	}
	if r.Pos() != w.Pos() {
		t.Errorf("Decode() cursor want=%d, got=%d", w.Pos(), r.Pos())
	}
}

func TestLink_DecodeElemMismatch(t *testing.T) {
	t.Parallel()

	w := stream.NewWriter(0)
	w.WriteUint64(10)
	w.WriteBytes(make([]byte, 10))
	w.Align()

	dst := NewLink(make([]byte, 16))
	_ = dst.SetElemSize(4)

	if err := dst.Decode(stream.NewReader(w.Bytes(), 0)); err != ErrElemMismatch {
		t.Errorf("Decode() want=ErrElemMismatch, got=%v", err)
	}
}

func TestLink_DecodeReadOnly(t *testing.T) {
	t.Parallel()

	w := stream.NewWriter(0)
	src := NewLink([]byte("data"))
	src.Encode(w)

	ro := NewReadOnly(make([]byte, 8))
	if err := ro.Decode(stream.NewReader(w.Bytes(), 0)); err != ErrNotWritable {
		t.Errorf("Decode() read-only want=ErrNotWritable, got=%v", err)
	}

	// an empty record decodes fine even without mutation capability
	w2 := stream.NewWriter(0)
	empty := New()
	empty.Encode(w2)
	if err := ro.Decode(stream.NewReader(w2.Bytes(), 0)); err != nil {
		t.Errorf("Decode() empty record unexpected error: %v", err)
	}
	if ro.Size() != 0 {
		t.Errorf("Decode() empty record want size=0, got=%d", ro.Size())
	}
}
