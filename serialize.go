package memlink

import "github.com/memkit/memlink/stream"

// Encode writes the observed block to w as a length-prefixed record:
// the live size as an unsigned integer, the raw bytes, then zero
// padding up to the writer's alignment grain.
func (v *View) Encode(w *stream.Writer) {
	w.WriteUint64(uint64(v.Size()))
	w.WriteBytes(v.data)
	w.Align()
}

// Decode populates the block from a record produced by Encode. The
// serialized length must be a multiple of the element size. If the
// record holds more bytes than the link's current size, the excess is
// discarded: the link reads what fits, shrinks to the bytes actually
// consumed, and skips the remainder so the cursor ends up past the
// whole record, alignment padding included. The link never grows to
// fit incoming data; sizing it beforehand is the caller's job.
func (l *Link) Decode(r *stream.Reader) error {
	n, err := r.ReadUint64()
	if err != nil {
		return err
	}
	if n%uint64(l.ElemSize()) != 0 {
		return ErrElemMismatch
	}

	btr := int(n)
	if sz := l.Size(); btr > sz {
		btr = sz
	}
	if btr > 0 {
		if l.rw == nil {
			return ErrNotWritable
		}
		if err := r.ReadFull(l.rw[:btr]); err != nil {
			return err
		}
	}
	if err := l.Resize(btr); err != nil {
		return err
	}
	if err := r.Skip(int(n) - btr); err != nil {
		return err
	}
	return r.Align()
}
