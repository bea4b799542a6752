package memlink

import "github.com/memkit/memlink/byteops"

// poisonByte marks destructed storage in diagnostic builds so that
// use-after-destruct reads are recognizable.
const poisonByte = 0xCD

// Link is a mutable view over a contiguous block of memory owned
// elsewhere. It embeds the read-only View and layers mutation on top:
// the mutable alias always points at exactly the observed extent, or
// is nil when the link carries no mutation capability.
//
// Copying a Link copies the descriptor only; both copies alias the
// same block. Zero value is an empty, unlinked link.
type Link struct {
	View
	rw []byte

	// OnConstruct, when set, replaces the default zero-fill performed
	// by ConstructBlock. Subtypes managing non-trivial elements hook
	// real initialization here.
	OnConstruct func(b []byte)

	// OnDestruct, when set, replaces the default poison-fill performed
	// by DestructBlock in diagnostic builds.
	OnDestruct func(b []byte)
}

// New returns an empty, unlinked link.
func New() *Link { return &Link{} }

// NewLink returns a link that can both observe and mutate p.
func NewLink(p []byte) *Link {
	return &Link{View: NewView(p), rw: p}
}

// NewReadOnly returns a link that observes p but may not mutate it.
// Mutating operations on the result fail with ErrNotWritable.
func NewReadOnly(p []byte) *Link {
	return &Link{View: NewView(p)}
}

// FromView returns a link observing the same extent as v. Constructing
// from a read-only view never grants mutation capability, even if the
// receiver previously had it.
func FromView(v View) *Link {
	return &Link{View: v}
}

// Writable reports whether the link carries mutation capability.
func (l *Link) Writable() bool { return l.rw != nil }

// Data returns the mutable alias of the observed extent, or nil when
// the link is read-only or unlinked.
func (l *Link) Data() []byte { return l.rw }

// Link re-targets the link onto p with full mutation capability.
// len(p) becomes the new size unconditionally.
func (l *Link) Link(p []byte) {
	l.View.Link(p)
	l.rw = p
}

// Unlink resets the link to the empty state. The block is not freed;
// storage is owned elsewhere.
func (l *Link) Unlink() {
	l.View.Unlink()
	l.rw = nil
}

// Resize changes the live size, keeping the mutable alias in sync with
// the observed extent.
func (l *Link) Resize(n int) error {
	if err := l.View.Resize(n); err != nil {
		return err
	}
	if l.rw != nil {
		l.rw = l.rw[:n]
	}
	return nil
}

// Swap exchanges the full descriptors of the two links in place,
// hooks included. No block data moves.
func (l *Link) Swap(o *Link) { *l, *o = *o, *l }

// Copy writes src into the block starting at byte offset start. The
// destination range must lie within the live extent and len(src) must
// be a multiple of the element size. Overlapping ranges are handled
// like a move. Copying a block onto itself (src sharing the block's
// first byte) is a no-op.
func (l *Link) Copy(start int, src []byte) error {
	n := len(src)
	if err := l.check(start, n); err != nil {
		return err
	}
	if n == 0 || &src[0] == &l.rw[0] {
		return nil
	}
	copy(l.rw[start:start+n], src)
	return nil
}

// Fill writes count back-to-back copies of pattern starting at byte
// offset start. len(pattern) must be a multiple of the element size
// and the filled range must lie within the live extent.
func (l *Link) Fill(start int, pattern []byte, count int) error {
	elSize := len(pattern)
	if count < 0 {
		return ErrOutOfBounds
	}
	if elSize%l.ElemSize() != 0 {
		return ErrElemMismatch
	}
	if err := l.check(start, elSize*count); err != nil {
		return err
	}
	if elSize == 0 || count == 0 {
		return nil
	}
	if elSize == 1 {
		b := l.rw[start : start+count]
		for i := range b {
			b[i] = pattern[0]
		}
		return nil
	}
	for off := start; count > 0; count-- {
		copy(l.rw[off:off+elSize], pattern)
		off += elSize
	}
	return nil
}

// Insert opens a gap of n uninitialized bytes at byte offset start by
// rotating the tail of the live extent into place. The live size does
// not change: the caller must have grown it beforehand to make room.
// The contents of the opened gap are undefined.
func (l *Link) Insert(start, n int) error {
	if err := l.checkEdit(start, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	b := l.rw[start:l.Size()]
	byteops.Rotate(b, len(b)-n)
	return nil
}

// Erase closes the n-byte range at byte offset start by rotating it to
// the tail of the live extent. The live size does not change: the
// caller shrinks it afterwards. The contents of the now-trailing n
// bytes are undefined.
func (l *Link) Erase(start, n int) error {
	if err := l.checkEdit(start, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	byteops.Rotate(l.rw[start:l.Size()], n)
	return nil
}

// ConstructBlock initializes freshly claimed storage. The default
// zero-fills b; set OnConstruct to run real element construction
// instead. len(b) must be a multiple of the element size.
func (l *Link) ConstructBlock(b []byte) error {
	if len(b)%l.ElemSize() != 0 {
		return ErrElemMismatch
	}
	if l.OnConstruct != nil {
		l.OnConstruct(b)
		return nil
	}
	clear(b)
	return nil
}

// DestructBlock deinitializes storage that is being released. In
// diagnostic builds (the "poison" build tag) the default overwrites b
// with a fixed poison byte; otherwise it is a no-op. Set OnDestruct to
// run real element destruction instead. len(b) must be a multiple of
// the element size.
func (l *Link) DestructBlock(b []byte) error {
	if len(b)%l.ElemSize() != 0 {
		return ErrElemMismatch
	}
	if l.OnDestruct != nil {
		l.OnDestruct(b)
		return nil
	}
	if poisonBlocks {
		for i := range b {
			b[i] = poisonByte
		}
	}
	return nil
}

// check validates a write of n bytes at offset start.
func (l *Link) check(start, n int) error {
	if start < 0 || n < 0 || start+n > l.Size() {
		return ErrOutOfBounds
	}
	if n%l.ElemSize() != 0 {
		return ErrElemMismatch
	}
	if n > 0 && l.rw == nil {
		return ErrNotWritable
	}
	return nil
}

// checkEdit additionally requires the edit to start on an element
// boundary, since Insert and Erase shift whole elements.
func (l *Link) checkEdit(start, n int) error {
	if err := l.check(start, n); err != nil {
		return err
	}
	if start%l.ElemSize() != 0 {
		return ErrOffsetMismatch
	}
	return nil
}
