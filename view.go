// Package memlink provides non-owning views over contiguous blocks of
// memory with explicit element-size semantics. A View observes a block,
// a Link additionally mutates it. Neither ever allocates or frees the
// block it describes.
package memlink

// View is a read-only descriptor of a contiguous block of memory owned
// elsewhere. It tracks the observed extent and the element size that
// all structural edits must align to. Zero value is an empty view
// ready to use.
type View struct {
	data []byte
	elem int
}

// NewView returns a view observing p. The view reports len(p) as its
// size and can be shrunk up to cap(p) worth of extent via Resize.
func NewView(p []byte) View {
	return View{data: p}
}

// Bytes returns the observed extent. The returned slice aliases the
// underlying block; callers must treat it as read-only.
func (v *View) Bytes() []byte { return v.data }

// Size returns the number of live bytes in the observed extent.
func (v *View) Size() int { return len(v.data) }

// IsEmpty reports whether the view observes no bytes.
func (v *View) IsEmpty() bool { return len(v.data) == 0 }

// At returns the byte at offset i. Panics if i is out of range.
func (v *View) At(i int) byte { return v.data[i] }

// Slice returns the sub-range [from, to) of the observed extent. The
// result aliases the underlying block.
func (v *View) Slice(from, to int) []byte { return v.data[from:to] }

// ElemSize returns the element granularity of the view in bytes.
// Views created without an explicit element size report 1.
func (v *View) ElemSize() int {
	if v.elem <= 0 {
		return 1
	}
	return v.elem
}

// SetElemSize sets the element granularity used to validate offsets
// and lengths of structural edits. The granularity survives Link and
// Unlink since it is a property of the observer, not the storage.
func (v *View) SetElemSize(n int) error {
	if n <= 0 {
		return ErrElemMismatch
	}
	v.elem = n
	return nil
}

// Resize changes the live size of the view without touching the block
// contents. Growth is allowed up to the capacity of the linked extent.
func (v *View) Resize(n int) error {
	if n < 0 || n > cap(v.data) {
		return ErrOutOfBounds
	}
	v.data = v.data[:n]
	return nil
}

// Link re-targets the view onto p. len(p) becomes the new size
// unconditionally.
func (v *View) Link(p []byte) { v.data = p }

// Unlink detaches the view from its block. The block itself is not
// touched; its lifetime is managed by whoever owns it.
func (v *View) Unlink() { v.data = nil }

// Swap exchanges the descriptors of the two views in place. No block
// data moves.
func (v *View) Swap(o *View) { *v, *o = *o, *v }
