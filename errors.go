package memlink

import "errors"

var (
	// ErrNotWritable is returned when a mutating operation that touches
	// at least one byte is attempted through a link without mutation
	// capability (unlinked, or linked from a read-only source).
	ErrNotWritable = errors.New("link is not writable")

	// ErrOutOfBounds is returned when a requested range falls outside
	// the live extent of the view.
	ErrOutOfBounds = errors.New("range out of bounds")

	// ErrElemMismatch is returned when a length is not a multiple of
	// the view's element size.
	ErrElemMismatch = errors.New("length not a multiple of element size")

	// ErrOffsetMismatch is returned when a structural edit starts in
	// the middle of an element.
	ErrOffsetMismatch = errors.New("offset not on an element boundary")
)
