// Package region supplies externally owned buffers for memlink views:
// memory-mapped files or ephemeral in-memory blocks. A region owns its
// storage for its whole lifetime; views linked onto it must not
// outlive it.
package region

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/memkit/memlink"
)

// InMemoryFileName can be passed to Open() to create an ephemeral
// in-memory region instead of a file-backed one.
const InMemoryFileName = ":memory:"

// ErrReadOnly is returned when a write-side operation is attempted on
// a read-only region.
var ErrReadOnly = errors.New("read-only")

// Open opens the named file as a region of at least size bytes and
// memory-maps it. A writable region grows the file to size if it is
// smaller; a read-only region requires the file to already be large
// enough. size zero means "the whole file as-is". If the file doesn't
// exist, it will be created if not in read-only mode.
func Open(fileName string, size int, readOnly bool, mode os.FileMode) (*Region, error) {
	if size < 0 {
		return nil, errors.New("negative region size")
	}

	if fileName == InMemoryFileName {
		return &Region{buf: make([]byte, size), readOnly: readOnly}, nil
	}

	mmapFlag := mmap.RDWR
	flag := os.O_CREATE | os.O_RDWR
	if readOnly {
		mmapFlag = mmap.RDONLY
		flag = os.O_RDONLY
	}

	f, err := os.OpenFile(fileName, flag, mode)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if size == 0 {
		size = int(fi.Size())
	} else if int64(size) > fi.Size() {
		if readOnly {
			_ = f.Close()
			return nil, fmt.Errorf("file smaller than requested region (%d < %d)", fi.Size(), size)
		}
		if err := f.Truncate(int64(size)); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	r := &Region{f: f, readOnly: readOnly}
	if size > 0 {
		m, err := mmap.Map(f, mmapFlag, 0)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		r.m = m
		r.buf = m[:size]
	}
	return r, nil
}

// Region is a fixed-size block of storage that memlink views can be
// linked onto. File-backed regions are memory-mapped.
type Region struct {
	f        *os.File
	m        mmap.MMap
	buf      []byte
	readOnly bool
}

// Bytes returns the region's storage. For read-only regions the slice
// must be treated as read-only; writes through it fault.
func (r *Region) Bytes() []byte { return r.buf }

// Size returns the region size in bytes.
func (r *Region) Size() int { return len(r.buf) }

// ReadOnly returns true if the region was opened in read-only mode.
func (r *Region) ReadOnly() bool { return r.readOnly }

// Link returns a fresh link onto the region's storage. The link is
// mutable for writable regions and observe-only for read-only ones.
func (r *Region) Link() *memlink.Link {
	if r.readOnly {
		return memlink.NewReadOnly(r.buf)
	}
	return memlink.NewLink(r.buf)
}

// Name returns the backing file name, or InMemoryFileName for
// ephemeral regions.
func (r *Region) Name() string {
	if r.f == nil {
		return InMemoryFileName
	}
	return r.f.Name()
}

// Sync flushes mapped changes to the backing file. Returns ErrReadOnly
// for read-only regions and is a no-op for in-memory ones.
func (r *Region) Sync() error {
	if r.readOnly {
		return ErrReadOnly
	}
	if r.m == nil {
		return nil
	}
	return r.m.Flush()
}

// Close unmaps the region and closes the backing file. Views linked
// onto the region must not be used after Close. Safe to call more
// than once.
func (r *Region) Close() error {
	if r.m != nil {
		if err := r.m.Unmap(); err != nil {
			return err
		}
		r.m = nil
	}
	r.buf = nil

	if r.f == nil {
		return nil
	}
	err := r.f.Close()
	r.f = nil
	return err
}

func (r *Region) String() string {
	return fmt.Sprintf(
		"Region{file='%s', readOnly=%t, size=%d, mmap=%t}",
		r.Name(), r.readOnly, len(r.buf), r.m != nil,
	)
}
