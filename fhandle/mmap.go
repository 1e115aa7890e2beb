package fhandle

import "errors"

// AccessPattern hints how a mapped region will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

var (
	// ErrMmapUnsupported indicates that mmap isn't supported on this platform.
	ErrMmapUnsupported = errors.New("fhandle: mmap unsupported on this platform")
	// ErrInvalidRange is returned when a map request falls outside the file.
	ErrInvalidRange = errors.New("fhandle: map range outside file")
)

// MappedRegion is a read-only memory-mapped window of a file.
//
// Bytes aliases the mapping directly; any view into it becomes invalid
// after Close. The region stays valid if the handle that created it is
// closed, since the kernel keeps the mapping alive.
type MappedRegion struct {
	data  []byte // whole mapping, page aligned
	off   int    // caller window offset inside data
	size  int
	unmap func([]byte) error
}

// Bytes returns the mapped window.
func (r *MappedRegion) Bytes() []byte {
	if r == nil || r.data == nil {
		return nil
	}
	return r.data[r.off : r.off+r.size]
}

// Advise provides kernel hints about the region's access pattern. The hint
// is advisory; failures other than genuine I/O problems are ignored.
func (r *MappedRegion) Advise(pattern AccessPattern) error {
	if r == nil || r.data == nil {
		return nil
	}
	return osAdvise(r.data, pattern)
}

// Close unmaps the region. Idempotent.
func (r *MappedRegion) Close() error {
	if r == nil || r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	return r.unmap(data)
}

// Map creates a read-only mapped view of length bytes starting at off.
// The requested range must lie inside the current file; page alignment is
// handled internally. Platforms without mmap support return
// ErrMmapUnsupported.
func (h *FileHandle) Map(off, length int64) (*MappedRegion, error) {
	if !h.IsOpened() {
		return nil, ErrNotOpened
	}
	if off < 0 || length <= 0 {
		return nil, ErrInvalidRange
	}
	size, err := h.Size()
	if err != nil {
		return nil, err
	}
	if off+length > size {
		return nil, ErrInvalidRange
	}
	r, err := h.file.mapRegion(off, length)
	if err != nil {
		if errors.Is(err, ErrMmapUnsupported) {
			return nil, err
		}
		return nil, h.record(err)
	}
	return r, nil
}
