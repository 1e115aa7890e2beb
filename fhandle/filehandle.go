package fhandle

import (
	"errors"
	"io"

	"github.com/smallbuer/wcdb/notify"
)

var (
	// ErrInvalidMode is returned when Open is called with ModeNone.
	ErrInvalidMode = errors.New("fhandle: invalid open mode")
	// ErrNotOpened is returned when an operation requires an opened handle.
	ErrNotOpened = errors.New("fhandle: handle is not opened")
	// ErrPathMismatch is returned when ownership transfer is attempted
	// between handles bound to different paths.
	ErrPathMismatch = errors.New("fhandle: handles are bound to different paths")
)

// file is the platform seam: positioned syscalls on one open descriptor.
type file interface {
	pread(p []byte, off int64) (int, error)
	pwrite(p []byte, off int64) (int, error)
	seekEnd() (int64, error)
	sync() error
	close() error
	mapRegion(off, length int64) (*MappedRegion, error)
}

// FileHandle owns one OS descriptor for one path.
//
// The handle is unopened while file is nil; mode records the last mode
// used, which Close deliberately leaves in place.
type FileHandle struct {
	path string
	file file
	mode Mode
}

// New creates an unopened handle bound to path. Nothing touches the disk
// until Open.
func New(path string) *FileHandle {
	return &FileHandle{path: path}
}

// Path returns the path the handle is bound to.
func (h *FileHandle) Path() string {
	return h.path
}

// Mode returns the mode most recently passed to a successful Open.
func (h *FileHandle) Mode() Mode {
	return h.mode
}

// IsOpened reports whether the handle currently holds a descriptor.
func (h *FileHandle) IsOpened() bool {
	return h.file != nil
}

// Open acquires the descriptor. Opening an already-opened handle succeeds
// without reopening or truncating; this idempotence is part of the
// contract. On failure the handle stays unopened and the returned error is
// also published to the shared notifier.
func (h *FileHandle) Open(mode Mode) error {
	if mode == ModeNone {
		return ErrInvalidMode
	}
	if h.IsOpened() {
		return nil
	}
	f, err := openOSFile(h.path, mode)
	if err != nil {
		return h.record(err)
	}
	h.file = f
	h.mode = mode
	return nil
}

// Close releases the descriptor. Handles opened for overwrite are fsynced
// first so that Close is the durability point; there is no destructor to
// fall back on. Closing an unopened handle is a contract violation and
// returns ErrNotOpened.
func (h *FileHandle) Close() error {
	if !h.IsOpened() {
		return ErrNotOpened
	}
	f := h.file
	h.file = nil
	if h.mode == ModeOverWrite {
		if err := f.sync(); err != nil {
			_ = f.close()
			return h.record(err)
		}
	}
	if err := f.close(); err != nil {
		return h.record(err)
	}
	return nil
}

// Sync flushes written content to stable storage.
func (h *FileHandle) Sync() error {
	if !h.IsOpened() {
		return ErrNotOpened
	}
	if err := h.file.sync(); err != nil {
		return h.record(err)
	}
	return nil
}

// Size returns the end-of-file offset in bytes. It repositions the file
// cursor to end of file as a side effect; callers must use the positioned
// Read/Write and never rely on the cursor. On failure it returns -1 and
// the recorded error.
func (h *FileHandle) Size() (int64, error) {
	if !h.IsOpened() {
		return -1, ErrNotOpened
	}
	n, err := h.file.seekEnd()
	if err != nil {
		return -1, h.record(err)
	}
	return n, nil
}

// Read copies up to len(p) bytes starting at off into p.
//
// Interrupted system calls are reissued with no progress lost, and short
// reads continue from where they stopped. Hitting end of file before p is
// full terminates the loop with a nil error; the returned count is what
// was actually available. A hard error returns the bytes transferred so
// far together with the recorded error, so callers detect truncation by
// comparing the count against len(p).
func (h *FileHandle) Read(p []byte, off int64) (int, error) {
	if !h.IsOpened() {
		return 0, ErrNotOpened
	}
	total := 0
	for total < len(p) {
		got, err := h.file.pread(p[total:], off+int64(total))
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return total, h.record(err)
		}
		if got == 0 {
			break
		}
		total += got
	}
	return total, nil
}

// Write copies len(p) bytes from p to the file starting at off, with the
// same retry contract as Read. Writes have no end-of-file terminus: a
// write that returns zero progress without an OS error is a hard error.
func (h *FileHandle) Write(p []byte, off int64) (int, error) {
	if !h.IsOpened() {
		return 0, ErrNotOpened
	}
	total := 0
	for total < len(p) {
		wrote, err := h.file.pwrite(p[total:], off+int64(total))
		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return total, h.record(err)
		}
		if wrote == 0 {
			return total, h.record(io.ErrShortWrite)
		}
		total += wrote
	}
	return total, nil
}

// TakeFrom transfers ownership of other's descriptor and mode to h, and
// reverts other to the unopened state. Both handles must be bound to the
// same path. If h already holds a descriptor it is closed first so no
// descriptor leaks.
func (h *FileHandle) TakeFrom(other *FileHandle) error {
	if h.path != other.path {
		return ErrPathMismatch
	}
	if h == other {
		return nil
	}
	if h.IsOpened() {
		if err := h.Close(); err != nil {
			return err
		}
	}
	h.file = other.file
	h.mode = other.mode
	other.file = nil
	other.mode = ModeNone
	return nil
}

// record builds the structured error for err, publishes it to the shared
// notifier, and returns it.
func (h *FileHandle) record(err error) error {
	e := notify.NewSystemError(notify.CodeIOError, errnoOf(err), err)
	e.WithInfo("Path", h.path)
	notify.Shared().Notify(e)
	return e
}
