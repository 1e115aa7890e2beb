//go:build windows

package fhandle

import (
	"errors"

	"golang.org/x/sys/windows"
)

type osFile struct {
	h windows.Handle
}

func openOSFile(path string, mode Mode) (file, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, err
	}
	var h windows.Handle
	switch mode {
	case ModeOverWrite:
		h, err = windows.CreateFile(p, windows.GENERIC_WRITE,
			windows.FILE_SHARE_READ, nil, windows.CREATE_ALWAYS,
			windows.FILE_ATTRIBUTE_NORMAL, 0)
	case ModeReadOnly:
		h, err = windows.CreateFile(p, windows.GENERIC_READ,
			windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
			windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	default:
		return nil, ErrInvalidMode
	}
	if err != nil {
		return nil, err
	}
	return &osFile{h: h}, nil
}

func (f *osFile) pread(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var done uint32
	ov := windows.Overlapped{
		Offset:     uint32(off),
		OffsetHigh: uint32(off >> 32),
	}
	err := windows.ReadFile(f.h, p, &done, &ov)
	if err != nil {
		if errors.Is(err, windows.ERROR_HANDLE_EOF) {
			// Same surface as a unix pread at end of file.
			return 0, nil
		}
		return 0, err
	}
	return int(done), nil
}

func (f *osFile) pwrite(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var done uint32
	ov := windows.Overlapped{
		Offset:     uint32(off),
		OffsetHigh: uint32(off >> 32),
	}
	if err := windows.WriteFile(f.h, p, &done, &ov); err != nil {
		return 0, err
	}
	return int(done), nil
}

func (f *osFile) seekEnd() (int64, error) {
	return windows.Seek(f.h, 0, windows.FILE_END)
}

func (f *osFile) sync() error {
	return windows.FlushFileBuffers(f.h)
}

func (f *osFile) close() error {
	return windows.CloseHandle(f.h)
}

func (f *osFile) mapRegion(off, length int64) (*MappedRegion, error) {
	return nil, ErrMmapUnsupported
}

func osAdvise(data []byte, pattern AccessPattern) error {
	return nil
}

// Windows has no EINTR; blocking calls are never interrupted by signals.
func isInterrupted(err error) bool {
	return false
}

func errnoOf(err error) int {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
