//go:build unix

package fhandle

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// overWritePerm is u=rwx, g=r, o=r on files created by ModeOverWrite.
const overWritePerm = 0o744

type osFile struct {
	fd int
}

func openOSFile(path string, mode Mode) (file, error) {
	var (
		fd  int
		err error
	)
	switch mode {
	case ModeOverWrite:
		fd, err = unix.Open(path, unix.O_CREAT|unix.O_WRONLY|unix.O_TRUNC, overWritePerm)
	case ModeReadOnly:
		fd, err = unix.Open(path, unix.O_RDONLY, 0)
	default:
		return nil, ErrInvalidMode
	}
	if err != nil {
		return nil, err
	}
	return &osFile{fd: fd}, nil
}

func (f *osFile) pread(p []byte, off int64) (int, error) {
	return unix.Pread(f.fd, p, off)
}

func (f *osFile) pwrite(p []byte, off int64) (int, error) {
	return unix.Pwrite(f.fd, p, off)
}

func (f *osFile) seekEnd() (int64, error) {
	return unix.Seek(f.fd, 0, unix.SEEK_END)
}

func (f *osFile) sync() error {
	return unix.Fsync(f.fd)
}

func (f *osFile) close() error {
	return unix.Close(f.fd)
}

func (f *osFile) mapRegion(off, length int64) (*MappedRegion, error) {
	// mmap offsets must be page aligned; map from the containing page and
	// expose the caller's window into it.
	pageSize := int64(os.Getpagesize())
	aligned := off &^ (pageSize - 1)
	delta := int(off - aligned)

	data, err := unix.Mmap(f.fd, aligned, delta+int(length), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &MappedRegion{
		data:  data,
		off:   delta,
		size:  int(length),
		unmap: unix.Munmap,
	}, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}
	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	default:
		advice = unix.MADV_NORMAL
	}
	err := unix.Madvise(data, advice)
	if err == unix.EINVAL {
		// Alignment quibble from the kernel; the hint is advisory.
		return nil
	}
	return err
}

func isInterrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}

func errnoOf(err error) int {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
