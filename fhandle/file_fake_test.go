package fhandle

// fakeFile implements the platform seam in memory so tests can script
// exactly what each positioned syscall returns.
type fakeFile struct {
	readFn  func(p []byte, off int64) (int, error)
	writeFn func(p []byte, off int64) (int, error)
	size    int64
	syncErr error
	syncs   int
	closes  int
}

func (f *fakeFile) pread(p []byte, off int64) (int, error) {
	if f.readFn != nil {
		return f.readFn(p, off)
	}
	return 0, nil
}

func (f *fakeFile) pwrite(p []byte, off int64) (int, error) {
	if f.writeFn != nil {
		return f.writeFn(p, off)
	}
	return len(p), nil
}

func (f *fakeFile) seekEnd() (int64, error) {
	return f.size, nil
}

func (f *fakeFile) sync() error {
	f.syncs++
	return f.syncErr
}

func (f *fakeFile) close() error {
	f.closes++
	return nil
}

func (f *fakeFile) mapRegion(off, length int64) (*MappedRegion, error) {
	return nil, ErrMmapUnsupported
}

// handleOn wires a fake into an already-opened handle.
func handleOn(f file, mode Mode) *FileHandle {
	return &FileHandle{path: "/fake/path", file: f, mode: mode}
}

// chunked serves content in transfers of at most chunk bytes, returning
// zero at end of file like a real pread.
func chunked(content []byte, chunk int) func(p []byte, off int64) (int, error) {
	return func(p []byte, off int64) (int, error) {
		if off >= int64(len(content)) {
			return 0, nil
		}
		end := off + int64(chunk)
		if end > int64(len(content)) {
			end = int64(len(content))
		}
		return copy(p, content[off:end]), nil
	}
}
