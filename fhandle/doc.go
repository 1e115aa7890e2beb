// Package fhandle provides a low-level, positioned file handle for storage
// engines.
//
// # Overview
//
// A [FileHandle] owns exactly one OS descriptor bound to a fixed path and a
// fixed open mode. Reads and writes take explicit offsets; there is no
// shared cursor, no buffering, and no locking. Partial transfers and
// signal-interrupted system calls are retried transparently until the
// requested byte count completes or a genuine error occurs, so callers can
// reason in exact byte counts.
//
// # Usage
//
//	h := fhandle.New("pages.db")
//	if err := h.Open(fhandle.ModeOverWrite); err != nil { ... }
//	defer h.Close()
//
//	n, err := h.Write(page, pageNo*pageSize)
//
// A short transfer is not an error by itself: a read that hits end of file
// returns the bytes that were available with a nil error, and callers must
// compare the returned count against the requested length. Hard I/O
// failures return a structured [notify.Error] carrying the OS error code
// and the file path, and the same record is published to [notify.Shared].
//
// # Thread Safety
//
// A FileHandle is not safe for concurrent Open/Close/TakeFrom. Concurrent
// positioned reads against an already-opened handle are safe; positioned
// I/O shares no cursor. Size repositions the descriptor's cursor and must
// not race with anything relying on it (nothing in this package does).
package fhandle
