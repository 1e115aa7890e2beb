package fhandle

// Mode selects how a handle opens its file. The zero value ModeNone marks
// a handle that has never been opened and is not a valid argument to Open.
type Mode int

const (
	ModeNone Mode = iota
	// ModeReadOnly opens an existing file for reading.
	ModeReadOnly
	// ModeOverWrite creates the file if absent, truncates existing
	// content, and opens it write-only.
	ModeOverWrite
)

func (m Mode) String() string {
	switch m {
	case ModeReadOnly:
		return "ReadOnly"
	case ModeOverWrite:
		return "OverWrite"
	default:
		return "None"
	}
}
