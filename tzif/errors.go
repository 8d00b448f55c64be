package tzif

import "errors"

// Sentinel errors reported by the decoder. They are always wrapped with
// the failing section for context, so match them with errors.Is.
var (
	// ErrInvalidMagic means the buffer does not start with the "TZif"
	// magic octets and is not a TZif file at all.
	ErrInvalidMagic = errors.New("tzif: invalid magic")

	// ErrUnsupportedFormat means the file is a TZif file but its version
	// octet is not the version 2 marker. Version 1 files lack the 64-bit
	// data block and version 3+ files add footer semantics this package
	// does not implement.
	ErrUnsupportedFormat = errors.New("tzif: unsupported format version")

	// ErrTruncated means a section declared by the header extends past
	// the end of the supplied buffer.
	ErrTruncated = errors.New("tzif: truncated data")
)
