// Package tzif decodes the binary TZif file format described by RFC8536.
// https://datatracker.ietf.org/doc/html/rfc8536
//
// Only version 2 files are supported because the decoder reads the
// 64-bit transition table of the version 2+ data block. The legacy
// 32-bit data block, the leap-second records and the POSIX TZ footer
// are skipped, not interpreted.
package tzif

import (
	"bytes"
	"fmt"

	"github.com/zriley/go-tzif/internal/beint"
)

// Version represents the version of a TZif file.
// The version is an octet identifying the version of the file's format.
// In V1, time values are 32bit (four-octets) and in V2 upwards time values
// are 64bit (eight-octets). The decoder relies on the 64bit data block and
// therefore only accepts V2.
type Version byte

func (v Version) String() string {
	switch v {
	case V1:
		return "V1 (0x00)"
	case V2:
		return "V2 (0x32)"
	case V3:
		return "V3 (0x33)"
	default:
		return fmt.Sprintf("<undefined version (%d)>", byte(v))
	}
}

const (
	// V1 represents a version 1 TZif file. V1 files contain only the
	// 32-bit header and data block and cannot be decoded by this package.
	V1 Version = 0x00
	// V2 represents a version 2 TZif file. V2 files contain the version 1
	// header and data block, a version 2 header and data block, and a
	// footer.
	V2 Version = 0x32
	// V3 represents a version 3 TZif file. V3 extends the footer TZ string
	// beyond POSIX requirements; since this package does not interpret the
	// footer it rejects V3 rather than silently half-supporting it.
	V3 Version = 0x33
)

// Magic is the four-octet ASCII sequence "TZif" (0x54 0x5A 0x69 0x66),
// which identifies the file as utilizing the Time Zone Information Format.
var Magic = [4]byte{'T', 'Z', 'i', 'f'}

// headerLen is the fixed size of a TZif header in bytes.
const headerLen = 44

// Header holds the six section counts of a TZif header together with the
// derived offset of the version 2 block.
//
// A TZif header is structured as follows (the lengths of multi-octet
// fields are shown in parentheses):
//
//	+---------------+---+
//	|  magic    (4) |ver|
//	+---------------+---+---------------------------------------+
//	|           [unused - reserved for future use] (15)         |
//	+---------------+---------------+---------------+-----------+
//	|  isutcnt  (4) |  isstdcnt (4) |  leapcnt  (4) |
//	+---------------+---------------+---------------+
//	|  timecnt  (4) |  typecnt  (4) |  charcnt  (4) |
//	+---------------+---------------+---------------+
type Header struct {
	// UTLocalCount is a four-octet unsigned integer specifying the number
	// of UT/local indicators contained in the data block -- MUST either be
	// zero or equal to TypeCount.
	UTLocalCount uint32

	// StdWallCount is a four-octet unsigned integer specifying the number
	// of standard/wall indicators contained in the data block -- MUST
	// either be zero or equal to TypeCount.
	StdWallCount uint32

	// LeapCount is a four-octet unsigned integer specifying the number of
	// leap-second records contained in the data block.
	LeapCount uint32

	// TransitionCount is a four-octet unsigned integer specifying the
	// number of transition times contained in the data block.
	TransitionCount uint32

	// TypeCount is a four-octet unsigned integer specifying the number of
	// local time type records contained in the data block -- MUST NOT be
	// zero.
	TypeCount uint32

	// CharCount is a four-octet unsigned integer specifying the total
	// number of octets used by the set of time zone designations contained
	// in the data block, including the trailing NUL (0x00) octet of the
	// last designation.
	CharCount uint32

	// V2Start is the size in bytes of the version 1 header and data block,
	// derived from the counts above. The version 2 header starts at this
	// offset and the version 2 data block at V2Start + 44.
	V2Start uint32
}

// ParseHeader validates the magic and version octets of buf and decodes
// the six section counts of the version 1 header.
//
// The counts in the version 1 header equal those of the version 2 header
// for files produced by zic, so the returned Header is used to slice the
// version 2 data block as well. ParseHeader is a pure function of buf and
// never retains it.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < headerLen {
		return Header{}, fmt.Errorf("header: need %d bytes, have %d: %w", headerLen, len(buf), ErrTruncated)
	}
	if !bytes.Equal(buf[:4], Magic[:]) {
		return Header{}, fmt.Errorf("%w: % x", ErrInvalidMagic, buf[:4])
	}
	if v := Version(buf[4]); v != V2 {
		return Header{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, v)
	}
	h := Header{
		UTLocalCount:    beint.U32(buf[0x14:0x18]),
		StdWallCount:    beint.U32(buf[0x18:0x1C]),
		LeapCount:       beint.U32(buf[0x1C:0x20]),
		TransitionCount: beint.U32(buf[0x20:0x24]),
		TypeCount:       beint.U32(buf[0x24:0x28]),
		CharCount:       beint.U32(buf[0x28:0x2C]),
	}
	// Version 1 section sizes: 4-octet transition times plus 1-octet type
	// indices, 6-octet type records, 8-octet leap records, 1 octet per
	// designation character and per indicator, preceded by the 44-octet
	// header itself.
	h.V2Start = h.TransitionCount*5 + h.TypeCount*6 + h.LeapCount*8 +
		h.CharCount + h.StdWallCount + h.UTLocalCount + headerLen
	return h, nil
}

// TransitionType is a local time type decoded from a six-octet record of
// the data block:
//
//	+---------------+---+---+
//	|  utoff (4)    |dst|idx|
//	+---------------+---+---+
type TransitionType struct {
	// UTOffsetSeconds is a four-octet signed integer specifying the number
	// of seconds to be added to UT in order to determine local time.
	UTOffsetSeconds int32

	// IsDST reports whether local time of this type is Daylight Saving
	// Time.
	IsDST bool

	// AbbrevIndex is a one-octet unsigned integer specifying a zero-based
	// index into Abbreviations, selecting the NUL-terminated designation
	// string of this type. The index is not validated during decoding; use
	// TimeZoneData.Abbreviation for a checked dereference.
	AbbrevIndex uint8
}

// TimeZoneData is the decoded version 2 data block of a TZif file.
//
// The first three slices are index-aligned: TransitionTimes[i] is the
// instant at which the type TimeTypes[TransitionTypeIndex[i]] takes
// effect. All slices are freshly allocated by the decoder and share no
// memory with the input buffer, so the caller may discard the source
// bytes immediately after parsing.
type TimeZoneData struct {
	// TransitionTimes is a series of eight-octet UNIX time values sorted
	// in strictly ascending order as stored in the file. The decoder does
	// not re-sort or verify the ordering.
	TransitionTimes []int64

	// TransitionTypeIndex holds one zero-based index into TimeTypes per
	// transition. Values are copied verbatim; the decoder does not verify
	// that they are below the declared type count (see Validate).
	TransitionTypeIndex []uint8

	// TimeTypes holds the local time type records of the data block.
	TimeTypes []TransitionType

	// Abbreviations is the raw series of NUL-terminated time zone
	// designation strings. Two designations may overlap if one is a suffix
	// of the other.
	Abbreviations []byte
}

// Abbreviation returns the designation string starting at byte offset idx
// of the abbreviation block. It reports false if idx points past the
// block or at a run of octets with no NUL terminator.
func (d TimeZoneData) Abbreviation(idx uint8) (string, bool) {
	if int(idx) >= len(d.Abbreviations) {
		return "", false
	}
	rest := d.Abbreviations[idx:]
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		return "", false
	}
	return string(rest[:n]), true
}

// Designations splits the abbreviation block into its NUL-terminated
// strings, in storage order. Overlapping designations appear once.
func (d TimeZoneData) Designations() []string {
	b := bytes.TrimSuffix(d.Abbreviations, []byte{0})
	if len(b) == 0 {
		return nil
	}
	parts := bytes.Split(b, []byte{0})
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}
