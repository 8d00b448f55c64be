package tzif

import (
	"fmt"
	"io"

	"github.com/zriley/go-tzif/internal/beint"
)

// ParseBody decodes the version 2 data block of buf using the section
// counts of h, which must come from a prior ParseHeader of the same
// buffer.
//
// The data block is structured as follows with TIME_SIZE being 8:
//
//	+---------------------------------------------------------+
//	|  transition times          (timecnt x TIME_SIZE)        |
//	+---------------------------------------------------------+
//	|  transition types          (timecnt)                    |
//	+---------------------------------------------------------+
//	|  local time type records   (typecnt x 6)                |
//	+---------------------------------------------------------+
//	|  leap-second records       (leapcnt x (TIME_SIZE + 4))  |
//	+---------------------------------------------------------+
//	|  time zone designations    (charcnt)                    |
//	+---------------------------------------------------------+
//
// Leap-second records are skipped; the standard/wall and UT/local
// indicators trailing the designations are never read. Each section is
// bounds-checked before it is sliced, so a short buffer fails with a
// wrapped ErrTruncated naming the section. On error no partial result
// is returned.
func ParseBody(buf []byte, h Header) (TimeZoneData, error) {
	c := cursor{buf: buf}
	if err := c.skip(headerLen + int(h.V2Start)); err != nil {
		return TimeZoneData{}, fmt.Errorf("v2 data block: %w", err)
	}

	times, err := c.take(int(h.TransitionCount) * 8)
	if err != nil {
		return TimeZoneData{}, fmt.Errorf("transition times: %w", err)
	}
	idx, err := c.take(int(h.TransitionCount))
	if err != nil {
		return TimeZoneData{}, fmt.Errorf("transition types: %w", err)
	}
	recs, err := c.take(int(h.TypeCount) * 6)
	if err != nil {
		return TimeZoneData{}, fmt.Errorf("local time type records: %w", err)
	}
	if err := c.skip(int(h.LeapCount) * 12); err != nil {
		return TimeZoneData{}, fmt.Errorf("leap-second records: %w", err)
	}
	abbrevs, err := c.take(int(h.CharCount))
	if err != nil {
		return TimeZoneData{}, fmt.Errorf("time zone designations: %w", err)
	}

	d := TimeZoneData{
		TransitionTimes:     make([]int64, h.TransitionCount),
		TransitionTypeIndex: make([]uint8, h.TransitionCount),
		TimeTypes:           make([]TransitionType, h.TypeCount),
		Abbreviations:       make([]byte, h.CharCount),
	}
	for i := range d.TransitionTimes {
		d.TransitionTimes[i] = beint.I64(times[i*8 : i*8+8])
	}
	copy(d.TransitionTypeIndex, idx)
	for i := range d.TimeTypes {
		r := recs[i*6 : i*6+6]
		d.TimeTypes[i] = TransitionType{
			UTOffsetSeconds: beint.I32(r[:4]),
			IsDST:           r[4] != 0,
			AbbrevIndex:     r[5],
		}
	}
	copy(d.Abbreviations, abbrevs)
	return d, nil
}

// Parse decodes a complete version 2 TZif file from buf.
// It is shorthand for ParseHeader followed by ParseBody.
func Parse(buf []byte) (TimeZoneData, error) {
	h, err := ParseHeader(buf)
	if err != nil {
		return TimeZoneData{}, err
	}
	return ParseBody(buf, h)
}

// Decode reads r to completion and parses the result. The decode logic
// is single-sourced in Parse; Decode only adds the draining of the
// reader.
func Decode(r io.Reader) (TimeZoneData, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return TimeZoneData{}, fmt.Errorf("reading: %w", err)
	}
	return Parse(buf)
}
