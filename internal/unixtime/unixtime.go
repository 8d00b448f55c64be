// Package unixtime converts between Unix timestamps and civil date and
// time in UTC without depending on time.Location. Transition times in
// timezone data are the input to time.Location, so a tool printing them
// should not need to load one.
//
// The calendar math assumes the proleptic Gregorian calendar and ignores
// leap seconds but respects leap years. It is based on the Go standard
// library's time package.
package unixtime

import "fmt"

// FromDateTime converts a given date and time to a Unix timestamp, i.e.
// the number of seconds since 1970-01-01 00:00:00 UTC.
func FromDateTime(year int, month int, day int, hour int, minute int, second int) int64 {
	d := daysSinceEpoch(year) + uint64(daysBefore[month-1]) + (uint64(day) - 1)
	if month > 2 && isLeap(year) {
		d++ // +leap day
	}
	abs := d*secondsPerDay + uint64(hour)*secondsPerHour + uint64(minute)*secondsPerMinute + uint64(second)
	return int64(abs) + (absoluteToInternal + internalToUnix)
}

// ToDateTime converts a Unix timestamp to its date and time in UTC,
// inverting FromDateTime. Months are 1-based.
func ToDateTime(unix int64) (year int, month int, day int, hour int, minute int, second int) {
	abs := uint64(unix + unixToInternal + internalToAbsolute)

	secs := abs % secondsPerDay
	hour = int(secs / secondsPerHour)
	minute = int(secs/secondsPerMinute) % 60
	second = int(secs % secondsPerMinute)

	d := abs / secondsPerDay

	// Strip off 400-year, 100-year and 4-year cycles, then whole years.
	// The n -= n >> 2 corrections keep day 0 of a cycle in the preceding
	// century/year, since the 100-year and 1-year estimates overshoot on
	// cycle boundaries.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday := int(d)

	day = yday
	if isLeap(year) {
		switch {
		case day > 31+29-1:
			day--
		case day == 31+29-1:
			return year, 2, 29, hour, minute, second
		}
	}
	m := day / 31
	end := daysBefore[m+1]
	var begin int
	if day >= end {
		m++
		begin = end
	} else {
		begin = daysBefore[m]
	}
	month = m + 1
	day = day - begin + 1
	return year, month, day, hour, minute, second
}

// FormatUTC renders a Unix timestamp as "YYYY-MM-DD hh:mm:ss UTC".
func FormatUTC(unix int64) string {
	y, mo, d, h, mi, s := ToDateTime(unix)
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d UTC", y, mo, d, h, mi, s)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysBefore[m] counts the days in a non-leap year before the start of
// month m+1.
var daysBefore = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// The constants were copied from time.go in the Go standard library's time package.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	daysPer400Years  = 365*400 + 97
	daysPer100Years  = 365*100 + 24
	daysPer4Years    = 365*4 + 1

	absoluteZeroYear         = -292277022399
	internalYear             = 1
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425 * secondsPerDay
	internalToAbsolute       = -absoluteToInternal
	unixToInternal     int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix     int64 = -unixToInternal
)

// daysSinceEpoch takes a year and returns the number of days from
// the absolute epoch to the start of that year.
// This is basically (year - zeroYear) * 365, but accounting for leap days.
//
// This function was copied from time.go in the Go standard library time package.
func daysSinceEpoch(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// Add in days from 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// Add in 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// Add in 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Add in non-leap years.
	n = y
	d += 365 * n

	return d
}
