// Command tzinspect decodes a compiled timezone file and prints its
// header counts, transition table, local time types and designations.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zriley/go-tzif/internal/unixtime"
	"github.com/zriley/go-tzif/tzif"
)

var (
	limitFlag = flag.Int("n", 0, "print at most n transitions (0 = all)")
	checkFlag = flag.Bool("check", false, "cross-check the decoded data against the header")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: tzinspect [-n limit] [-check] <tzif file>")
		os.Exit(1)
	}
	buf, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Println("reading file:", err)
		os.Exit(1)
	}

	h, err := tzif.ParseHeader(buf)
	if err != nil {
		fmt.Println("decoding header:", err)
		os.Exit(1)
	}
	d, err := tzif.ParseBody(buf, h)
	if err != nil {
		fmt.Println("decoding data block:", err)
		os.Exit(1)
	}
	if *checkFlag {
		if err := tzif.Validate(h, d); err != nil {
			fmt.Println("validation:", err)
			os.Exit(1)
		}
	}

	printHeader(h)
	printData(d)
}

func printHeader(h tzif.Header) {
	fmt.Println("Header")
	fmt.Println("  isutcnt  =", h.UTLocalCount)
	fmt.Println("  isstdcnt =", h.StdWallCount)
	fmt.Println("  leapcnt  =", h.LeapCount)
	fmt.Println("  timecnt  =", h.TransitionCount)
	fmt.Println("  typecnt  =", h.TypeCount)
	fmt.Println("  charcnt  =", h.CharCount)
	fmt.Println("  v2 block =", h.V2Start+44)
	fmt.Println()
}

func printData(d tzif.TimeZoneData) {
	n := len(d.TransitionTimes)
	if *limitFlag > 0 && *limitFlag < n {
		n = *limitFlag
	}
	fmt.Printf("Transitions (%d)\n", len(d.TransitionTimes))
	for i := 0; i < n; i++ {
		t := d.TransitionTimes[i]
		idx := d.TransitionTypeIndex[i]
		fmt.Printf("  %12d  %s  -> type %d %s\n", t, unixtime.FormatUTC(t), idx, typeName(d, idx))
	}
	if n < len(d.TransitionTimes) {
		fmt.Printf("  ... %d more\n", len(d.TransitionTimes)-n)
	}
	fmt.Println()

	fmt.Printf("Local time types (%d)\n", len(d.TimeTypes))
	for i, tt := range d.TimeTypes {
		abbrev, _ := d.Abbreviation(tt.AbbrevIndex)
		fmt.Printf("  %d: utoff=%-6d dst=%-5v %s\n", i, tt.UTOffsetSeconds, tt.IsDST, abbrev)
	}
	fmt.Println()

	fmt.Printf("Designations (%d bytes) = %v\n", len(d.Abbreviations), d.Designations())
}

func typeName(d tzif.TimeZoneData, idx uint8) string {
	if int(idx) >= len(d.TimeTypes) {
		return "<out of range>"
	}
	abbrev, ok := d.Abbreviation(d.TimeTypes[idx].AbbrevIndex)
	if !ok {
		return "<bad designation index>"
	}
	return abbrev
}
