// Package zonedb loads compiled timezone entries from a zoneinfo
// directory tree and decodes them with the tzif package.
//
// The package owns everything the decoder deliberately does not: zone
// name resolution against a list of source directories, file I/O, and
// caching of decoded zones across calls.
package zonedb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zriley/go-tzif/tzif"
)

// DefaultSources lists the zoneinfo directories consulted when a DB is
// created without explicit sources, in lookup order. These are the
// locations used by tzset implementations on common Unix systems.
var DefaultSources = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// ErrUnknownZone is returned by Load when no source directory contains
// an entry for the requested zone name.
var ErrUnknownZone = errors.New("zonedb: unknown time zone")

// DB resolves zone names against a list of zoneinfo directories and
// caches decoded zones. A DB is safe for concurrent use.
type DB struct {
	dirs []string

	mu    sync.Mutex
	cache map[string]*tzif.TimeZoneData
}

// New returns a DB reading from the given directories in order. Without
// arguments it reads from DefaultSources.
func New(dirs ...string) *DB {
	if len(dirs) == 0 {
		dirs = DefaultSources
	}
	return &DB{dirs: dirs, cache: make(map[string]*tzif.TimeZoneData)}
}

// DefaultDB reads from DefaultSources and backs the package-level Load.
var DefaultDB = New()

// Load loads the named zone from DefaultDB.
func Load(name string) (*tzif.TimeZoneData, error) {
	return DefaultDB.Load(name)
}

// Load resolves name against the DB's source directories, decodes the
// first matching file and caches the result. Repeated loads of the same
// name return the same decoded value.
//
// Zone names are IANA names such as "America/Phoenix". Names that would
// escape the source directories are rejected before any file access.
func (db *DB) Load(name string) (*tzif.TimeZoneData, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	db.mu.Lock()
	d, ok := db.cache[name]
	db.mu.Unlock()
	if ok {
		return d, nil
	}

	var firstErr error
	for _, dir := range db.dirs {
		buf, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if firstErr == nil && !os.IsNotExist(err) {
				firstErr = err
			}
			continue
		}
		data, err := tzif.Parse(buf)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", name, err)
		}
		db.mu.Lock()
		// A concurrent Load may have won; keep its result so that
		// repeated loads keep returning the same value.
		if cached, ok := db.cache[name]; ok {
			db.mu.Unlock()
			return cached, nil
		}
		db.cache[name] = &data
		db.mu.Unlock()
		return &data, nil
	}
	if firstErr != nil {
		return nil, fmt.Errorf("zone %s: %w", name, firstErr)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownZone, name)
}

// checkName applies the zone name rules of time.LoadLocation: no empty
// names, no absolute paths and no path elements that climb out of the
// source directory.
func checkName(name string) error {
	if name == "" || name[0] == '/' || name[0] == '\\' {
		return fmt.Errorf("zonedb: invalid zone name %q", name)
	}
	for _, e := range strings.Split(name, "/") {
		if e == "" || e == "." || e == ".." {
			return fmt.Errorf("zonedb: invalid zone name %q", name)
		}
	}
	return nil
}
