// Package interchange converts the entry list to and from comma-delimited
// text: timestamped snapshot exports and the entries.csv startup import.
package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"rdms/internal/entry"
	"rdms/internal/logging"
)

// DefaultPrefix is the filename prefix of exported snapshots.
const DefaultPrefix = "research_data"

// ErrNoEntries is returned by Export when there is nothing to save.
var ErrNoEntries = errors.New("no entries to save")

// Filename returns the snapshot name for an export made at now, in local time:
// <prefix>_YYYYMMDD_HHMMSS.csv.
func Filename(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s_%s.csv", prefix, now.Local().Format("20060102_150405"))
}

// Write encodes the header row followed by one row per entry.
func Write(w io.Writer, entries []entry.Entry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(entry.Columns); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writer.Write(e.Fields()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Exporter writes snapshot files into a directory.
type Exporter struct {
	Dir    string
	Prefix string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Export writes entries to a new snapshot file and returns its path.
// An empty list returns ErrNoEntries and writes nothing. Two exports in the
// same second share a name; the later one wins.
func (x Exporter) Export(entries []entry.Entry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoEntries
	}
	now := time.Now
	if x.Now != nil {
		now = x.Now
	}

	timer := logging.StartTimer(logging.CategoryInterchange, "export")
	defer timer.Stop()

	path := filepath.Join(x.Dir, Filename(x.Prefix, now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, entries); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	logging.Interchange("exported %d entries to %s", len(entries), path)
	return path, nil
}

// Export writes entries into dir using the default prefix and the given time.
func Export(entries []entry.Entry, dir string, now time.Time) (string, error) {
	return Exporter{Dir: dir, Now: func() time.Time { return now }}.Export(entries)
}
