package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"rdms/internal/entry"
	"rdms/internal/logging"
)

// ImportFile is the name of the file loaded at startup.
const ImportFile = "entries.csv"

// RowError describes a data row that was skipped during import.
type RowError struct {
	Line   int // 1-based line the row starts on
	Fields int // number of fields found, 0 when the row did not parse
	Err    error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// ErrFieldCount marks a row that does not have exactly four fields.
var ErrFieldCount = errors.New("wrong number of fields")

// Result is what an import produced.
type Result struct {
	Found   bool // false when the file does not exist
	Entries []entry.Entry
	Skipped []RowError
}

// Read decodes r. The first row is a header and is discarded without
// inspection. Rows that do not hold exactly four fields, or that fail to
// parse, are skipped and reported; the remaining rows are still read.
func Read(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	res := Result{Found: true, Entries: make([]entry.Entry, 0)}
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return res, err
			}
			if header {
				header = false
				continue
			}
			res.Skipped = append(res.Skipped, RowError{Line: perr.StartLine, Err: perr.Err})
			continue
		}
		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)
		e, err := entry.FromFields(record)
		if err != nil {
			res.Skipped = append(res.Skipped, RowError{
				Line:   line,
				Fields: len(record),
				Err:    fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, len(entry.Columns), len(record)),
			})
			continue
		}
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}

// Load reads the file at path. A missing file is not an error: the result
// is empty with Found set to false.
func Load(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Interchange("no import file at %s", path)
			return Result{Entries: make([]entry.Entry, 0)}, nil
		}
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := Read(f)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	for _, skipped := range res.Skipped {
		logging.InterchangeWarn("skipped row in %s: %v", path, skipped)
	}
	logging.Interchange("imported %d entries from %s (%d skipped)", len(res.Entries), path, len(res.Skipped))
	return res, nil
}

// LoadInto loads path and appends every parsed entry to store in file order.
// On error the store is left unchanged.
func LoadInto(store *entry.Store, path string) (Result, error) {
	res, err := Load(path)
	if err != nil {
		return res, err
	}
	for _, e := range res.Entries {
		store.Append(e)
	}
	return res, nil
}
