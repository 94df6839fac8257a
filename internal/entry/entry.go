// Package entry holds the research record type and the in-memory store
// the form appends to.
package entry

import (
	"fmt"
	"strings"
)

// Column labels, in field order. The interchange header uses these verbatim.
var Columns = []string{"Experiment Name", "Researcher Name", "Date", "Description"}

// Entry is one research record. All four fields are required at creation
// time; the store does not check them again.
type Entry struct {
	ExperimentName string
	Researcher     string
	Date           string // free text, the form suggests YYYY-MM-DD
	Description    string
}

// Fields returns the values in column order.
func (e Entry) Fields() []string {
	return []string{e.ExperimentName, e.Researcher, e.Date, e.Description}
}

// String renders the list line shown in the entries pane.
func (e Entry) String() string {
	return strings.Join(e.Fields(), " - ")
}

// FromFields builds an Entry from exactly four values in column order.
func FromFields(fields []string) (Entry, error) {
	if len(fields) != len(Columns) {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", len(Columns), len(fields))
	}
	return Entry{
		ExperimentName: fields[0],
		Researcher:     fields[1],
		Date:           fields[2],
		Description:    fields[3],
	}, nil
}

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validate checks that every field has a value. Whitespace-only input
// counts as empty.
func Validate(name, researcher, date, description string) error {
	var missing []string
	for i, v := range []string{name, researcher, date, description} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, Columns[i])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// New validates the raw input and returns the Entry it describes.
func New(name, researcher, date, description string) (Entry, error) {
	if err := Validate(name, researcher, date, description); err != nil {
		return Entry{}, err
	}
	return Entry{
		ExperimentName: name,
		Researcher:     researcher,
		Date:           date,
		Description:    description,
	}, nil
}
