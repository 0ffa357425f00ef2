package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/churrasco/pkg/domain/entities"
)

// EditsHeader is the expected header of an edit script
var EditsHeader = []string{"step", "field", "value"}

// Loader handles loading planner edit scripts from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadEdits loads an edit script from a CSV file. See LoadEditsFrom for the format.
func (l *Loader) LoadEdits(filename string) ([]entities.Patch, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open edits file %s: %w", filename, err)
	}
	defer file.Close()

	return l.LoadEditsFrom(file)
}

// LoadEditsFrom reads step,field,value rows. Consecutive rows sharing a step
// number form one patch, so fields that must change together (such as
// beer_drinkers and soft_drink_only) can be applied as a single edit.
// Step numbers must increase.
func (l *Loader) LoadEditsFrom(r io.Reader) ([]entities.Patch, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read edits CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("edits CSV must have header and at least one data row")
	}

	header := records[0]
	if !validateHeader(header, EditsHeader) {
		return nil, fmt.Errorf("edits CSV header mismatch. Expected: %v, Got: %v", EditsHeader, header)
	}

	var patches []entities.Patch
	lastStep := 0
	for i, record := range records[1:] {
		row := i + 2
		if len(record) != len(EditsHeader) {
			return nil, fmt.Errorf("edits CSV row %d: expected %d columns, got %d", row, len(EditsHeader), len(record))
		}

		step, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil || step < 1 {
			return nil, fmt.Errorf("edits CSV row %d: invalid step: %s", row, record[0])
		}
		if step < lastStep {
			return nil, fmt.Errorf("edits CSV row %d: step %d comes after step %d", row, step, lastStep)
		}

		if step != lastStep {
			patches = append(patches, entities.Patch{})
			lastStep = step
		}

		if err := patches[len(patches)-1].Set(record[1], record[2]); err != nil {
			return nil, fmt.Errorf("edits CSV row %d: %w", row, err)
		}
	}

	return patches, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
