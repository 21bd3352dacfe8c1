// Package redcap reads survey records from a REDCap CSV export. The export
// is too inconsistently typed to parse columns up front, so every value is
// kept as a string and interpreted by the intake parser.
package redcap

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ctk-report-generator/internal/domain"
)

// Column holding the per-subject survey identifier.
const identifierColumn = "redcap_survey_identifier"

// Record is one survey row keyed by column name.
type Record map[string]string

// ReadSubjectRow reads a survey export and returns the single row whose
// survey identifier matches.
func ReadSubjectRow(r io.Reader, identifier string) (Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading survey header: %w", err)
	}

	identifierIndex := -1
	for i, column := range header {
		if column == identifierColumn {
			identifierIndex = i
			break
		}
	}
	if identifierIndex < 0 {
		return nil, fmt.Errorf("survey export has no %s column", identifierColumn)
	}

	var match Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading survey row: %w", err)
		}
		if identifierIndex >= len(row) || row[identifierIndex] != identifier {
			continue
		}
		if match != nil {
			return nil, domain.ErrAmbiguousSubject
		}
		match = make(Record, len(header))
		for i, column := range header {
			if i < len(row) {
				match[column] = row[i]
			}
		}
	}

	if match == nil {
		return nil, domain.ErrSubjectNotFound
	}
	return match, nil
}
