// Package dataset reads reference datasets and extracted identities from
// their file formats and writes verification reports. Reference records
// travel as CSV; identities and reports as JSON Lines.
package dataset

import (
	"encoding/csv"
	"idmatch/pkg/domain"
	"idmatch/pkg/serrors"
	"io"
	"strings"

	"github.com/go-faster/errors"
)

// Reference dataset column names. Header matching is case-insensitive and
// "uid" is accepted as a legacy alias for "identifier".
const (
	columnName       = "name"
	columnIdentifier = "identifier"
	columnUID        = "uid"
	columnAddress    = "address"
)

// LoadReferenceRecords reads a reference dataset from CSV. The first row
// must be a header carrying at least the name, identifier (or uid) and
// address columns, in any order; extra columns are ignored. Records keep
// their dataset order, which matters because the resolver gives the earliest
// record priority on duplicate identifiers.
func LoadReferenceRecords(r io.Reader) ([]domain.ReferenceRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, serrors.With(serrors.ErrMalformedDataset, "reference dataset is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read header")
	}

	cols, err := referenceColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.ReferenceRecord
	for row := 2; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedDataset, err, "reference dataset row %d", row)
		}

		records = append(records, domain.ReferenceRecord{
			Identifier: fields[cols.identifier],
			Name:       fields[cols.name],
			Address:    fields[cols.address],
		})
	}

	return records, nil
}

// columnIndexes holds the header positions of the required columns.
type columnIndexes struct {
	name       int
	identifier int
	address    int
}

// referenceColumns resolves header cells to column indexes. On duplicate
// header names the first occurrence wins.
func referenceColumns(header []string) (columnIndexes, error) {
	cols := columnIndexes{name: -1, identifier: -1, address: -1}
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\uFEFF")
		}
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case columnName:
			if cols.name < 0 {
				cols.name = i
			}
		case columnIdentifier, columnUID:
			if cols.identifier < 0 {
				cols.identifier = i
			}
		case columnAddress:
			if cols.address < 0 {
				cols.address = i
			}
		}
	}

	var missing []string
	if cols.name < 0 {
		missing = append(missing, columnName)
	}
	if cols.identifier < 0 {
		missing = append(missing, columnIdentifier)
	}
	if cols.address < 0 {
		missing = append(missing, columnAddress)
	}
	if len(missing) > 0 {
		return cols, serrors.With(serrors.ErrMalformedDataset,
			"reference dataset missing columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}
