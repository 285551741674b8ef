package xlsx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// ErrInvalidRange is returned when an encoded range cannot be parsed.
var ErrInvalidRange = errors.New("invalid range reference")

// CellRef encodes a zero-based coordinate as an A1 reference.
func CellRef(row, col int) string {
	return reference.IndexToColumn(uint32(col)) + strconv.Itoa(row+1)
}

// EncodeRange renders rng as "A1:B2", or "A1" when it covers one cell.
func EncodeRange(rng univer.Range) string {
	from := CellRef(rng.StartRow, rng.StartColumn)
	to := CellRef(rng.EndRow, rng.EndColumn)
	if from == to {
		return from
	}
	return from + ":" + to
}

// DecodeRange parses "A1:B2", "$A$1:$B$2" or a single "A1" into a zero-based
// inclusive range. Reversed corners are normalized.
func DecodeRange(s string) (univer.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return univer.Range{}, fmt.Errorf("%w: empty", ErrInvalidRange)
	}
	var (
		from, to reference.CellReference
		err      error
	)
	if strings.Contains(s, ":") {
		from, to, err = reference.ParseRangeReference(s)
	} else {
		from, err = reference.ParseCellReference(s)
		to = from
	}
	if err != nil {
		return univer.Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
	}
	if from.RowIdx == 0 || to.RowIdx == 0 {
		return univer.Range{}, fmt.Errorf("%w: %q: row 0", ErrInvalidRange, s)
	}
	rng := univer.Range{
		StartRow:    int(from.RowIdx) - 1,
		StartColumn: int(from.ColumnIdx),
		EndRow:      int(to.RowIdx) - 1,
		EndColumn:   int(to.ColumnIdx),
	}
	if rng.StartRow > rng.EndRow {
		rng.StartRow, rng.EndRow = rng.EndRow, rng.StartRow
	}
	if rng.StartColumn > rng.EndColumn {
		rng.StartColumn, rng.EndColumn = rng.EndColumn, rng.StartColumn
	}
	return rng, nil
}
