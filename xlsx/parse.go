package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
	"go.uber.org/zap"
)

// ErrUnreadable wraps any failure to open the source workbook.
var ErrUnreadable = errors.New("unreadable workbook")

// ReadOptions tunes ReadSheets. The zero value reads values, formulas and
// merges only.
type ReadOptions struct {
	ExtractStyles bool
	Logger        *zap.Logger
}

type sourceCell struct {
	cell spreadsheet.Cell
	row  int
	col  int
}

// sharedFormula is the master cell of a shared formula group.
type sharedFormula struct {
	text     string
	row, col int
}

// ReadSheets reads an XLSX from r/size and returns one Sheet per worksheet
// that has content, in workbook order. Sheets without any value, formula or
// merge are left out.
func ReadSheets(r io.ReaderAt, size int64, opts ReadOptions) ([]Sheet, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	var styles *styleResolver
	if opts.ExtractStyles {
		styles = newStyleResolver(wb)
	}

	var out []Sheet
	for _, sheet := range wb.Sheets() {
		log.Debug("reading sheet", zap.String("sheet", sheet.Name()))
		s, ok := readSheet(sheet, styles, log)
		if !ok {
			log.Debug("skipping empty sheet", zap.String("sheet", sheet.Name()))
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func readSheet(sheet spreadsheet.Sheet, styles *styleResolver, log *zap.Logger) (Sheet, bool) {
	// ---- collect occupied cells ----
	cells := make(map[[2]int]sourceCell)
	shared := make(map[uint32]sharedFormula)
	maxRow, maxCol := -1, -1
	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			if !hasContent(cell.X()) {
				continue
			}
			cells[[2]int{rowIdx, colIdx}] = sourceCell{cell: cell, row: rowIdx, col: colIdx}
			maxRow = max(maxRow, rowIdx)
			maxCol = max(maxCol, colIdx)

			if f := cell.X().F; f != nil && f.TAttr == sml.ST_CellFormulaTypeShared && f.SiAttr != nil && f.Content != "" {
				shared[*f.SiAttr] = sharedFormula{text: f.Content, row: rowIdx, col: colIdx}
			}
		}
	}

	// ---- merges ----
	var merges []univer.Range
	if sheet.X().MergeCells != nil {
		for _, mc := range sheet.X().MergeCells.MergeCell {
			rng, err := DecodeRange(mc.RefAttr)
			if err != nil {
				log.Debug("skipping merge", zap.String("sheet", sheet.Name()), zap.String("ref", mc.RefAttr), zap.Error(err))
				continue
			}
			merges = append(merges, rng)
			maxRow = max(maxRow, rng.EndRow)
			maxCol = max(maxCol, rng.EndColumn)
		}
	}

	if maxRow < 0 || maxCol < 0 {
		return Sheet{}, false
	}

	// ---- dense grid from A1 ----
	s := Sheet{Name: sheet.Name(), Rows: make(map[int]*Row, maxRow+1), Merges: []string{}}
	for r := 0; r <= maxRow; r++ {
		row := s.row(r)
		for c := 0; c <= maxCol; c++ {
			cell := row.cell(c)
			src, ok := cells[[2]int{r, c}]
			if !ok {
				continue
			}
			cell.Text = cellText(src, shared)
			if styles != nil {
				cell.Style = styles.resolve(src.cell)
			}
		}
	}

	for _, rng := range merges {
		anchor := s.row(rng.StartRow).cell(rng.StartColumn)
		anchor.Merge = &MergeSpan{rng.EndRow - rng.StartRow, rng.EndColumn - rng.StartColumn}
		s.Merges = append(s.Merges, EncodeRange(rng))
	}
	return s, true
}

// hasContent reports whether a cell carries a value, a formula or an inline
// string. Cells that only hold a style do not extend the sheet.
func hasContent(x *sml.CT_Cell) bool {
	return x != nil && (x.V != nil || x.F != nil || x.Is != nil)
}

// cellText returns the formatted display text, replaced by "=" plus the
// formula when the cell has one.
func cellText(src sourceCell, shared map[uint32]sharedFormula) string {
	x := src.cell.X()
	if f := x.F; f != nil {
		text := f.Content
		if text == "" && f.TAttr == sml.ST_CellFormulaTypeShared && f.SiAttr != nil {
			if master, ok := shared[*f.SiAttr]; ok {
				text = ShiftFormula(master.text, src.row-master.row, src.col-master.col)
			}
		}
		if text != "" {
			return "=" + strings.TrimPrefix(text, "=")
		}
	}
	return src.cell.GetFormattedValue()
}
