package sheetconv

import (
	"github.com/aerissecure/sheetconv/univer"
	"github.com/aerissecure/sheetconv/xlsx"
)

// ToInternal flattens intermediate sheets into an InternalWorkbook. Every
// cell becomes an entry, blank ones included, and the sheet order follows
// sheets. A repeated sheet name keeps its first position and the last body.
func ToInternal(name string, sheets []xlsx.Sheet) InternalWorkbook {
	wb := InternalWorkbook{
		Name:       name,
		Sheets:     make(map[string]InternalSheet, len(sheets)),
		SheetOrder: make([]string, 0, len(sheets)),
	}
	for _, sheet := range sheets {
		is := InternalSheet{Name: sheet.Name, CellData: []CellEntry{}, Merges: []string{}}
		for _, r := range sheet.RowIndices() {
			row := sheet.Rows[r]
			if row == nil {
				continue
			}
			for _, c := range row.ColumnIndices() {
				cell := row.Cells[c]
				if cell == nil {
					continue
				}
				is.CellData = append(is.CellData, CellEntry{
					R:     r,
					C:     c,
					V:     CellBox{V: univer.StringValue(cell.Text)},
					Style: cell.Style,
				})
			}
		}
		is.Merges = append(is.Merges, sheet.Merges...)

		if _, dup := wb.Sheets[sheet.Name]; !dup {
			wb.SheetOrder = append(wb.SheetOrder, sheet.Name)
		}
		wb.Sheets[sheet.Name] = is
	}
	return wb
}
