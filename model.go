package sheetconv

import (
	"sort"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/aerissecure/sheetconv/xlsx"
)

// Internal representation between the intermediate sheets and the Univer
// document.

// CellBox wraps a cell value the way the web client expects it: {"v": ...}.
type CellBox struct {
	V univer.CellValue `json:"v"`
}

// CellEntry is one cell with its zero-based coordinates.
type CellEntry struct {
	R     int             `json:"r"`
	C     int             `json:"c"`
	V     CellBox         `json:"v"`
	Style *xlsx.CellStyle `json:"-"` // nil unless styles were extracted
}

// InternalSheet is a flat list of cells plus the encoded merge ranges.
type InternalSheet struct {
	Name     string      `json:"name"`
	CellData []CellEntry `json:"cellData"`
	Merges   []string    `json:"merges"`
}

// InternalWorkbook holds sheets keyed by name. SheetOrder lists every key of
// Sheets exactly once.
type InternalWorkbook struct {
	Name       string                   `json:"name"`
	Sheets     map[string]InternalSheet `json:"sheets"`
	SheetOrder []string                 `json:"sheetOrder"`
}

// orderedNames returns SheetOrder followed by any sheet it does not list,
// sorted by name.
func (wb InternalWorkbook) orderedNames() []string {
	out := make([]string, 0, len(wb.Sheets))
	seen := make(map[string]bool, len(wb.Sheets))
	for _, name := range wb.SheetOrder {
		if _, ok := wb.Sheets[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	var rest []string
	for name := range wb.Sheets {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
