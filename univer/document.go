// Package univer holds the workbook snapshot shape consumed and produced by
// the Univer spreadsheet component (IWorkbookData and friends).
package univer

import (
	"encoding/json"
	"fmt"
	"sort"
)

// LocaleEnUS is the only locale the conversion layer emits.
const LocaleEnUS = "en-US"

// BooleanNumber is Univer's 0/1 encoding of booleans.
type BooleanNumber int

const (
	False BooleanNumber = 0
	True  BooleanNumber = 1
)

// WorkbookData mirrors IWorkbookData.
type WorkbookData struct {
	ID         string                    `json:"id"`
	Rev        int                       `json:"rev,omitempty"`
	Name       string                    `json:"name"`
	AppVersion string                    `json:"appVersion"`
	Locale     string                    `json:"locale"`
	Styles     map[string]*StyleData     `json:"styles"`
	SheetOrder []string                  `json:"sheetOrder"`
	Sheets     map[string]*WorksheetData `json:"sheets"`
	Resources  []Resource                `json:"resources,omitempty"`
}

// Resource is plugin data attached to a workbook.
type Resource struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// WorksheetData mirrors IWorksheetData. Dimension fields are presentation
// defaults, not derived from content.
type WorksheetData struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	TabColor           string             `json:"tabColor"`
	Hidden             BooleanNumber      `json:"hidden"`
	RowCount           int                `json:"rowCount"`
	ColumnCount        int                `json:"columnCount"`
	DefaultColumnWidth float64            `json:"defaultColumnWidth"`
	DefaultRowHeight   float64            `json:"defaultRowHeight"`
	MergeData          []Range            `json:"mergeData"`
	CellData           CellMatrix         `json:"cellData"`
	RowData            map[int]RowData    `json:"rowData"`
	ColumnData         map[int]ColumnData `json:"columnData"`
	ShowGridlines      BooleanNumber      `json:"showGridlines"`
	RowHeader          RowHeader          `json:"rowHeader"`
	ColumnHeader       ColumnHeader       `json:"columnHeader"`
	RightToLeft        BooleanNumber      `json:"rightToLeft"`
}

type RowHeader struct {
	Width  float64       `json:"width"`
	Hidden BooleanNumber `json:"hidden"`
}

type ColumnHeader struct {
	Height float64       `json:"height"`
	Hidden BooleanNumber `json:"hidden"`
}

// RowData mirrors IRowData; heights are in pixels.
type RowData struct {
	H  float64       `json:"h,omitempty"`
	Hd BooleanNumber `json:"hd,omitempty"`
}

// ColumnData mirrors IColumnData; widths are in pixels.
type ColumnData struct {
	W  float64       `json:"w,omitempty"`
	Hd BooleanNumber `json:"hd,omitempty"`
}

// CellData mirrors ICellData. V is the origin value, M a rendered display
// string some producers attach, F a raw formula such as "=SUM(A1:B4)" and S
// a style id or nothing.
type CellData struct {
	V CellValue `json:"v,omitzero"`
	M string    `json:"m,omitempty"`
	F string    `json:"f,omitempty"`
	T int       `json:"t,omitempty"`
	S string    `json:"s,omitempty"`
}

// MarshalJSON leaves out a blank v, also for encoders that ignore omitzero.
func (c CellData) MarshalJSON() ([]byte, error) {
	type record CellData
	var v *CellValue
	if !c.V.IsZero() {
		v = &c.V
	}
	return json.Marshal(struct {
		V *CellValue `json:"v,omitempty"`
		record
	}{v, record(c)})
}

// Range is a merged rectangle, zero based and inclusive on both ends.
// {0, 0, 1, 1} is "A1:B2".
type Range struct {
	StartRow    int `json:"startRow"`
	StartColumn int `json:"startColumn"`
	EndRow      int `json:"endRow"`
	EndColumn   int `json:"endColumn"`
}

func (r Range) String() string {
	return fmt.Sprintf("rows %d-%d, columns %d-%d", r.StartRow, r.EndRow, r.StartColumn, r.EndColumn)
}

// CellMatrix is the sparse row -> column -> cell matrix. An absent entry is
// an empty cell. JSON keys are the decimal form of the indices.
type CellMatrix map[int]map[int]*CellData

// Set stores cell at (row, col), creating the row as needed.
func (m CellMatrix) Set(row, col int, cell *CellData) {
	cols, ok := m[row]
	if !ok {
		cols = make(map[int]*CellData)
		m[row] = cols
	}
	cols[col] = cell
}

// Get returns the cell at (row, col), or nil.
func (m CellMatrix) Get(row, col int) *CellData {
	return m[row][col]
}

// Rows returns the populated row indices in ascending order.
func (m CellMatrix) Rows() []int {
	rows := make([]int, 0, len(m))
	for r := range m {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// Columns returns the populated column indices of row in ascending order.
func (m CellMatrix) Columns(row int) []int {
	cols := make([]int, 0, len(m[row]))
	for c := range m[row] {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

// Len counts the populated cells.
func (m CellMatrix) Len() int {
	n := 0
	for _, cols := range m {
		n += len(cols)
	}
	return n
}

// OrderedSheets returns the worksheets in sheetOrder, followed by any sheet
// that sheetOrder does not mention, sorted by id. Ids in sheetOrder without a
// worksheet are ignored.
func (wb WorkbookData) OrderedSheets() []*WorksheetData {
	out := make([]*WorksheetData, 0, len(wb.Sheets))
	seen := make(map[string]bool, len(wb.Sheets))
	for _, id := range wb.SheetOrder {
		ws, ok := wb.Sheets[id]
		if !ok || ws == nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, ws)
	}
	var rest []string
	for id := range wb.Sheets {
		if !seen[id] && wb.Sheets[id] != nil {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		out = append(out, wb.Sheets[id])
	}
	return out
}
