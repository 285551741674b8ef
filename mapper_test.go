package sheetconv

import (
	"encoding/json"
	"testing"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/aerissecure/sheetconv/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds an intermediate sheet from row-major text.
func grid(name string, rows [][]string, merges ...string) xlsx.Sheet {
	s := xlsx.Sheet{Name: name, Rows: map[int]*xlsx.Row{}, Merges: append([]string{}, merges...)}
	for r, texts := range rows {
		row := &xlsx.Row{Cells: map[int]*xlsx.Cell{}}
		for c, text := range texts {
			row.Cells[c] = &xlsx.Cell{Text: text}
		}
		s.Rows[r] = row
	}
	return s
}

func TestToInternalKeepsEveryCell(t *testing.T) {
	sheet := grid("Data", [][]string{
		{"a", ""},
		{"", "=SUM(A1:A1)"},
	}, "A1:B1")
	style := &xlsx.CellStyle{Font: xlsx.Font{Bold: true}}
	sheet.Rows[0].Cells[0].Style = style

	wb := ToInternal("book", []xlsx.Sheet{sheet})
	assert.Equal(t, "book", wb.Name)
	assert.Equal(t, []string{"Data"}, wb.SheetOrder)

	is := wb.Sheets["Data"]
	assert.Equal(t, "Data", is.Name)
	assert.Equal(t, []string{"A1:B1"}, is.Merges)
	require.Len(t, is.CellData, 4)

	want := []CellEntry{
		{R: 0, C: 0, V: CellBox{V: univer.StringValue("a")}, Style: style},
		{R: 0, C: 1, V: CellBox{V: univer.StringValue("")}},
		{R: 1, C: 0, V: CellBox{V: univer.StringValue("")}},
		{R: 1, C: 1, V: CellBox{V: univer.StringValue("=SUM(A1:A1)")}},
	}
	assert.Equal(t, want, is.CellData)
}

func TestToInternalSheetOrder(t *testing.T) {
	wb := ToInternal("book", []xlsx.Sheet{
		grid("Zeta", [][]string{{"z"}}),
		grid("Alpha", [][]string{{"a"}}),
		grid("Mid", [][]string{{"m"}}),
	})
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, wb.SheetOrder)
	assert.Len(t, wb.Sheets, 3)
	for _, name := range wb.SheetOrder {
		assert.Contains(t, wb.Sheets, name)
	}
}

func TestToInternalDuplicateNames(t *testing.T) {
	wb := ToInternal("book", []xlsx.Sheet{
		grid("Same", [][]string{{"first"}}),
		grid("Other", [][]string{{"o"}}),
		grid("Same", [][]string{{"second"}}),
	})
	assert.Equal(t, []string{"Same", "Other"}, wb.SheetOrder)
	assert.Equal(t, univer.StringValue("second"), wb.Sheets["Same"].CellData[0].V.V)
}

func TestToInternalNoSheets(t *testing.T) {
	wb := ToInternal("empty", nil)
	assert.Empty(t, wb.SheetOrder)
	assert.Empty(t, wb.Sheets)
}

func TestCellEntryJSON(t *testing.T) {
	entry := CellEntry{R: 2, C: 3, V: CellBox{V: univer.StringValue("x")}, Style: &xlsx.CellStyle{}}
	out, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"r":2,"c":3,"v":{"v":"x"}}`, string(out))
}
