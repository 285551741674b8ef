package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSheetsHTMLStableClasses(t *testing.T) {
	sheet := Sheet{Name: "Styled"}
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell := sheet.row(r).cell(c)
			cell.Text = CellRef(r, c)
			cell.Style = &CellStyle{Font: Font{SizePt: float64(8 + r*6 + c)}}
		}
	}

	first := RenderSheetsHTML([]Sheet{sheet})
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, RenderSheetsHTML([]Sheet{sheet}), "render %d", i)
	}
	assert.Contains(t, first, `<td data-cell="A1" class="cellstyle1">`)
	assert.Contains(t, first, `<td data-cell="B1" class="cellstyle2">`)
	assert.Contains(t, first, `<td data-cell="A2" class="cellstyle7">`)
	assert.Contains(t, first, `<td data-cell="F6" class="cellstyle36">`)
}
