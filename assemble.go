package sheetconv

import (
	"fmt"
	"strings"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/aerissecure/sheetconv/xlsx"
)

// Presentation defaults given to every assembled worksheet.
const (
	DefaultRowCount      = 600
	DefaultColumnCount   = 26
	DefaultColumnWidth   = 73
	DefaultRowHeight     = 19
	DefaultRowHeaderW    = 40
	DefaultColumnHeaderH = 20

	definedNamePlugin = "SHEET_DEFINED_NAME_PLUGIN"
)

// ToUniver assembles the Univer document for wb. Values that stringify to
// something starting with "=" become formulas, everything else is kept as
// is. Merge strings are not decoded here; they come back keyed by sheet id so
// the caller can hand them to ApplyMerges.
func ToUniver(wb InternalWorkbook) (univer.WorkbookData, map[string][]string) {
	doc := univer.WorkbookData{
		ID:         wb.Name,
		Name:       wb.Name,
		AppVersion: "",
		Locale:     univer.LocaleEnUS,
		Styles:     map[string]*univer.StyleData{},
		SheetOrder: append([]string{}, wb.SheetOrder...),
		Sheets:     make(map[string]*univer.WorksheetData, len(wb.Sheets)),
		Resources:  []univer.Resource{{Name: definedNamePlugin, Data: ""}},
	}
	merges := make(map[string][]string, len(wb.Sheets))
	styles := newStyleTable(doc.Styles)

	for _, name := range wb.orderedNames() {
		is := wb.Sheets[name]
		ws := newWorksheet(name)
		for _, entry := range is.CellData {
			cd := &univer.CellData{}
			if text := entry.V.V.String(); strings.HasPrefix(text, "=") {
				cd.F = text
			} else {
				cd.V = entry.V.V
			}
			if entry.Style != nil {
				cd.S = styles.id(*entry.Style)
			}
			ws.CellData.Set(entry.R, entry.C, cd)
		}
		doc.Sheets[name] = ws
		merges[name] = append([]string{}, is.Merges...)
	}
	return doc, merges
}

func newWorksheet(name string) *univer.WorksheetData {
	return &univer.WorksheetData{
		ID:                 name,
		Name:               name,
		TabColor:           "",
		Hidden:             univer.False,
		RowCount:           DefaultRowCount,
		ColumnCount:        DefaultColumnCount,
		DefaultColumnWidth: DefaultColumnWidth,
		DefaultRowHeight:   DefaultRowHeight,
		MergeData:          []univer.Range{},
		CellData:           univer.CellMatrix{},
		RowData:            map[int]univer.RowData{},
		ColumnData:         map[int]univer.ColumnData{},
		ShowGridlines:      univer.True,
		RowHeader:          univer.RowHeader{Width: DefaultRowHeaderW, Hidden: univer.False},
		ColumnHeader:       univer.ColumnHeader{Height: DefaultColumnHeaderH, Hidden: univer.False},
		RightToLeft:        univer.False,
	}
}

// styleTable interns converted styles into the document's styles map under
// ids s1, s2, ... in first-seen order.
type styleTable struct {
	styles map[string]*univer.StyleData
	ids    map[xlsx.CellStyle]string
}

func newStyleTable(styles map[string]*univer.StyleData) *styleTable {
	return &styleTable{styles: styles, ids: make(map[xlsx.CellStyle]string)}
}

// id returns the style id for st, or "" when st carries nothing Univer can
// show.
func (t *styleTable) id(st xlsx.CellStyle) string {
	if id, ok := t.ids[st]; ok {
		return id
	}
	sd := ConvertStyle(st)
	id := ""
	if sd != nil {
		id = fmt.Sprintf("s%d", len(t.styles)+1)
		t.styles[id] = sd
	}
	t.ids[st] = id
	return id
}

// ConvertStyle converts an extracted cell style into Univer's style record. It
// returns nil when nothing would be set.
func ConvertStyle(st xlsx.CellStyle) *univer.StyleData {
	sd := univer.StyleData{
		FontFamily: st.Font.Family,
		FontSize:   st.Font.SizePt,
	}
	if st.Font.Bold {
		sd.Bold = univer.True
	}
	if st.Font.Italic {
		sd.Italic = univer.True
	}
	if st.Font.Underline {
		sd.Underline = &univer.TextDecoration{Show: univer.True}
	}
	if st.Font.Strike {
		sd.Strike = &univer.TextDecoration{Show: univer.True}
	}
	if c := rgb(st.Font.Color); c != "" {
		sd.Color = &univer.ColorStyle{RGB: c}
	}
	if c := rgb(st.Fill.FgColor); c != "" && st.Fill.Pattern != "" && st.Fill.Pattern != "none" {
		sd.Background = &univer.ColorStyle{RGB: c}
	}

	bd := univer.BorderData{
		Top:    borderSide(st.Border.Top),
		Right:  borderSide(st.Border.Right),
		Bottom: borderSide(st.Border.Bottom),
		Left:   borderSide(st.Border.Left),
	}
	if bd != (univer.BorderData{}) {
		sd.Border = &bd
	}

	sd.HAlign = horizontalAligns[st.Alignment.Horizontal]
	sd.VAlign = verticalAligns[st.Alignment.Vertical]
	if st.Alignment.WrapText {
		sd.Wrap = univer.WrapWrap
	}
	if st.Alignment.Indent > 0 {
		px := float64(st.Alignment.Indent * 8)
		if sd.HAlign == univer.HAlignRight {
			sd.Padding = &univer.PaddingData{Right: px}
		} else {
			sd.Padding = &univer.PaddingData{Left: px}
		}
	}

	if sd == (univer.StyleData{}) {
		return nil
	}
	return &sd
}

var horizontalAligns = map[string]univer.HorizontalAlign{
	"left":             univer.HAlignLeft,
	"center":           univer.HAlignCenter,
	"centerContinuous": univer.HAlignCenter,
	"right":            univer.HAlignRight,
	"justify":          univer.HAlignJustified,
	"distributed":      univer.HAlignDistributed,
}

var verticalAligns = map[string]univer.VerticalAlign{
	"top":    univer.VAlignTop,
	"center": univer.VAlignMiddle,
	"bottom": univer.VAlignBottom,
}

var borderStyles = map[string]univer.BorderStyle{
	"thin":             univer.BorderThin,
	"hair":             univer.BorderHair,
	"dotted":           univer.BorderDotted,
	"dashed":           univer.BorderDashed,
	"dashDot":          univer.BorderDashDot,
	"dashDotDot":       univer.BorderDashDotDot,
	"double":           univer.BorderDouble,
	"medium":           univer.BorderMedium,
	"mediumDashed":     univer.BorderMediumDashed,
	"mediumDashDot":    univer.BorderMediumDashDot,
	"mediumDashDotDot": univer.BorderMediumDashDotDot,
	"slantDashDot":     univer.BorderSlantDashDot,
	"thick":            univer.BorderThick,
}

func borderSide(e xlsx.BorderEdge) *univer.BorderStyleData {
	style, ok := borderStyles[e.Style]
	if !ok {
		return nil
	}
	color := rgb(e.Color)
	if color == "" {
		color = "#000000"
	}
	return &univer.BorderStyleData{Style: style, Color: univer.ColorStyle{RGB: color}}
}

// rgb turns "RRGGBB" into "#RRGGBB". Anything else yields "".
func rgb(c string) string {
	if len(c) != 6 {
		return ""
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return ""
		}
	}
	return "#" + strings.ToUpper(c)
}
