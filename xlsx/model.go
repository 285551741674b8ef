package xlsx

import (
	"fmt"
	"sort"
	"strings"
)

// Intermediate representation for XLSX.

// Sheet is one named worksheet. Row and column indices are absolute and zero
// based: the grid always starts at A1, whatever the source's bounding box.
type Sheet struct {
	Name   string
	Rows   map[int]*Row
	Merges []string // encoded ranges ("A1:B2"), in source order
}

func (s Sheet) String() string {
	return fmt.Sprintf("Name: %s, Rows: %d, Merges: %s", s.Name, len(s.Rows), strings.Join(s.Merges, ","))
}

// RowIndices returns the row keys in ascending order.
func (s Sheet) RowIndices() []int {
	idx := make([]int, 0, len(s.Rows))
	for r := range s.Rows {
		idx = append(idx, r)
	}
	sort.Ints(idx)
	return idx
}

// row returns the row at idx, creating it if needed.
func (s *Sheet) row(idx int) *Row {
	if s.Rows == nil {
		s.Rows = make(map[int]*Row)
	}
	r, ok := s.Rows[idx]
	if !ok {
		r = &Row{Cells: make(map[int]*Cell)}
		s.Rows[idx] = r
	}
	return r
}

// Row maps column index to cell.
type Row struct {
	Cells map[int]*Cell
}

// ColumnIndices returns the column keys in ascending order.
func (r Row) ColumnIndices() []int {
	idx := make([]int, 0, len(r.Cells))
	for c := range r.Cells {
		idx = append(idx, c)
	}
	sort.Ints(idx)
	return idx
}

func (r *Row) cell(idx int) *Cell {
	if r.Cells == nil {
		r.Cells = make(map[int]*Cell)
	}
	c, ok := r.Cells[idx]
	if !ok {
		c = &Cell{}
		r.Cells[idx] = c
	}
	return c
}

// MergeSpan is the [rows, columns] extent of a merge beyond its anchor, so a
// 2x2 merge is {1, 1}.
type MergeSpan [2]int

// Cell is the IR for a single cell. Text holds the display text, or "=" and
// the verbatim expression for formula cells.
type Cell struct {
	Text  string
	Style *CellStyle // nil unless style extraction is enabled
	Merge *MergeSpan // non-nil on merge anchors
}

// IsFormula reports whether the cell text is a formula.
func (c Cell) IsFormula() bool {
	return strings.HasPrefix(c.Text, "=")
}

func (c Cell) String() string {
	s := fmt.Sprintf("Text: %q", c.Text)
	if c.Merge != nil {
		s += fmt.Sprintf(", Merge: %v", *c.Merge)
	}
	if c.Style != nil {
		s += ", Style: " + c.Style.String()
	}
	return s
}

// CellStyle is the structured pass-through style of a cell. Colors are
// 6-digit RGB hex strings without "#".
type CellStyle struct {
	Font      Font
	Fill      Fill
	Border    Border
	Alignment Alignment
}

func (s CellStyle) String() string {
	return fmt.Sprintf("Font: {%s}, Fill: {%s}, Border: {%s}, Alignment: {%s}", s.Font, s.Fill, s.Border, s.Alignment)
}

type Font struct {
	Family    string  // e.g. "Calibri"
	SizePt    float64 // size in points
	Color     string
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

func (f Font) String() string {
	return fmt.Sprintf("Family: %s, SizePt: %g, Color: %s, Bold: %t, Italic: %t, Underline: %t, Strike: %t", f.Family, f.SizePt, f.Color, f.Bold, f.Italic, f.Underline, f.Strike)
}

type Fill struct {
	Pattern string // e.g. "solid"
	FgColor string
	BgColor string
}

func (f Fill) String() string {
	return fmt.Sprintf("Pattern: %s, FgColor: %s, BgColor: %s", f.Pattern, f.FgColor, f.BgColor)
}

// BorderEdge is one side of a cell border. Style uses the file format's names
// ("thin", "medium", "dashed", ...).
type BorderEdge struct {
	Style string
	Color string
}

type Border struct {
	Left, Right, Top, Bottom BorderEdge
}

func (b Border) String() string {
	return fmt.Sprintf("Left: %v, Right: %v, Top: %v, Bottom: %v", b.Left, b.Right, b.Top, b.Bottom)
}

type Alignment struct {
	Horizontal string // left|center|right|justify|general|...
	Vertical   string // top|center|bottom|...
	WrapText   bool
	Indent     int // indent level, not pixels
}

func (a Alignment) String() string {
	return fmt.Sprintf("Horizontal: %s, Vertical: %s, WrapText: %t, Indent: %d", a.Horizontal, a.Vertical, a.WrapText, a.Indent)
}

// IsZero reports whether no style attribute was resolved.
func (s CellStyle) IsZero() bool {
	return s == CellStyle{}
}
