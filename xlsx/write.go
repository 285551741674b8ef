package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aerissecure/sheetconv/univer"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// WriteOptions tunes Write.
type WriteOptions struct {
	Logger *zap.Logger
}

// bbox accumulates the occupied range of a sheet.
type bbox struct {
	minRow, minCol, maxRow, maxCol int
}

func newBBox() bbox {
	return bbox{minRow: math.MaxInt, minCol: math.MaxInt, maxRow: -1, maxCol: -1}
}

func (b *bbox) add(row, col int) {
	b.minRow = min(b.minRow, row)
	b.minCol = min(b.minCol, col)
	b.maxRow = max(b.maxRow, row)
	b.maxCol = max(b.maxCol, col)
}

// ref is the encoded range, or "A1" when nothing was added.
func (b bbox) ref() string {
	if b.minRow <= b.maxRow && b.minCol <= b.maxCol {
		return EncodeRange(univer.Range{StartRow: b.minRow, StartColumn: b.minCol, EndRow: b.maxRow, EndColumn: b.maxCol})
	}
	return "A1"
}

// sheetExtent is the declared range computed for one written sheet.
type sheetExtent struct {
	name string
	ref  string
}

// BuildWorkbook converts doc into an in-memory unioffice workbook. doc is not
// modified. Sheet names are made valid and unique, see sheetNames.
func BuildWorkbook(doc univer.WorkbookData, opts WriteOptions) *spreadsheet.Workbook {
	wb, _ := buildWorkbook(doc, opts)
	return wb
}

func buildWorkbook(doc univer.WorkbookData, opts WriteOptions) (*spreadsheet.Workbook, []sheetExtent) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	wb := spreadsheet.New()
	names := newSheetNames()
	var extents []sheetExtent
	for _, ws := range doc.OrderedSheets() {
		want := ws.Name
		if want == "" {
			want = ws.ID
		}
		name := names.assign(want)
		if name != want {
			log.Warn("renaming sheet", zap.String("sheet", want), zap.String("name", name))
		}
		log.Debug("writing sheet", zap.String("sheet", name), zap.Int("cells", ws.CellData.Len()))
		sheet := wb.AddSheet()
		sheet.SetName(name)
		extents = append(extents, sheetExtent{name: name, ref: writeSheet(sheet, ws, log)})
	}
	return wb, extents
}

// Write serializes doc as an XLSX file to w. Each sheet declares the
// bounding box of its written cells as its range, or "A1" when it has none.
func Write(w io.Writer, doc univer.WorkbookData, opts WriteOptions) error {
	wb, extents := buildWorkbook(doc, opts)
	var buf bytes.Buffer
	if err := wb.Save(&buf); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	// unioffice recomputes <dimension> from A1 on save; put the occupied
	// range back.
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		return fmt.Errorf("reopening workbook: %w", err)
	}
	defer f.Close()
	for _, e := range extents {
		if err := f.SetSheetDimension(e.name, e.ref); err != nil {
			return fmt.Errorf("setting range of sheet %q: %w", e.name, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// writeSheet fills sheet from ws and returns the declared range.
func writeSheet(sheet spreadsheet.Sheet, ws *univer.WorksheetData, log *zap.Logger) string {
	box := newBBox()
	for _, r := range ws.CellData.Rows() {
		for _, c := range ws.CellData.Columns(r) {
			if r < 0 || c < 0 {
				log.Warn("skipping cell with negative coordinate", zap.String("sheet", ws.Name), zap.Int("row", r), zap.Int("col", c))
				continue
			}
			cd := ws.CellData.Get(r, c)
			box.add(r, c)
			writeCell(sheet.Cell(CellRef(r, c)), cd)
		}
	}

	ref := box.ref()
	if sheet.X().Dimension == nil {
		sheet.X().Dimension = sml.NewCT_SheetDimension()
	}
	sheet.X().Dimension.RefAttr = ref

	for _, rng := range ws.MergeData {
		if rng.StartRow < 0 || rng.StartColumn < 0 || rng.EndRow < rng.StartRow || rng.EndColumn < rng.StartColumn {
			log.Warn("skipping invalid merge", zap.String("sheet", ws.Name), zap.Stringer("range", rng))
			continue
		}
		sheet.AddMergedCells(CellRef(rng.StartRow, rng.StartColumn), CellRef(rng.EndRow, rng.EndColumn))
	}
	return ref
}

// maxSheetName is the longest sheet name spreadsheet applications accept.
const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer("[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_")

// sheetNames hands out valid sheet names, unique without regard to case.
type sheetNames struct {
	used map[string]bool
}

func newSheetNames() *sheetNames {
	return &sheetNames{used: make(map[string]bool)}
}

// assign returns name with forbidden characters replaced, surrounding
// apostrophes removed and the length capped. A name already taken gets a
// " (2)", " (3)", ... suffix.
func (n *sheetNames) assign(name string) string {
	base := strings.Trim(sheetNameReplacer.Replace(name), "'")
	if base == "" {
		base = "Sheet"
	}
	base = truncateRunes(base, maxSheetName)
	candidate := base
	for i := 2; n.used[strings.ToLower(candidate)]; i++ {
		suffix := " (" + strconv.Itoa(i) + ")"
		candidate = truncateRunes(base, maxSheetName-utf8.RuneCountInString(suffix)) + suffix
	}
	n.used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// writeCell stores the classified value of cd and, when present, its formula
// with the value as cached result.
func writeCell(cell spreadsheet.Cell, cd *univer.CellData) {
	v := Classify(ResolveValue(cd))
	switch v.Kind() {
	case univer.Number:
		if math.IsInf(v.Float(), 0) || math.IsNaN(v.Float()) {
			setText(cell, ResolveValue(cd).String(), cd)
		} else {
			cell.SetNumber(v.Float())
		}
	case univer.Bool:
		cell.SetBool(v.Boolean())
	case univer.String:
		setText(cell, v.Str(), cd)
	default:
		cell.Clear()
	}
	if cd != nil && cd.F != "" {
		f := sml.NewCT_CellFormula()
		f.Content = strings.TrimPrefix(cd.F, "=")
		cell.X().F = f
	}
}

// setText writes a string value. Formula cells keep the text inline as a
// formula string result instead of going through the shared string table.
func setText(cell spreadsheet.Cell, s string, cd *univer.CellData) {
	if cd != nil && cd.F != "" {
		cell.X().TAttr = sml.ST_CellTypeStr
		cell.X().V = &s
		return
	}
	cell.SetString(s)
}
