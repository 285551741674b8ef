package xlsx

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	fontFamilySafeRe = regexp.MustCompile(`[^a-zA-Z0-9 ,_-]+`)
	hexColorRe       = regexp.MustCompile(`^[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)
)

// sanitizeFontFamily strips characters that could break out of a CSS
// font-family declaration.
func sanitizeFontFamily(s string) string {
	return fontFamilySafeRe.ReplaceAllString(s, "")
}

// sanitizeColor returns s if it is a 3- or 6-digit hex color, else "".
func sanitizeColor(s string) string {
	if hexColorRe.MatchString(s) {
		return s
	}
	return ""
}

// RenderSheetsHTML renders intermediate sheets as HTML tables. Merge anchors
// get rowspan/colspan and the cells they cover are skipped. Formula cells show
// their formula text.
func RenderSheetsHTML(sheets []Sheet) string {
	var builder strings.Builder

	// Collect unique styles so each one becomes a CSS class.
	classes := make(map[CellStyle]string)
	var order []CellStyle
	for _, sheet := range sheets {
		for _, r := range sheet.RowIndices() {
			row := sheet.Rows[r]
			for _, c := range row.ColumnIndices() {
				cell := row.Cells[c]
				if cell == nil || cell.Style == nil {
					continue
				}
				if _, ok := classes[*cell.Style]; !ok {
					classes[*cell.Style] = fmt.Sprintf("cellstyle%d", len(order)+1)
					order = append(order, *cell.Style)
				}
			}
		}
	}

	builder.WriteString("<style>\n")
	builder.WriteString(".table { border-collapse: collapse; table-layout: fixed; margin-bottom: 2em; }\n")
	builder.WriteString(".table td { padding: 4px 8px; border: 1px solid #333; white-space: nowrap; vertical-align: bottom; }\n")
	builder.WriteString(".sheet { margin-bottom: 2em; }\n")
	for _, st := range order {
		if css := styleToCSS(st); css != "" {
			builder.WriteString(fmt.Sprintf(".%s { %s }\n", classes[st], css))
		}
	}
	builder.WriteString("</style>\n")

	for _, sheet := range sheets {
		covered := coveredCells(sheet)
		builder.WriteString(fmt.Sprintf("<div class=\"sheet\" data-name=\"%s\">\n", html.EscapeString(sheet.Name)))
		builder.WriteString("<table class=\"table\">\n")
		for _, r := range sheet.RowIndices() {
			row := sheet.Rows[r]
			builder.WriteString("  <tr>\n")
			for _, c := range row.ColumnIndices() {
				if covered[[2]int{r, c}] {
					continue
				}
				cell := row.Cells[c]
				attr := ""
				if cell.Merge != nil {
					if cell.Merge[1] > 0 {
						attr += fmt.Sprintf(" colspan=\"%d\"", cell.Merge[1]+1)
					}
					if cell.Merge[0] > 0 {
						attr += fmt.Sprintf(" rowspan=\"%d\"", cell.Merge[0]+1)
					}
				}
				if cell.Style != nil {
					attr += fmt.Sprintf(" class=\"%s\"", classes[*cell.Style])
				}
				// Explicit line breaks are stored as \n.
				text := strings.ReplaceAll(html.EscapeString(cell.Text), "\n", "<br>")
				builder.WriteString(fmt.Sprintf("    <td data-cell=\"%s\"%s>%s</td>\n", CellRef(r, c), attr, text))
			}
			builder.WriteString("  </tr>\n")
		}
		builder.WriteString("</table>\n</div>\n")
	}
	return builder.String()
}

// coveredCells marks every non-anchor cell inside a merge.
func coveredCells(sheet Sheet) map[[2]int]bool {
	covered := make(map[[2]int]bool)
	for r, row := range sheet.Rows {
		for c, cell := range row.Cells {
			if cell == nil || cell.Merge == nil {
				continue
			}
			for dr := 0; dr <= cell.Merge[0]; dr++ {
				for dc := 0; dc <= cell.Merge[1]; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					covered[[2]int{r + dr, c + dc}] = true
				}
			}
		}
	}
	return covered
}

// styleToCSS converts a CellStyle to CSS declarations.
func styleToCSS(s CellStyle) string {
	var b strings.Builder
	if f := sanitizeFontFamily(s.Font.Family); f != "" {
		b.WriteString(fmt.Sprintf("font-family:'%s';", f))
	}
	if s.Font.SizePt > 0 {
		b.WriteString(fmt.Sprintf("font-size:%.1fpt;", s.Font.SizePt))
	}
	if c := sanitizeColor(s.Font.Color); c != "" {
		b.WriteString(fmt.Sprintf("color:#%s;", c))
	}
	if s.Font.Bold {
		b.WriteString("font-weight:bold;")
	}
	if s.Font.Italic {
		b.WriteString("font-style:italic;")
	}
	switch {
	case s.Font.Underline && s.Font.Strike:
		b.WriteString("text-decoration:underline line-through;")
	case s.Font.Underline:
		b.WriteString("text-decoration:underline;")
	case s.Font.Strike:
		b.WriteString("text-decoration:line-through;")
	}
	if c := sanitizeColor(s.Fill.FgColor); c != "" && s.Fill.Pattern != "" && s.Fill.Pattern != "none" {
		b.WriteString(fmt.Sprintf("background-color:#%s;", c))
	}
	for _, side := range []struct {
		name string
		edge BorderEdge
	}{{"left", s.Border.Left}, {"right", s.Border.Right}, {"top", s.Border.Top}, {"bottom", s.Border.Bottom}} {
		if side.edge.Style == "" {
			continue
		}
		color := sanitizeColor(side.edge.Color)
		if color == "" {
			color = "000000"
		}
		b.WriteString(fmt.Sprintf("border-%s:1px solid #%s;", side.name, color))
	}
	switch s.Alignment.Horizontal {
	case "center", "centerContinuous", "distributed":
		b.WriteString("text-align:center;")
	case "right":
		b.WriteString("text-align:right;")
	case "justify":
		b.WriteString("text-align:justify;")
	case "left":
		b.WriteString("text-align:left;")
	}
	switch s.Alignment.Vertical {
	case "top":
		b.WriteString("vertical-align:top;")
	case "center":
		b.WriteString("vertical-align:middle;")
	}
	if s.Alignment.WrapText {
		b.WriteString("white-space:normal;")
	}
	if s.Alignment.Indent > 0 {
		indentPx := s.Alignment.Indent * 8
		if s.Alignment.Horizontal == "right" {
			b.WriteString(fmt.Sprintf("padding-right:%dpx;", indentPx))
		} else {
			b.WriteString(fmt.Sprintf("padding-left:%dpx;", indentPx))
		}
	}
	return b.String()
}
