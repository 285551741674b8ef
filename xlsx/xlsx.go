package xlsx

import (
	"strings"

	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// styleResolver turns cell style indexes into CellStyle values, caching one
// result per index since large sheets reuse a handful of styles.
type styleResolver struct {
	wb    *spreadsheet.Workbook
	cache map[uint32]*CellStyle
}

func newStyleResolver(wb *spreadsheet.Workbook) *styleResolver {
	return &styleResolver{wb: wb, cache: make(map[uint32]*CellStyle)}
}

// resolve returns the style for a cell, or nil when the cell has no style
// index or nothing could be resolved.
func (sr *styleResolver) resolve(cell spreadsheet.Cell) *CellStyle {
	if cell.X() == nil || cell.X().SAttr == nil {
		return nil
	}
	id := *cell.X().SAttr
	if st, ok := sr.cache[id]; ok {
		return st
	}
	st := sr.build(id)
	sr.cache[id] = st
	return st
}

func (sr *styleResolver) build(id uint32) *CellStyle {
	xf := cellXf(sr.wb.StyleSheet, id)
	if xf == nil {
		return nil
	}
	var st CellStyle
	if font := GetFontProps(sr.wb.StyleSheet, id); font != nil {
		if len(font.Name) > 0 {
			st.Font.Family = font.Name[0].ValAttr
		}
		if len(font.Sz) > 0 {
			st.Font.SizePt = font.Sz[0].ValAttr
		}
		if len(font.Color) > 0 {
			st.Font.Color = sr.color(font.Color[0])
		}
		st.Font.Bold = boolProp(font.B)
		st.Font.Italic = boolProp(font.I)
		st.Font.Strike = boolProp(font.Strike)
		if len(font.U) > 0 && font.U[0].ValAttr != sml.ST_UnderlineValuesNone {
			st.Font.Underline = true
		}
	}
	if fill := GetFillProps(sr.wb.StyleSheet, id); fill != nil && fill.PatternFill != nil {
		pf := fill.PatternFill
		st.Fill.Pattern = pf.PatternTypeAttr.String()
		st.Fill.FgColor = sr.color(pf.FgColor)
		st.Fill.BgColor = sr.color(pf.BgColor)
	}
	if border := GetBorderProps(sr.wb.StyleSheet, id); border != nil {
		st.Border.Left = sr.edge(border.Left)
		st.Border.Right = sr.edge(border.Right)
		st.Border.Top = sr.edge(border.Top)
		st.Border.Bottom = sr.edge(border.Bottom)
	}
	if al := xf.Alignment; al != nil {
		st.Alignment.Horizontal = al.HorizontalAttr.String()
		st.Alignment.Vertical = al.VerticalAttr.String()
		if al.WrapTextAttr != nil {
			st.Alignment.WrapText = *al.WrapTextAttr
		}
		if al.IndentAttr != nil {
			st.Alignment.Indent = int(*al.IndentAttr)
		}
	}
	if st.IsZero() {
		return nil
	}
	return &st
}

func (sr *styleResolver) edge(pr *sml.CT_BorderPr) BorderEdge {
	if pr == nil {
		return BorderEdge{}
	}
	e := BorderEdge{Color: sr.color(pr.Color)}
	if s := pr.StyleAttr.String(); s != "none" {
		e.Style = s
	}
	return e
}

// color resolves an explicit ARGB value first, then a theme slot. Tints and
// indexed palette colors are not applied.
func (sr *styleResolver) color(c *sml.CT_Color) string {
	if c == nil {
		return ""
	}
	if c.RgbAttr != nil && *c.RgbAttr != "" {
		return normalizeColor(*c.RgbAttr)
	}
	if c.ThemeAttr != nil {
		if hex, ok := ThemeColorToRGB(sr.wb, int(*c.ThemeAttr)); ok {
			return normalizeColor(hex)
		}
	}
	return ""
}

// boolProp reads an OOXML boolean element, where presence without a val
// attribute means true.
func boolProp(ps []*sml.CT_BooleanProperty) bool {
	if len(ps) == 0 || ps[0] == nil {
		return false
	}
	return ps[0].ValAttr == nil || *ps[0].ValAttr
}

func cellXf(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Xf {
	if ss.X() == nil || ss.X().CellXfs == nil || int(styleID) >= len(ss.X().CellXfs.Xf) {
		return nil
	}
	return ss.X().CellXfs.Xf[styleID]
}

// GetFontProps returns the font record a cell style points at.
func GetFontProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Font {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.FontIdAttr == nil || ss.X().Fonts == nil {
		return nil
	}
	fontIdx := int(*xf.FontIdAttr)
	if fontIdx >= len(ss.X().Fonts.Font) {
		return nil
	}
	return ss.X().Fonts.Font[fontIdx]
}

// GetFillProps returns the fill record a cell style points at.
func GetFillProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Fill {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.FillIdAttr == nil || ss.X().Fills == nil {
		return nil
	}
	fillIdx := int(*xf.FillIdAttr)
	if fillIdx >= len(ss.X().Fills.Fill) {
		return nil
	}
	return ss.X().Fills.Fill[fillIdx]
}

// GetBorderProps returns the border record a cell style points at.
func GetBorderProps(ss spreadsheet.StyleSheet, styleID uint32) *sml.CT_Border {
	xf := cellXf(ss, styleID)
	if xf == nil || xf.BorderIdAttr == nil || ss.X().Borders == nil {
		return nil
	}
	borderIdx := int(*xf.BorderIdAttr)
	if borderIdx >= len(ss.X().Borders.Border) {
		return nil
	}
	return ss.X().Borders.Border[borderIdx]
}

// ThemeColorToRGB resolves a theme color index (0-based) to an RGB hex string (e.g., "FFFFFF").
// It does not apply tint. Returns false if the index is invalid or the color cannot be resolved.
func ThemeColorToRGB(wb *spreadsheet.Workbook, themeIdx int) (string, bool) {
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil || themes[0].ThemeElements == nil || themes[0].ThemeElements.ClrScheme == nil {
		return "", false
	}
	cs := themes[0].ThemeElements.ClrScheme

	// Slot order of the clrScheme element.
	slots := []*dml.CT_Color{
		cs.Dk1, cs.Lt1, cs.Dk2, cs.Lt2,
		cs.Accent1, cs.Accent2, cs.Accent3, cs.Accent4, cs.Accent5, cs.Accent6,
		cs.Hlink, cs.FolHlink,
	}
	if themeIdx < 0 || themeIdx >= len(slots) || slots[themeIdx] == nil {
		return "", false
	}
	clr := slots[themeIdx]
	if clr.SrgbClr != nil && clr.SrgbClr.ValAttr != "" {
		return clr.SrgbClr.ValAttr, true
	} else if clr.SysClr != nil && clr.SysClr.LastClrAttr != nil {
		return *clr.SysClr.LastClrAttr, true
	}
	return "", false
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit RGB string.
// If the string is already 6 digits (or any other length), it is returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		return strings.ToUpper(hex[2:])
	}
	return strings.ToUpper(hex)
}
