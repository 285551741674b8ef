package univer

// StyleData mirrors the subset of IStyleData the importer can fill from an
// xlsx stylesheet.
type StyleData struct {
	FontFamily string          `json:"ff,omitempty"`
	FontSize   float64         `json:"fs,omitempty"`
	Italic     BooleanNumber   `json:"it,omitempty"`
	Bold       BooleanNumber   `json:"bl,omitempty"`
	Underline  *TextDecoration `json:"ul,omitempty"`
	Strike     *TextDecoration `json:"st,omitempty"`
	Background *ColorStyle     `json:"bg,omitempty"`
	Border     *BorderData     `json:"bd,omitempty"`
	Color      *ColorStyle     `json:"cl,omitempty"`
	HAlign     HorizontalAlign `json:"ht,omitempty"`
	VAlign     VerticalAlign   `json:"vt,omitempty"`
	Wrap       WrapStrategy    `json:"tb,omitempty"`
	Padding    *PaddingData    `json:"pd,omitempty"`
}

type TextDecoration struct {
	Show BooleanNumber `json:"s"`
}

// ColorStyle holds a "#RRGGBB" color.
type ColorStyle struct {
	RGB string `json:"rgb,omitempty"`
}

type BorderStyleData struct {
	Style BorderStyle `json:"s"`
	Color ColorStyle  `json:"cl"`
}

type BorderData struct {
	Top    *BorderStyleData `json:"t,omitempty"`
	Right  *BorderStyleData `json:"r,omitempty"`
	Bottom *BorderStyleData `json:"b,omitempty"`
	Left   *BorderStyleData `json:"l,omitempty"`
}

type PaddingData struct {
	Top    float64 `json:"t,omitempty"`
	Right  float64 `json:"r,omitempty"`
	Bottom float64 `json:"b,omitempty"`
	Left   float64 `json:"l,omitempty"`
}

type HorizontalAlign int

const (
	HAlignUnspecified HorizontalAlign = iota
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignJustified
	HAlignBoth
	HAlignDistributed
)

type VerticalAlign int

const (
	VAlignUnspecified VerticalAlign = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

type WrapStrategy int

const (
	WrapUnspecified WrapStrategy = iota
	WrapOverflow
	WrapClip
	WrapWrap
)

// BorderStyle follows Univer's BorderStyleTypes numbering.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderHair
	BorderDotted
	BorderDashed
	BorderDashDot
	BorderDashDotDot
	BorderDouble
	BorderMedium
	BorderMediumDashed
	BorderMediumDashDot
	BorderMediumDashDotDot
	BorderSlantDashDot
	BorderThick
)
