package css

import (
	"fmt"
	"strings"
)

// FontSize is the specified value of the font-size property: either one
// of the absolute-size/relative-size keywords, or a length/percentage.
type FontSize struct {
	keyword string
	size    DimenT
}

// Keywords accepted for font-size
// (https://www.w3.org/TR/css-fonts-3/#font-size-prop).
var fontSizeKeywords = map[string]bool{
	"xx-small": true,
	"x-small":  true,
	"small":    true,
	"medium":   true,
	"large":    true,
	"x-large":  true,
	"xx-large": true,
	"smaller":  true,
	"larger":   true,
}

// FontSizeKeyword creates a font size from a size keyword like "medium".
func FontSizeKeyword(kw string) FontSize {
	return FontSize{keyword: kw}
}

// FontSizeDimen creates a font size from a length or percentage.
func FontSizeDimen(d DimenT) FontSize {
	return FontSize{size: d}
}

// IsKeyword is true if the font size is given as a size keyword.
func (fs FontSize) IsKeyword() bool {
	return fs.keyword != ""
}

// Keyword returns the size keyword, or the empty string for lengths.
func (fs FontSize) Keyword() string {
	return fs.keyword
}

// Size returns the font size as a dimension. Only valid if IsKeyword()
// is false.
func (fs FontSize) Size() DimenT {
	return fs.size
}

func (fs FontSize) String() string {
	if fs.IsKeyword() {
		return fs.keyword
	}
	return fs.size.String()
}

// ParseFontSize parses the specified value of a font-size declaration.
func ParseFontSize(s string) (FontSize, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if fontSizeKeywords[v] {
		return FontSizeKeyword(v), nil
	}
	d, err := ParseDimen(v)
	if err != nil {
		return FontSize{}, fmt.Errorf("not a font size: %s", s)
	}
	if d.IsAuto() {
		return FontSize{}, fmt.Errorf("font-size cannot be 'auto'")
	}
	return FontSizeDimen(d), nil
}
