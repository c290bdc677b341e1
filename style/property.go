package style

import "strings"

// LonghandID identifies an atomic (non-shorthand) CSS property.
type LonghandID uint16

// Supported longhand properties.
const (
	LonghandNone LonghandID = iota
	PropDisplay
	PropFontSize
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropWidth
	PropHeight
	PropColor
	PropBackgroundColor
)

var longhandNames = [...]string{
	"-",
	"display",
	"font-size",
	"margin-top",
	"margin-right",
	"margin-bottom",
	"margin-left",
	"width",
	"height",
	"color",
	"background-color",
}

func (id LonghandID) String() string {
	if int(id) < len(longhandNames) {
		return longhandNames[id]
	}
	return "?"
}

// ShorthandID identifies a shorthand property, i.e. one that expands
// into a set of longhands.
type ShorthandID uint16

// Supported shorthand properties.
const (
	ShorthandNone ShorthandID = iota
	ShorthandMargin
)

func (id ShorthandID) String() string {
	if id == ShorthandMargin {
		return "margin"
	}
	return "?"
}

// PropertyID is the result of resolving a property name: either a
// longhand or a shorthand identifier. Exactly one of the two fields is
// set for a resolved property.
type PropertyID struct {
	Longhand  LonghandID
	Shorthand ShorthandID
}

// IsLonghand is true if the identifier names a longhand property.
func (p PropertyID) IsLonghand() bool {
	return p.Longhand != LonghandNone
}

// IsShorthand is true if the identifier names a shorthand property.
func (p PropertyID) IsShorthand() bool {
	return p.Shorthand != ShorthandNone
}

func (p PropertyID) String() string {
	if p.IsShorthand() {
		return p.Shorthand.String()
	}
	return p.Longhand.String()
}

var propertyNames = map[string]PropertyID{
	"display":          {Longhand: PropDisplay},
	"font-size":        {Longhand: PropFontSize},
	"margin-top":       {Longhand: PropMarginTop},
	"margin-right":     {Longhand: PropMarginRight},
	"margin-bottom":    {Longhand: PropMarginBottom},
	"margin-left":      {Longhand: PropMarginLeft},
	"width":            {Longhand: PropWidth},
	"height":           {Longhand: PropHeight},
	"color":            {Longhand: PropColor},
	"background-color": {Longhand: PropBackgroundColor},
	"margin":           {Shorthand: ShorthandMargin},
}

// ResolveProperty maps a property name to a property identifier.
// Property names are matched ASCII-case-insensitively. Unknown names
// report ok=false.
func ResolveProperty(name string) (PropertyID, bool) {
	id, ok := propertyNames[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}
