package style

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/cascade/css"
)

// Importance is a declaration importance marker
// (https://drafts.csswg.org/css-cascade/#importance).
type Importance uint8

const (
	// Normal marks a declaration without '!important'.
	Normal Importance = iota
	// Important marks a declaration with '!important'.
	Important
)

// Important returns whether this is an important declaration.
func (imp Importance) Important() bool {
	return imp == Important
}

func (imp Importance) String() string {
	if imp == Important {
		return "important"
	}
	return "normal"
}

// Declaration is a single property declaration, carrying the specified
// value for one longhand property. There is one concrete declaration
// type per supported longhand; the property identifier returned by ID()
// is the tag by which declarations are de-duplicated and matched against
// competitors. Declarations have value semantics and may be copied
// freely.
type Declaration interface {
	ID() LonghandID
	String() string
}

// Display is a declaration for property "display".
type Display struct {
	Mode css.DisplayMode
}

// ID returns the property tag of the declaration.
func (Display) ID() LonghandID { return PropDisplay }

func (d Display) String() string {
	return fmt.Sprintf("display: %s", d.Mode)
}

// FontSize is a declaration for property "font-size".
type FontSize struct {
	Size css.FontSize
}

// ID returns the property tag of the declaration.
func (FontSize) ID() LonghandID { return PropFontSize }

func (d FontSize) String() string {
	return fmt.Sprintf("font-size: %s", d.Size)
}

// MarginTop is a declaration for property "margin-top".
type MarginTop struct {
	Margin css.DimenT
}

// ID returns the property tag of the declaration.
func (MarginTop) ID() LonghandID { return PropMarginTop }

func (d MarginTop) String() string {
	return fmt.Sprintf("margin-top: %s", d.Margin)
}

// MarginRight is a declaration for property "margin-right".
type MarginRight struct {
	Margin css.DimenT
}

// ID returns the property tag of the declaration.
func (MarginRight) ID() LonghandID { return PropMarginRight }

func (d MarginRight) String() string {
	return fmt.Sprintf("margin-right: %s", d.Margin)
}

// MarginBottom is a declaration for property "margin-bottom".
type MarginBottom struct {
	Margin css.DimenT
}

// ID returns the property tag of the declaration.
func (MarginBottom) ID() LonghandID { return PropMarginBottom }

func (d MarginBottom) String() string {
	return fmt.Sprintf("margin-bottom: %s", d.Margin)
}

// MarginLeft is a declaration for property "margin-left".
type MarginLeft struct {
	Margin css.DimenT
}

// ID returns the property tag of the declaration.
func (MarginLeft) ID() LonghandID { return PropMarginLeft }

func (d MarginLeft) String() string {
	return fmt.Sprintf("margin-left: %s", d.Margin)
}

// Width is a declaration for property "width".
type Width struct {
	Size css.DimenT
}

// ID returns the property tag of the declaration.
func (Width) ID() LonghandID { return PropWidth }

func (d Width) String() string {
	return fmt.Sprintf("width: %s", d.Size)
}

// Height is a declaration for property "height".
type Height struct {
	Size css.DimenT
}

// ID returns the property tag of the declaration.
func (Height) ID() LonghandID { return PropHeight }

func (d Height) String() string {
	return fmt.Sprintf("height: %s", d.Size)
}

// Color is a declaration for property "color".
type Color struct {
	Color color.Color
}

// ID returns the property tag of the declaration.
func (Color) ID() LonghandID { return PropColor }

func (d Color) String() string {
	return fmt.Sprintf("color: %s", css.ColorString(d.Color))
}

// BackgroundColor is a declaration for property "background-color".
type BackgroundColor struct {
	Color color.Color
}

// ID returns the property tag of the declaration.
func (BackgroundColor) ID() LonghandID { return PropBackgroundColor }

func (d BackgroundColor) String() string {
	return fmt.Sprintf("background-color: %s", css.ColorString(d.Color))
}
