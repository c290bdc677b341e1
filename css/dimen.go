package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
//
// A dimension is either one of the keywords auto/inherit/initial, an
// absolute length, or a length relative to an environment not known at
// parse time (font size, viewport). Absolute lengths are stored as
// dimen.DU; relative lengths keep their unit tag and scale until the
// value is resolved by a later styling stage.
type DimenT struct {
	d     dimen.DU // absolute part
	scale float64  // unit count for relative units, or percentage value
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage scale
	| FontRel unit scale
	| ViewRel unit scale
*/

// Auto creates the CSS dimension keyword 'auto'.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates the CSS dimension keyword 'inherit'.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates the CSS dimension keyword 'initial'.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{scale: n, flags: dimenPercent}
}

// Relative creates a CSS dimension relative to a unit like "em" or "vw".
// Unknown units flag an error.
func Relative(unit string, n float64) (DimenT, error) {
	flag, ok := relUnitFlags[unit]
	if !ok {
		return DimenT{}, fmt.Errorf("unknown relative unit: %s", unit)
	}
	return DimenT{scale: n, flags: flag}, nil
}

// IsNone is true for an unset dimension (the zero value).
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute is true for a fixed length.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsAuto is true for keyword 'auto'.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsInherit is true for keyword 'inherit'.
func (d DimenT) IsInherit() bool {
	return d.flags&kindMask == dimenInherit
}

// IsInitial is true for keyword 'initial'.
func (d DimenT) IsInitial() bool {
	return d.flags&kindMask == dimenInitial
}

// IsRelative is true for %-, font- and viewport-relative lengths.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// IsPercent is true for a %-relative length.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// DU returns the absolute length of a dimension. Only valid if
// d.IsAbsolute() is true.
func (d DimenT) DU() dimen.DU {
	return d.d
}

// Scale returns the unit count of a relative dimension, e.g. 1.5 for
// "1.5em", or the percentage value for a %-relative one.
func (d DimenT) Scale() float64 {
	return d.scale
}

// UnitString returns the unit tag of a relative dimension, e.g. "em",
// or the empty string for non-relative ones.
func (d DimenT) UnitString() string {
	if name, ok := relUnitNames[d.flags&relativeMask]; ok {
		return name
	}
	return ""
}

func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		return fmt.Sprintf("%gpt", float64(d.d)/float64(dimen.PT))
	}
	if d.IsRelative() {
		return strconv.FormatFloat(d.scale, 'f', -1, 64) + d.UnitString()
	}
	return "<none>"
}

var relUnitFlags = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
}

var relUnitNames = map[uint32]string{
	dimenEM:      "em",
	dimenEX:      "ex",
	dimenCH:      "ch",
	dimenREM:     "rem",
	dimenVW:      "vw",
	dimenVH:      "vh",
	dimenVMIN:    "vmin",
	dimenVMAX:    "vmax",
	dimenPercent: "%",
}

// Conversion factors to points for the absolute CSS units
// (https://www.w3.org/TR/css-values-3/#absolute-lengths, 1px = 1/96in).
var absUnitPt = map[string]float64{
	"pt": 1,
	"px": 0.75,
	"pc": 12,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
}

// ParseDimen parses a CSS dimension from raw value text, e.g. "12px",
// "50%", "1.5em" or "auto". The input must consist of the dimension only;
// trailing text is a syntax error.
func ParseDimen(s string) (DimenT, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return DimenT{}, fmt.Errorf("empty dimension")
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	split := len(v)
	for i, r := range v {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			split = i
			break
		}
	}
	num, unit := v[:split], v[split:]
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("not a dimension: %s", s)
	}
	if factor, ok := absUnitPt[unit]; ok {
		return JustDimen(dimen.DU(n * factor * float64(dimen.PT))), nil
	}
	if unit == "%" {
		return Percentage(n), nil
	}
	if _, ok := relUnitFlags[unit]; ok {
		return Relative(unit, n)
	}
	return DimenT{}, fmt.Errorf("unknown dimension unit: %s", s)
}
