package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/css"
)

// ErrUnknownProperty flags a declaration whose property name did not
// resolve to a supported property.
var ErrUnknownProperty = errors.New("unknown property")

// ParseValue parses the raw value text for a resolved property into
// typed declarations: one declaration for a longhand, several for an
// expanded shorthand. The value must be fully consumed by the property's
// value syntax; trailing text is a syntax error for the declaration.
func ParseValue(id PropertyID, value string) ([]Declaration, error) {
	switch {
	case id.IsLonghand():
		d, err := parseLonghand(id.Longhand, value)
		if err != nil {
			return nil, err
		}
		return []Declaration{d}, nil
	case id.IsShorthand():
		return expandShorthand(id.Shorthand, value)
	}
	return nil, ErrUnknownProperty
}

func parseLonghand(id LonghandID, value string) (Declaration, error) {
	switch id {
	case PropDisplay:
		mode, err := css.ParseDisplay(value)
		if err != nil {
			return nil, err
		}
		return Display{Mode: mode}, nil
	case PropFontSize:
		fs, err := css.ParseFontSize(value)
		if err != nil {
			return nil, err
		}
		return FontSize{Size: fs}, nil
	case PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft:
		d, err := css.ParseDimen(value)
		if err != nil {
			return nil, err
		}
		switch id {
		case PropMarginTop:
			return MarginTop{Margin: d}, nil
		case PropMarginRight:
			return MarginRight{Margin: d}, nil
		case PropMarginBottom:
			return MarginBottom{Margin: d}, nil
		default:
			return MarginLeft{Margin: d}, nil
		}
	case PropWidth, PropHeight:
		d, err := css.ParseDimen(value)
		if err != nil {
			return nil, err
		}
		if id == PropWidth {
			return Width{Size: d}, nil
		}
		return Height{Size: d}, nil
	case PropColor, PropBackgroundColor:
		c, err := css.ParseColor(value)
		if err != nil {
			return nil, err
		}
		if id == PropColor {
			return Color{Color: c}, nil
		}
		return BackgroundColor{Color: c}, nil
	}
	return nil, fmt.Errorf("no value parser for property %q", id)
}

// expandShorthand splits a shorthand value into the declarations for its
// component longhands.
func expandShorthand(id ShorthandID, value string) ([]Declaration, error) {
	switch id {
	case ShorthandMargin:
		dims, err := distribute4(strings.Fields(value))
		if err != nil {
			return nil, err
		}
		return []Declaration{
			MarginTop{Margin: dims[0]},
			MarginRight{Margin: dims[1]},
			MarginBottom{Margin: dims[2]},
			MarginLeft{Margin: dims[3]},
		}, nil
	}
	return nil, fmt.Errorf("no expansion for shorthand %q", id)
}

// distribute4 implements the 1-to-4-value distribution of box shorthands
// onto the top/right/bottom/left longhands
// (https://www.w3.org/TR/css-box-3/#margin-shorthand).
func distribute4(fields []string) ([4]css.DimenT, error) {
	var r [4]css.DimenT
	if len(fields) == 0 || len(fields) > 4 {
		return r, fmt.Errorf("expected 1–4 values, have %d", len(fields))
	}
	ds := make([]css.DimenT, len(fields))
	for i, f := range fields {
		d, err := css.ParseDimen(f)
		if err != nil {
			return r, err
		}
		ds[i] = d
	}
	switch len(ds) {
	case 1:
		r = [4]css.DimenT{ds[0], ds[0], ds[0], ds[0]}
	case 2:
		r = [4]css.DimenT{ds[0], ds[1], ds[0], ds[1]}
	case 3:
		r = [4]css.DimenT{ds[0], ds[1], ds[2], ds[1]}
	case 4:
		r = [4]css.DimenT{ds[0], ds[1], ds[2], ds[3]}
	}
	return r, nil
}
