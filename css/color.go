package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A small palette of named CSS colors. A production styling engine would
// carry the full X11/CSS palette; for the cascade core a handful is enough.
var namedColors = map[string]color.RGBA{
	"black":      {0, 0, 0, 0xff},
	"white":      {0xff, 0xff, 0xff, 0xff},
	"red":        {0xff, 0, 0, 0xff},
	"green":      {0, 0x80, 0, 0xff},
	"lime":       {0, 0xff, 0, 0xff},
	"blue":       {0, 0, 0xff, 0xff},
	"yellow":     {0xff, 0xff, 0, 0xff},
	"cyan":       {0, 0xff, 0xff, 0xff},
	"magenta":    {0xff, 0, 0xff, 0xff},
	"gray":       {0x80, 0x80, 0x80, 0xff},
	"grey":       {0x80, 0x80, 0x80, 0xff},
	"silver":     {0xc0, 0xc0, 0xc0, 0xff},
	"powderblue": {0xb0, 0xe0, 0xe6, 0xff},
}

// ParseColor parses a CSS color value: a color name or a #rgb / #rrggbb
// hex triplet.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	return nil, fmt.Errorf("not a color: %s", s)
}

func parseHexColor(hex string) (color.Color, error) {
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		if r, err = strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8); err != nil {
			break
		}
		if g, err = strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8); err != nil {
			break
		}
		b, err = strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
	case 6:
		if r, err = strconv.ParseUint(hex[0:2], 16, 8); err != nil {
			break
		}
		if g, err = strconv.ParseUint(hex[2:4], 16, 8); err != nil {
			break
		}
		b, err = strconv.ParseUint(hex[4:6], 16, 8)
	default:
		err = fmt.Errorf("hex color must have 3 or 6 digits")
	}
	if err != nil {
		return nil, fmt.Errorf("not a hex color: #%s", hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 0xff}, nil
}

// ColorString returns a printable name for a color; used for debugging.
func ColorString(c color.Color) string {
	if c == nil {
		return "<no color>"
	}
	r, g, b, _ := c.RGBA()
	for name, rgba := range namedColors {
		if name == "grey" {
			continue
		}
		nr, ng, nb, _ := rgba.RGBA()
		if r == nr && g == ng && b == nb {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
