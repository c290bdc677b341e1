package css

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display".
//
// Display modes are combinable flags: a mode may carry an outer context
// (how the element participates in its parent's flow) and an inner
// context (how its own children are laid out).
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = 0x0000 // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	TableMode       DisplayMode = 0x0100 // CSS table display (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var atomicModeNames = map[DisplayMode]string{
	DisplayNone:     "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	ListItemMode:    "list-item",
	TableMode:       "table",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
}

// Outer returns the outer mode flags.
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x00ff
}

// Inner returns the inner mode flags.
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xff00
}

// IsBlockLevel returns true for an outer display level of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "<no mode>"
	}
	var parts []string
	for _, m := range []DisplayMode{DisplayNone, BlockMode, InlineMode,
		ListItemMode, TableMode, InnerBlockMode, InnerInlineMode} {
		if disp.Contains(m) {
			parts = append(parts, atomicModeNames[m])
		}
	}
	return strings.Join(parts, "|")
}

// ParseDisplay returns mode flags (outer and inner) from a display
// property string.
func ParseDisplay(display string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(display)) {
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "block-inline":
		return BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	return NoMode, fmt.Errorf("unknown display mode: %s", display)
}
