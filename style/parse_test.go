package style

import (
	"testing"

	"github.com/npillmayer/cascade/css"
)

func TestResolveProperty(t *testing.T) {
	id, ok := ResolveProperty("font-size")
	if !ok || !id.IsLonghand() || id.Longhand != PropFontSize {
		t.Errorf("expected 'font-size' to resolve to a longhand, is %v", id)
	}
	id, ok = ResolveProperty(" MARGIN ")
	if !ok || !id.IsShorthand() || id.Shorthand != ShorthandMargin {
		t.Errorf("expected 'MARGIN' to resolve to shorthand margin, is %v", id)
	}
	if _, ok = ResolveProperty("grid-template-areas"); ok {
		t.Error("expected 'grid-template-areas' to be unknown, isn't")
	}
}

func TestParseValueLonghand(t *testing.T) {
	id, _ := ResolveProperty("display")
	decls, err := ParseValue(id, "block")
	if err != nil {
		t.Fatalf("cannot parse 'display: block': %v", err)
	}
	if len(decls) != 1 || decls[0].ID() != PropDisplay {
		t.Errorf("expected one display declaration, have %v", decls)
	}
}

func TestParseValueSyntaxError(t *testing.T) {
	id, _ := ResolveProperty("font-size")
	if _, err := ParseValue(id, "12px oops"); err == nil {
		t.Error("expected trailing text after value to fail, didn't")
	}
	if _, err := ParseValue(id, "huge"); err == nil {
		t.Error("expected unknown font-size keyword to fail, didn't")
	}
}

func TestExpandMarginShorthand(t *testing.T) {
	id, _ := ResolveProperty("margin")
	for _, tc := range []struct {
		value string
		want  [4]string // top right bottom left
	}{
		{"1em", [4]string{"1em", "1em", "1em", "1em"}},
		{"1em 2em", [4]string{"1em", "2em", "1em", "2em"}},
		{"1em 2em 3em", [4]string{"1em", "2em", "3em", "2em"}},
		{"1em 2em 3em 4em", [4]string{"1em", "2em", "3em", "4em"}},
	} {
		decls, err := ParseValue(id, tc.value)
		if err != nil {
			t.Fatalf("cannot expand 'margin: %s': %v", tc.value, err)
		}
		if len(decls) != 4 {
			t.Fatalf("expected 4 declarations for 'margin: %s', have %d", tc.value, len(decls))
		}
		ids := []LonghandID{PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft}
		for i, decl := range decls {
			if decl.ID() != ids[i] {
				t.Errorf("margin '%s': expected %s at slot %d, is %s", tc.value, ids[i], i, decl.ID())
			}
			want, _ := css.ParseDimen(tc.want[i])
			var have css.DimenT
			switch d := decl.(type) {
			case MarginTop:
				have = d.Margin
			case MarginRight:
				have = d.Margin
			case MarginBottom:
				have = d.Margin
			case MarginLeft:
				have = d.Margin
			}
			if have != want {
				t.Errorf("margin '%s': expected %s at slot %d, is %s", tc.value, want, i, have)
			}
		}
	}
	if _, err := ParseValue(id, "1em 2em 3em 4em 5em"); err == nil {
		t.Error("expected 5-value margin shorthand to fail, didn't")
	}
}
