package css

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
)

func TestParseDimenKeywords(t *testing.T) {
	d, err := ParseDimen("auto")
	if err != nil || !d.IsAuto() {
		t.Errorf("expected 'auto' to parse to Auto(), is %v (%v)", d, err)
	}
	d, err = ParseDimen(" Inherit ")
	if err != nil || !d.IsInherit() {
		t.Errorf("expected 'Inherit' to parse to Inherit(), is %v (%v)", d, err)
	}
	d, err = ParseDimen("initial")
	if err != nil || !d.IsInitial() {
		t.Errorf("expected 'initial' to parse to Initial(), is %v (%v)", d, err)
	}
}

func TestParseDimenAbsolute(t *testing.T) {
	d, err := ParseDimen("12pt")
	if err != nil {
		t.Fatalf("cannot parse '12pt': %v", err)
	}
	if !d.IsAbsolute() || d.DU() != 12*dimen.PT {
		t.Errorf("expected 12pt, is %v", d)
	}
	d, err = ParseDimen("16px") // 16px = 12pt
	if err != nil {
		t.Fatalf("cannot parse '16px': %v", err)
	}
	if !d.IsAbsolute() || d.DU() != 12*dimen.PT {
		t.Errorf("expected 16px to equal 12pt, is %v", d)
	}
	if d != JustDimen(12*dimen.PT) {
		t.Errorf("expected 16px to compare equal to JustDimen(12pt)")
	}
}

func TestParseDimenRelative(t *testing.T) {
	d, err := ParseDimen("1.5em")
	if err != nil {
		t.Fatalf("cannot parse '1.5em': %v", err)
	}
	if !d.IsRelative() || d.Scale() != 1.5 || d.UnitString() != "em" {
		t.Errorf("expected 1.5em, is %v", d)
	}
	d, err = ParseDimen("50%")
	if err != nil {
		t.Fatalf("cannot parse '50%%': %v", err)
	}
	if !d.IsPercent() || d.Scale() != 50 {
		t.Errorf("expected 50%%, is %v", d)
	}
}

func TestParseDimenErrors(t *testing.T) {
	for _, input := range []string{"", "12", "12foo", "abc", "12px extra"} {
		if d, err := ParseDimen(input); err == nil {
			t.Errorf("expected '%s' to fail, parsed to %v", input, d)
		}
	}
}

func TestParseFontSize(t *testing.T) {
	fs, err := ParseFontSize("medium")
	if err != nil || !fs.IsKeyword() || fs.Keyword() != "medium" {
		t.Errorf("expected keyword 'medium', is %v (%v)", fs, err)
	}
	fs, err = ParseFontSize("12px")
	if err != nil || fs.IsKeyword() || !fs.Size().IsAbsolute() {
		t.Errorf("expected length font size, is %v (%v)", fs, err)
	}
	if _, err = ParseFontSize("auto"); err == nil {
		t.Error("expected font-size 'auto' to fail, didn't")
	}
}

func TestParseDisplay(t *testing.T) {
	mode, err := ParseDisplay("inline-block")
	if err != nil {
		t.Fatalf("cannot parse 'inline-block': %v", err)
	}
	if !mode.Contains(InlineMode) || !mode.Contains(InnerBlockMode) {
		t.Errorf("expected inline|inner-block, is %v", mode)
	}
	if mode.IsBlockLevel() {
		t.Error("inline-block must not be block-level")
	}
	if _, err = ParseDisplay("sideways"); err == nil {
		t.Error("expected display 'sideways' to fail, didn't")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatalf("cannot parse '#ff0000': %v", err)
	}
	if ColorString(c) != "red" {
		t.Errorf("expected #ff0000 to be red, is %s", ColorString(c))
	}
	c, err = ParseColor("#f00")
	if err != nil || ColorString(c) != "red" {
		t.Errorf("expected #f00 to be red, is %v (%v)", c, err)
	}
	if _, err = ParseColor("12px"); err == nil {
		t.Error("expected '12px' to fail as a color, didn't")
	}
}
