package styledbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/cascade"
)

func TestBlockTree(t *testing.T) {
	fs, err := css.ParseFontSize("12px")
	if err != nil {
		t.Fatal(err)
	}
	block := style.NewDeclarationBlock()
	block.AddDeclaration(style.FontSize{Size: fs}, style.Important)
	out := BlockTree(block).String()
	t.Logf("block tree:\n%s", out)
	if !strings.Contains(out, "font-size") || !strings.Contains(out, "!important") {
		t.Errorf("expected tree to show important font-size, is:\n%s", out)
	}
}

func TestCascadeTree(t *testing.T) {
	fs, err := css.ParseFontSize("12px")
	if err != nil {
		t.Fatal(err)
	}
	decls := cascade.NewContextualDeclarations()
	decls.Add(cascade.ContextualDeclaration{
		Declaration: style.FontSize{Size: fs},
		Origin:      cascade.Inline(),
	})
	decls.Add(cascade.ContextualDeclaration{
		Declaration: style.FontSize{Size: fs},
		Important:   true,
		Origin:      cascade.Sheet(cascade.StylesheetOrigin{Name: "ua.css", Cascade: cascade.UserAgent}),
	})
	out := CascadeTree(decls).String()
	t.Logf("cascade tree:\n%s", out)
	if strings.Count(out, "12px") != 2 {
		t.Errorf("expected both competing declarations as leaves, is:\n%s", out)
	}
}
