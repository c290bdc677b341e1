package cssom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/cascade"
	"github.com/npillmayer/cascade/style/cssom"
	"github.com/npillmayer/cascade/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

const myhtml = `
<html><head>
<style>
  p { font-size: 10px; margin-top: 1em }
  p.hero { font-size: 16px }
</style>
</head><body>
  <p class="hero" style="font-size: 24px">Hello</p>
  <p>World</p>
</body></html>
`

func parseDoc(t *testing.T) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(myhtml))
	if err != nil {
		t.Fatalf("cannot parse HTML: %v", err)
	}
	return doc
}

func findP(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "p" {
		cls := ""
		for _, a := range n.Attr {
			if a.Key == "class" {
				cls = a.Val
			}
		}
		if cls == class {
			return n
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findP(ch, class); r != nil {
			return r
		}
	}
	return nil
}

func TestCollectDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc := parseDoc(t)
	sources := douceuradapter.EmbeddedSources(doc)
	if len(sources) != 1 {
		t.Fatalf("expected 1 embedded source, have %d", len(sources))
	}
	hero := findP(doc, "hero")
	if hero == nil {
		t.Fatal("cannot find p.hero in parse tree")
	}
	decls := cssom.CollectDeclarations(hero, sources)
	// p matches with 2 declarations, p.hero with 1
	if decls.Len() != 3 {
		t.Fatalf("expected 3 collected declarations, have %d", decls.Len())
	}
	if !decls.Contains(style.PropFontSize) || !decls.Contains(style.PropMarginTop) {
		t.Error("expected collection to contain font-size and margin-top")
	}
}

func TestStyleForNodeWithInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc := parseDoc(t)
	sources := douceuradapter.EmbeddedSources(doc)
	hero := findP(doc, "hero")
	inline := douceuradapter.InlineStyle(hero)
	if inline == nil {
		t.Fatal("expected p.hero to carry an inline style")
	}
	styles := cssom.StyleForNode(hero, sources, inline)
	if styles.Len() != 2 {
		t.Fatalf("expected 2 winning declarations, have %d", styles.Len())
	}
	fs := winningFontSize(t, styles)
	want, _ := css.ParseDimen("24px")
	if fs.Size.Size() != want {
		t.Errorf("expected inline font-size 24px to win, is %s", fs.Size.Size())
	}
}

func TestStyleForNodeSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc := parseDoc(t)
	sources := douceuradapter.EmbeddedSources(doc)
	hero := findP(doc, "hero")
	// without the inline style, p.hero beats p on specificity
	styles := cssom.StyleForNode(hero, sources, nil)
	fs := winningFontSize(t, styles)
	want, _ := css.ParseDimen("16px")
	if fs.Size.Size() != want {
		t.Errorf("expected p.hero font-size 16px to win, is %s", fs.Size.Size())
	}
}

func TestStyleForNodeAuthorSheetOverEmbedded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc := parseDoc(t)
	author, err := douceuradapter.ParseCSS("p { margin-top: 2em }")
	if err != nil {
		t.Fatalf("cannot parse author stylesheet: %v", err)
	}
	sources := douceuradapter.EmbeddedSources(doc)
	// external author sheet listed after the embedded one: document order
	// breaks the equal-rank tie
	sources = append(sources, cssom.Source{
		Sheet:  author,
		Origin: cascade.Sheet(cascade.StylesheetOrigin{Name: "site.css", Cascade: cascade.Author}),
	})
	plain := findP(doc, "")
	styles := cssom.StyleForNode(plain, sources, nil)
	var mt style.MarginTop
	found := false
	for _, d := range styles.Declarations() {
		if m, ok := d.(style.MarginTop); ok {
			mt = m
			found = true
		}
	}
	if !found {
		t.Fatal("expected a winning margin-top declaration")
	}
	if !mt.Margin.IsRelative() || mt.Margin.Scale() != 2 {
		t.Errorf("expected later author margin-top 2em to win, is %s", mt.Margin)
	}
}

func winningFontSize(t *testing.T, block *style.DeclarationBlock) style.FontSize {
	t.Helper()
	for _, d := range block.Declarations() {
		if fs, ok := d.(style.FontSize); ok {
			return fs
		}
	}
	t.Fatal("expected a winning font-size declaration")
	return style.FontSize{}
}
