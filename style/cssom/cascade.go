package cssom

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/cascade"
	"golang.org/x/net/html"
)

// Source couples a stylesheet with the origin its declarations cascade
// under.
type Source struct {
	Sheet  StyleSheet
	Origin cascade.Origin
}

// CollectDeclarations gathers, for one DOM element, the declarations of
// every rule matching it, each wrapped with the cascade metadata of its
// rule. Sources and their rules are walked in the order given, so
// callers passing sources in document order get document-order
// tie-breaking from the resulting collection.
//
// A selector that cascadia cannot parse skips its rule only; the error
// is traced, not returned.
func CollectDeclarations(node *html.Node, sources []Source) *cascade.ContextualDeclarations {
	decls := cascade.NewContextualDeclarations()
	for _, src := range sources {
		if src.Sheet == nil || src.Sheet.Empty() {
			continue
		}
		for _, rule := range src.Sheet.Rules() {
			spec, matched := matchRule(node, rule.Selector())
			if !matched {
				continue
			}
			block := rule.Declarations()
			for i, d := range block.Declarations() {
				decls.Add(cascade.ContextualDeclaration{
					Declaration: d,
					Important:   block.ImportanceAt(i).Important(),
					Origin:      src.Origin,
					Specificity: spec,
				})
			}
		}
	}
	return decls
}

// matchRule matches a selector prelude against a node. For a selector
// list the specificity in effect is that of the most specific selector
// in the list that matches.
func matchRule(node *html.Node, selector string) (cascade.Specificity, bool) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Infof("cannot parse selector '%s': %v", selector, err)
		return cascade.Specificity{}, false
	}
	var spec cascade.Specificity
	matched := false
	for _, sel := range group {
		if sel.Match(node) {
			s := cascade.FromSelector(sel)
			if !matched || spec.Compare(s) < 0 {
				spec = s
			}
			matched = true
		}
	}
	return spec, matched
}

// StyleForNode resolves the cascade for one element and returns the
// block of winning declarations. Declarations of a non-nil inline block
// take part with inline origin and zero specificity, placed after all
// stylesheet declarations.
func StyleForNode(node *html.Node, sources []Source, inline *style.DeclarationBlock) *style.DeclarationBlock {
	decls := CollectDeclarations(node, sources)
	if inline != nil {
		for i, d := range inline.Declarations() {
			decls.Add(cascade.ContextualDeclaration{
				Declaration: d,
				Important:   inline.ImportanceAt(i).Important(),
				Origin:      cascade.Inline(),
			})
		}
	}
	decls.Sort()
	block := decls.Winners()
	tracer().Debugf("resolved %d declarations to %d winners", decls.Len(), block.Len())
	return block
}
