/*
Package douceuradapter is a concrete implementation of interface
cssom.StyleSheet on top of the douceur CSS parser.

Besides wrapping parsed stylesheets, the package is the boundary where
raw declarations become typed: property names are resolved against the
style registry, value text is parsed into declarations, and a trailing
'!important' marker is recognized. The unit of failure is a single
declaration: an unknown property or a value syntax error drops that
declaration with a traced diagnostic and parsing continues with the
next one.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/style/cascade"
	"github.com/npillmayer/cascade/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// ParseCSS parses a stylesheet from CSS source text.
func ParseCSS(csstext string) (*CSSStyles, error) {
	sheet, err := parser.Parse(csstext)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet, with their
// declaration lists parsed into typed blocks. At-rules are not supported
// and are skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Debugf("skipping unsupported at-rule '%s'", r.Name)
			continue
		}
		rules = append(rules, &rule{
			selector: r.Prelude,
			block:    DeclarationBlock(r.Declarations),
		})
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// rule adapts one douceur qualified rule.
type rule struct {
	selector string
	block    *style.DeclarationBlock
}

// Selector returns the prelude / selectors of the rule.
func (r *rule) Selector() string {
	return r.selector
}

// Declarations returns the parsed rule body.
func (r *rule) Declarations() *style.DeclarationBlock {
	return r.block
}

var _ cssom.Rule = &rule{}

// DeclarationBlock converts a list of raw douceur declarations into a
// typed declaration block. Declarations that fail to resolve or parse
// are dropped individually; the remaining declarations of the list are
// unaffected.
func DeclarationBlock(decls []*css.Declaration) *style.DeclarationBlock {
	block := style.NewDeclarationBlock()
	for _, d := range decls {
		if d == nil {
			continue
		}
		value, imp := trimImportant(d.Value)
		if d.Important {
			imp = style.Important
		}
		id, ok := style.ResolveProperty(d.Property)
		if !ok {
			tracer().Infof("dropping declaration for unknown property '%s'", d.Property)
			continue
		}
		parsed, err := style.ParseValue(id, value)
		if err != nil {
			tracer().Infof("dropping declaration '%s: %s': %v", d.Property, d.Value, err)
			continue
		}
		for _, p := range parsed {
			block.AddDeclaration(p, imp)
		}
	}
	return block
}

// trimImportant strips a trailing '!important' marker from raw value
// text. The marker is matched ASCII-case-insensitively, tolerating
// whitespace around the bang; anything else following the value is left
// for the value parser to reject.
func trimImportant(value string) (string, style.Importance) {
	v := strings.TrimSpace(value)
	const marker = "important"
	if len(v) < len(marker) || !strings.EqualFold(v[len(v)-len(marker):], marker) {
		return value, style.Normal
	}
	head := strings.TrimSpace(v[:len(v)-len(marker)])
	if !strings.HasSuffix(head, "!") {
		return value, style.Normal
	}
	return strings.TrimSpace(strings.TrimSuffix(head, "!")), style.Important
}

// ParseStyleAttribute parses the content of an HTML style attribute into
// a declaration block. A parse failure of the whole attribute yields an
// empty block.
func ParseStyleAttribute(attr string) *style.DeclarationBlock {
	decls, err := parser.ParseDeclarations(attr)
	if err != nil {
		tracer().Infof("cannot parse style attribute: %v", err)
		return style.NewDeclarationBlock()
	}
	return DeclarationBlock(decls)
}

// InlineStyle returns the declaration block of a node's style attribute,
// or nil if the node carries none.
func InlineStyle(node *html.Node) *style.DeclarationBlock {
	if node == nil {
		return nil
	}
	for _, a := range node.Attr {
		if a.Key == "style" {
			return ParseStyleAttribute(a.Val)
		}
	}
	return nil
}

// ExtractStyleElements visits <head> and <body> elements in an HTML
// parse tree and searches for embedded <style>s. It returns the content
// of style elements as stylesheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		if el := findElement(a, htmldoc); el != nil {
			sheets = append(sheets, extractStyles(el)...)
		}
	}
	return sheets
}

// EmbeddedSources returns the embedded stylesheets of an HTML document
// as cascade sources with embedded origin, in document order.
func EmbeddedSources(htmldoc *html.Node) []cssom.Source {
	var sources []cssom.Source
	for _, sheet := range ExtractStyleElements(htmldoc) {
		sources = append(sources, cssom.Source{Sheet: sheet, Origin: cascade.Embedded()})
	}
	return sources
}

func extractStyles(h *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Infof("cannot parse embedded stylesheet: %v", err)
			continue
		}
		sheets = append(sheets, Wrap(sheet))
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
