package cascade

// CascadeOrigin classifies where a stylesheet comes from
// (https://www.w3.org/TR/css-cascade-3/#cascading-origins).
type CascadeOrigin uint8

const (
	// UserAgent is the origin of the browser's default stylesheet.
	UserAgent CascadeOrigin = iota
	// User is the origin of a user-supplied stylesheet.
	User
	// Author is the origin of a document-supplied stylesheet.
	Author
)

func (o CascadeOrigin) String() string {
	switch o {
	case UserAgent:
		return "user-agent"
	case User:
		return "user"
	case Author:
		return "author"
	}
	return "?"
}

// StylesheetOrigin names a concrete stylesheet together with its cascade
// origin.
type StylesheetOrigin struct {
	Name    string
	Cascade CascadeOrigin
}

const (
	originInline uint8 = iota + 1
	originEmbedded
	originSheet
)

// Origin is the source category of a style declaration: an inline
// 'style' attribute, an embedded <style> element, or a stylesheet of
// some cascade origin.
//
// Origin is an option type; use the constructors Inline, Embedded and
// Sheet. Origins are comparable with ==, where two sheet origins are
// equal iff both their name and cascade origin match.
type Origin struct {
	kind  uint8
	sheet StylesheetOrigin
}

// Inline creates the origin of a declaration from a style attribute.
func Inline() Origin {
	return Origin{kind: originInline}
}

// Embedded creates the origin of a declaration from a <style> element.
func Embedded() Origin {
	return Origin{kind: originEmbedded}
}

// Sheet creates the origin of a declaration from a stylesheet.
func Sheet(o StylesheetOrigin) Origin {
	return Origin{kind: originSheet, sheet: o}
}

// IsInline is true for style-attribute origins.
func (o Origin) IsInline() bool {
	return o.kind == originInline
}

// IsEmbedded is true for <style>-element origins.
func (o Origin) IsEmbedded() bool {
	return o.kind == originEmbedded
}

// SheetOrigin returns the stylesheet origin, if o is a sheet origin.
func (o Origin) SheetOrigin() (StylesheetOrigin, bool) {
	return o.sheet, o.kind == originSheet
}

func (o Origin) String() string {
	switch o.kind {
	case originInline:
		return "inline"
	case originEmbedded:
		return "embedded"
	case originSheet:
		return "sheet(" + o.sheet.Cascade.String() + ")"
	}
	return "?"
}
