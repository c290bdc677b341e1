package cssom

import "github.com/npillmayer/cascade/style"

// StyleSheet is an interface to abstract away a stylesheet
// implementation. Concrete implementations adapt the output of a CSS
// parser (see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consist of: a selector prelude plus the
// parsed declarations of the rule body.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string                      // the prelude / selectors of the rule
	Declarations() *style.DeclarationBlock // the parsed rule body
}
