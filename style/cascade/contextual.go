package cascade

import (
	"fmt"
	"sort"

	"github.com/npillmayer/cascade/style"
)

// SourceLocation points at the position of a declaration within its
// stylesheet source. It is diagnostic only and takes no part in equality
// or ordering.
type SourceLocation struct {
	Line   int
	Column int
}

// ContextualDeclaration is a property declaration together with the
// cascade-relevant metadata of the style rule it appeared in: its
// importance, origin, specificity and, optionally, its source location.
type ContextualDeclaration struct {
	Declaration style.Declaration
	Important   bool
	Origin      Origin
	Source      *SourceLocation
	Specificity Specificity
}

// Equal reports whether two contextual declarations address the same
// property from the same origin. This is deliberately coarser than
// structural equality: it matches the granularity at which Compare
// distinguishes declarations, and is not suited for de-duplication.
func (d ContextualDeclaration) Equal(other ContextualDeclaration) bool {
	return d.Declaration.ID() == other.Declaration.ID() && d.Origin == other.Origin
}

// Compare ranks two declarations according to the cascade sorting
// criteria, in descending order of priority
// (https://www.w3.org/TR/css-cascade-3/#cascade-origin):
//
// 1. Origin and importance. The precedence of the origins is, in
// descending order: important user-agent declarations, important user
// declarations, important author declarations, then normal author, user
// and user-agent declarations. Declarations from inline style attributes
// and embedded <style> elements rank with author-origin declarations.
//
// 2. Specificity. Same-importance, same-origin-class declarations are
// ranked by the specificity of their rule's selector.
//
// The final criterion, order of appearance, cannot be decided here;
// Compare returns 0 for same-rank declarations and the caller breaks the
// tie by insertion order (see ContextualDeclarations).
//
// Declarations addressing different properties compare as 0 regardless
// of their metadata: the ordering is only meaningful within a
// property-grouped subset, and sorting a mixed collection does not
// guarantee same-property elements end up contiguous. Callers must
// partition by property tag before relying on greatest-wins semantics.
//
// The result is -1, 0 or +1 as d ranks below, with or above other.
func (d ContextualDeclaration) Compare(other ContextualDeclaration) int {
	if d.Declaration.ID() != other.Declaration.ID() {
		return 0
	}
	switch {
	case d.Important && !other.Important:
		return 1
	case !d.Important && other.Important:
		return -1
	case d.Important && other.Important:
		if c := cmpImportantOrigins(d.Origin, other.Origin); c != 0 {
			return c
		}
		return d.Specificity.Compare(other.Specificity)
	case !d.Important && !other.Important:
		// for normal declarations the origin precedence inverts
		if c := cmpImportantOrigins(d.Origin, other.Origin); c != 0 {
			return -c
		}
		return d.Specificity.Compare(other.Specificity)
	}
	return 0 // unreachable, all importance combinations handled above
}

// cmpImportantOrigins ranks two origins by the precedence table for
// important declarations: user-agent above user above author, with
// inline and embedded origins ranking as author. Callers handling normal
// declarations negate the result.
func cmpImportantOrigins(a, b Origin) int {
	aSheet, aIsSheet := a.SheetOrigin()
	bSheet, bIsSheet := b.SheetOrigin()
	switch {
	case !aIsSheet && !bIsSheet:
		return 0 // inline and embedded rank alike
	case !aIsSheet:
		if bSheet.Cascade == Author {
			return 0
		}
		return -1
	case !bIsSheet:
		if aSheet.Cascade == Author {
			return 0
		}
		return 1
	}
	if aSheet.Cascade == bSheet.Cascade {
		return 0
	}
	// enum order is user-agent < user < author; important precedence
	// runs the other way round
	if aSheet.Cascade < bSheet.Cascade {
		return 1
	}
	return -1
}

// ContextualDeclarations accumulates the contextual declarations
// competing for one element during one cascade pass. Multiple
// declarations for the same property are expected; resolving them is
// what Sort and Winner are for. The collection additionally keeps a
// presence set of property tags for O(1) containment checks.
type ContextualDeclarations struct {
	decls     []ContextualDeclaration
	longhands map[style.LonghandID]struct{}
}

// NewContextualDeclarations creates an empty collection.
func NewContextualDeclarations() *ContextualDeclarations {
	return &ContextualDeclarations{
		longhands: make(map[style.LonghandID]struct{}),
	}
}

// Add appends a declaration and records its property tag. No
// de-duplication happens at this layer.
func (cd *ContextualDeclarations) Add(decl ContextualDeclaration) {
	cd.longhands[decl.Declaration.ID()] = struct{}{}
	cd.decls = append(cd.decls, decl)
}

// Contains checks whether any declaration for a given property tag has
// been added, regardless of its importance or origin.
func (cd *ContextualDeclarations) Contains(id style.LonghandID) bool {
	_, ok := cd.longhands[id]
	return ok
}

// Len returns the number of accumulated declarations.
func (cd *ContextualDeclarations) Len() int {
	return len(cd.decls)
}

// At returns the declaration at index i.
func (cd *ContextualDeclarations) At(i int) ContextualDeclaration {
	return cd.decls[i]
}

// Sort orders the collection in place, stably, by ascending cascade
// precedence: of any two declarations addressing the same property, the
// one appearing later is cascade-greater-or-equal, with insertion order
// preserved among same-rank declarations. Elements are not guaranteed to
// be grouped by property (see Compare); callers extracting a per-property
// winner must scan for the maximal same-tag element, as Winner does.
func (cd *ContextualDeclarations) Sort() {
	sort.SliceStable(cd.decls, func(i, j int) bool {
		return cd.decls[i].Compare(cd.decls[j]) < 0
	})
}

// Winner returns the cascade-winning declaration for a property. Among
// declarations of equal rank the last-added one wins, so collections
// filled in document order resolve the final cascade criterion, order of
// appearance, for free.
func (cd *ContextualDeclarations) Winner(id style.LonghandID) (ContextualDeclaration, bool) {
	var best ContextualDeclaration
	found := false
	for _, d := range cd.decls {
		if d.Declaration.ID() != id {
			continue
		}
		if !found || d.Compare(best) >= 0 {
			best = d
			found = true
		}
	}
	return best, found
}

// Winners resolves every property present in the collection and returns
// the winning declarations as a block, in first-appearance order of the
// properties.
func (cd *ContextualDeclarations) Winners() *style.DeclarationBlock {
	block := style.NewDeclarationBlock()
	for _, d := range cd.decls {
		if block.Contains(d.Declaration.ID()) {
			continue
		}
		if w, ok := cd.Winner(d.Declaration.ID()); ok {
			imp := style.Normal
			if w.Important {
				imp = style.Important
			}
			block.AddDeclaration(w.Declaration, imp)
		}
	}
	return block
}

func (d ContextualDeclaration) String() string {
	imp := ""
	if d.Important {
		imp = " !important"
	}
	return fmt.Sprintf("%s%s [%s %s]", d.Declaration, imp, d.Origin, d.Specificity)
}
