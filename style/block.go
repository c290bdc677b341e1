package style

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// DeclarationBlock collects the property declarations of one style rule.
//
// A block holds at most one declaration per property tag: adding a
// declaration whose tag is already present replaces the existing entry
// in place, so that the latest declaration for a property within a rule
// body wins while the original slot order is preserved. The importance
// flags live in a bit vector whose index space is kept in lockstep with
// the declaration sequence; all mutation goes through the block's
// methods so the two cannot drift apart.
//
// A block is built by one parse pass and treated as read-only
// afterwards. It is not safe for concurrent mutation.
type DeclarationBlock struct {
	declarations []Declaration
	importance   *bitset.BitSet          // bit i = importance of declarations[i]
	longhands    map[LonghandID]struct{} // property tags present
}

// NewDeclarationBlock creates an empty declaration block.
func NewDeclarationBlock() *DeclarationBlock {
	return &DeclarationBlock{
		importance: bitset.New(8),
		longhands:  make(map[LonghandID]struct{}),
	}
}

// AddDeclaration inserts a declaration together with its importance,
// de-duplicating with any existing declaration of the same property tag.
// On a tag match the existing entry's value and importance are replaced
// in place; otherwise the declaration is appended.
func (b *DeclarationBlock) AddDeclaration(decl Declaration, imp Importance) {
	if b.Contains(decl.ID()) {
		for i, existing := range b.declarations {
			if existing.ID() == decl.ID() {
				b.declarations[i] = decl
				b.importance.SetTo(uint(i), imp.Important())
				return
			}
		}
	}
	b.declarations = append(b.declarations, decl)
	b.importance.SetTo(uint(len(b.declarations)-1), imp.Important())
	b.longhands[decl.ID()] = struct{}{}
}

// Declarations returns a read-only view of the block's declarations.
// Callers must not modify the returned slice.
func (b *DeclarationBlock) Declarations() []Declaration {
	return b.declarations
}

// ImportanceAt returns the importance of the declaration at index i.
func (b *DeclarationBlock) ImportanceAt(i int) Importance {
	if i >= 0 && b.importance.Test(uint(i)) {
		return Important
	}
	return Normal
}

// Len returns the number of declarations in the block.
func (b *DeclarationBlock) Len() int {
	return len(b.declarations)
}

// Contains checks whether the block holds a declaration for a given
// property tag.
func (b *DeclarationBlock) Contains(id LonghandID) bool {
	_, ok := b.longhands[id]
	return ok
}

// RemoveDeclaration removes the declaration at index i, keeping the
// importance bits aligned and evicting the property tag from the
// presence set. Indices held by callers are invalidated.
func (b *DeclarationBlock) RemoveDeclaration(i int) {
	if i < 0 || i >= len(b.declarations) {
		return
	}
	delete(b.longhands, b.declarations[i].ID())
	b.declarations = append(b.declarations[:i], b.declarations[i+1:]...)
	for j := i; j < len(b.declarations); j++ {
		b.importance.SetTo(uint(j), b.importance.Test(uint(j+1)))
	}
	b.importance.SetTo(uint(len(b.declarations)), false)
}

func (b *DeclarationBlock) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, d := range b.declarations {
		sb.WriteString(d.String())
		if b.ImportanceAt(i).Important() {
			sb.WriteString(" !important")
		}
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}
