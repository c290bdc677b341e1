package cascade

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// Specificity is a selector specificity with the convention
// Specificity = [A,B,C] of https://www.w3.org/TR/selectors/#specificity-rules;
// index 0 is the most significant component. The zero value is the
// specificity of inline declarations and of the universal selector.
type Specificity [3]int

// Spec creates a specificity from its three components.
func Spec(a, b, c int) Specificity {
	return Specificity{a, b, c}
}

// FromSelector adopts the specificity cascadia computed for a selector.
func FromSelector(sel cascadia.Sel) Specificity {
	sp := sel.Specificity()
	return Specificity{int(sp[0]), int(sp[1]), int(sp[2])}
}

// Compare returns -1, 0 or +1 as s is less than, equal to or greater
// than other.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}
