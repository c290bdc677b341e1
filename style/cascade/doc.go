/*
Package cascade ranks competing property declarations.

When several style rules target the same element, each of their
declarations is wrapped into a ContextualDeclaration together with the
cascade-relevant metadata of its rule: origin, importance and selector
specificity. The Compare method on ContextualDeclaration implements the
origin/importance/specificity criteria of the CSS cascade
(https://www.w3.org/TR/css-cascade-3/#cascading); a
ContextualDeclarations collection accumulates the wrapped declarations
for one element and resolves, per property, which declaration wins.

The final cascade criterion, order of appearance, is deliberately not
part of Compare: collections resolve remaining ties by insertion order,
so callers must append declarations in document order.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade
