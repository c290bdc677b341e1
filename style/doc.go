/*
Package style implements the property-declaration model of the CSS
cascade: a registry of supported properties, typed declarations, and
declaration blocks as parsed from style-rule bodies.

A Declaration carries the specified value for exactly one longhand
property; its property identifier is the tag by which competing
declarations are matched. A DeclarationBlock collects the declarations
of one style rule, de-duplicating by property tag and tracking, per
declaration, whether it was flagged '!important'.

Ranking declarations from different rules against each other is the job
of package style/cascade; driving a concrete CSS parser is the job of
package style/cssom/douceuradapter.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style
