/*
Package css holds the specified-value domain for supported CSS properties:
dimensions, font sizes, display modes and colors, together with parsers
from raw CSS value text.

The types in this package are plain value types. They carry no cascade
metadata; ranking competing declarations is the job of package
style/cascade.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css
