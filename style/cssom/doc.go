/*
Package cssom glues stylesheets to the cascade core.

In order to de-couple implementations of CSS stylesheets from cascade
resolution, stylesheets enter this package through the interfaces
StyleSheet and Rule. Clients will have to provide a concrete
implementation of these interfaces (e.g., see package douceuradapter).

Having interfaces here imposes a performance hit. However, this
implementation of CSS styling will never trade modularity and clarity
for performance. Clients in need of a production grade browser engine
(where performance is key) should opt for headless versions of the main
browser projects.

Selector matching and specificity computation rely on the great work of
https://godoc.org/github.com/andybalholm/cascadia.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
