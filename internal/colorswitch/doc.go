// Package colorswitch implements a light/dark color scheme switch that
// resolves, applies and persists the user's preference.
//
// The switch owns a single scheme value. The root attribute of the hosting
// document, the persisted store entry, the switch's own "scheme" attribute
// and the checked state of its control are projections of that value and
// are rewritten together by each mutation path. Hosts (GTK, terminal)
// provide the Document, Store and SystemDetector ports.
package colorswitch
