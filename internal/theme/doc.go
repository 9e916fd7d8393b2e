// Package theme loads the CSS themes of the GTK host. Bundled themes are
// embedded, user themes are read from ~/.config/schemeswitch/themes/ and
// can be hot-reloaded. The icon variables referenced by the color scheme
// switch live in the generated themes/_icons.css partial.
package theme

//go:generate go run ../../cmd/iconinline --source ../../assets/icons --output themes/_icons.css
