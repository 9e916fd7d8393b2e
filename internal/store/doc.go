// Package store persists the color scheme preference under the XDG data
// directory.
package store
