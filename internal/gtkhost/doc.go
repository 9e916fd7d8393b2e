// Package gtkhost hosts the color scheme switch in a GTK4/libadwaita window.
//
// The window is the document root: root attributes are reflected as CSS
// classes named "<attribute>-<value>" on the window, and the scheme
// attribute additionally forces the libadwaita color scheme.
package gtkhost
