// Package scheme defines the binary light/dark color scheme preference.
package scheme

// Scheme is a resolved display-mode preference.
type Scheme string

const (
	Light Scheme = "light"
	Dark  Scheme = "dark"
)

// Parse returns the scheme named by s and whether s is a valid scheme.
// Anything other than "light" or "dark" is rejected.
func Parse(s string) (Scheme, bool) {
	switch Scheme(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// FromChecked maps the checked state of a binary control to a scheme.
func FromChecked(checked bool) Scheme {
	if checked {
		return Dark
	}
	return Light
}

// Checked reports the control state that represents s.
func (s Scheme) Checked() bool {
	return s == Dark
}

// Toggle returns the opposite scheme.
func (s Scheme) Toggle() Scheme {
	if s == Dark {
		return Light
	}
	return Dark
}

func (s Scheme) String() string {
	return string(s)
}
