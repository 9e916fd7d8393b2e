package colorswitch

import (
	"fmt"
	"strings"
)

// DefaultVarPrefix is used when the document does not define a prefix for
// its style variables.
const DefaultVarPrefix = "--"

// Stylesheet returns the rules mapping the checked and unchecked states of
// the control (selected by class name) to the dark and light icons.
// The icons and the foreground color are read from style variables named
// <prefix>icon-color-scheme-dark, <prefix>icon-color-scheme-light and
// <prefix>primary-inverse.
func Stylesheet(prefix, name string) string {
	if prefix == "" {
		prefix = DefaultVarPrefix
	}
	return fmt.Sprintf(`switch.%[1]s slider {
	background-position: center;
	background-repeat: no-repeat;
	background-size: contain;
}

switch.%[1]s:checked slider {
	background-image: var(%[2]sicon-color-scheme-dark);
	background-color: var(%[2]sprimary-inverse);
}

switch.%[1]s:not(:checked) slider {
	background-image: var(%[2]sicon-color-scheme-light);
	background-color: var(%[2]sprimary-inverse);
}
`, name, prefix)
}

// Variables returns the names of the style variables Stylesheet reads for
// prefix.
func Variables(prefix string) []string {
	if prefix == "" {
		prefix = DefaultVarPrefix
	}
	return []string{
		prefix + "icon-color-scheme-dark",
		prefix + "icon-color-scheme-light",
		prefix + "primary-inverse",
	}
}

// unquote strips one pair of surrounding double quotes, as computed string
// values of custom properties keep them.
func unquote(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
