package colorswitch

// Document is the page a Switch is hosted in.
type Document interface {
	// RootAttribute returns the value of an attribute on the document root.
	RootAttribute(name string) (string, bool)
	// SetRootAttribute sets an attribute on the document root.
	SetRootAttribute(name, value string) error
	// ComputedStyle returns the computed value of a style property on the
	// document root, or "" when it is not defined.
	ComputedStyle(property string) string
	// AdoptStyleSheet adds a style sheet to the document.
	AdoptStyleSheet(css string) error
	// NewControl creates a binary input control and places it in the document.
	NewControl(spec ControlSpec) (Control, error)
}

// ControlSpec configures the control created on attachment.
type ControlSpec struct {
	Name    string
	Label   string // accessible label
	Role    string
	Checked bool
}

// Control is a binary input such as a checkbox or a switch.
type Control interface {
	Checked() bool
	// SetChecked changes the state without being reported as user input.
	SetChecked(checked bool)
	// OnChange registers the handler invoked when the user flips the control.
	OnChange(handler func(checked bool))
}

// Store is durable key-value storage for the preference.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// SystemDetector reports the system-level color scheme preference.
type SystemDetector interface {
	PrefersDark() bool
}

// SystemFunc adapts a function to a SystemDetector.
type SystemFunc func() bool

// PrefersDark calls f.
func (f SystemFunc) PrefersDark() bool {
	return f()
}
