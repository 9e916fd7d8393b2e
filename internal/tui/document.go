package tui

import (
	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
)

// Document is the terminal page hosting the switch. Root attributes select
// the palette used to render the view.
type Document struct {
	attrs     map[string]string
	sheets    []string
	varPrefix string
	control   *Control
}

// NewDocument creates a document with the given initial root attributes.
func NewDocument(varPrefix string, attrs map[string]string) *Document {
	d := &Document{
		attrs:     make(map[string]string),
		varPrefix: varPrefix,
	}
	for k, v := range attrs {
		d.attrs[k] = v
	}
	return d
}

func (d *Document) RootAttribute(name string) (string, bool) {
	v, ok := d.attrs[name]
	return v, ok
}

func (d *Document) SetRootAttribute(name, value string) error {
	d.attrs[name] = value
	return nil
}

func (d *Document) ComputedStyle(property string) string {
	if property == colorswitch.DefaultVarPrefixProperty {
		return d.varPrefix
	}
	return ""
}

// AdoptStyleSheet records the sheet; terminals cannot apply CSS.
func (d *Document) AdoptStyleSheet(css string) error {
	d.sheets = append(d.sheets, css)
	return nil
}

// StyleSheets returns the adopted style sheets.
func (d *Document) StyleSheets() []string {
	return d.sheets
}

func (d *Document) NewControl(spec colorswitch.ControlSpec) (colorswitch.Control, error) {
	d.control = &Control{spec: spec, checked: spec.Checked}
	return d.control, nil
}

// Control returns the control placed in the document, or nil.
func (d *Document) Control() *Control {
	return d.control
}

// Control is a switch rendered in the terminal.
type Control struct {
	spec     colorswitch.ControlSpec
	checked  bool
	handlers []func(bool)
}

func (c *Control) Checked() bool {
	return c.checked
}

func (c *Control) SetChecked(checked bool) {
	c.checked = checked
}

func (c *Control) OnChange(handler func(bool)) {
	c.handlers = append(c.handlers, handler)
}

// Flip toggles the control as user input.
func (c *Control) Flip() {
	c.checked = !c.checked
	for _, h := range c.handlers {
		h(c.checked)
	}
}

// Label returns the accessible label.
func (c *Control) Label() string {
	return c.spec.Label
}
