package gtkhost

import (
	"log/slog"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
	"github.com/jmylchreest/schemeswitch/internal/scheme"
)

// PropertySource looks up the value of a custom style property.
type PropertySource interface {
	Property(name string) (string, bool)
}

// Document adapts a GTK window to colorswitch.Document.
type Document struct {
	logger *slog.Logger

	window    *gtk.Window
	container *gtk.Box

	attrs      map[string]string
	schemeAttr string
	props      PropertySource
	varPrefix  string
	styles     *adw.StyleManager
}

// Options configures a Document.
type Options struct {
	// SchemeAttribute is the root attribute that also drives the
	// libadwaita color scheme.
	SchemeAttribute string
	// Properties supplies the computed values of custom properties,
	// usually the loaded theme. May be nil.
	Properties PropertySource
	// VarPrefix is reported for --var-prefix when Properties has no value.
	VarPrefix string
	// Attributes are set on the root before the switch is created.
	Attributes map[string]string
	Logger     *slog.Logger
}

// NewDocument wraps window; controls are appended to container.
func NewDocument(window *gtk.Window, container *gtk.Box, opts Options) *Document {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SchemeAttribute == "" {
		opts.SchemeAttribute = colorswitch.DefaultRootAttribute
	}

	d := &Document{
		logger:     opts.Logger,
		window:     window,
		container:  container,
		attrs:      make(map[string]string),
		schemeAttr: opts.SchemeAttribute,
		props:      opts.Properties,
		varPrefix:  opts.VarPrefix,
		styles:     adw.StyleManagerGetDefault(),
	}
	for name, value := range opts.Attributes {
		d.attrs[name] = value
		d.window.AddCSSClass(name + "-" + value)
	}
	return d
}

// RootAttribute returns a root attribute.
func (d *Document) RootAttribute(name string) (string, bool) {
	v, ok := d.attrs[name]
	return v, ok
}

// SetRootAttribute swaps the window's CSS class for the attribute and, for
// the scheme attribute, forces the matching libadwaita color scheme.
func (d *Document) SetRootAttribute(name, value string) error {
	if old, ok := d.attrs[name]; ok {
		d.window.RemoveCSSClass(name + "-" + old)
	}
	d.attrs[name] = value
	d.window.AddCSSClass(name + "-" + value)

	if name == d.schemeAttr {
		if s, ok := scheme.Parse(value); ok {
			d.styles.SetColorScheme(colorSchemeFor(s))
		}
	}
	d.logger.Debug("root attribute set", "name", name, "value", value)
	return nil
}

func colorSchemeFor(s scheme.Scheme) adw.ColorScheme {
	if s == scheme.Dark {
		return adw.ColorSchemeForceDark
	}
	return adw.ColorSchemeForceLight
}

// ComputedStyle returns the value the stylesheet declares for property.
// GTK does not expose computed custom properties, so the declarations are
// read from the property source instead.
func (d *Document) ComputedStyle(property string) string {
	if d.props != nil {
		if v, ok := d.props.Property(property); ok {
			return v
		}
	}
	if property == colorswitch.DefaultVarPrefixProperty {
		return d.varPrefix
	}
	return ""
}

// AdoptStyleSheet installs css on the window's display above the theme.
func (d *Document) AdoptStyleSheet(css string) error {
	provider := gtk.NewCSSProvider()
	provider.LoadFromString(css)
	gtk.StyleContextAddProviderForDisplay(d.window.Display(), provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION+1)
	return nil
}

// NewControl appends a labelled gtk.Switch to the container. gtk.Switch
// already carries the accessible switch role; the visible label is bound as
// its accessible name.
func (d *Document) NewControl(spec colorswitch.ControlSpec) (colorswitch.Control, error) {
	label := gtk.NewLabel(spec.Label)
	label.AddCSSClass(spec.Name + "-label")

	sw := gtk.NewSwitch()
	sw.SetName(spec.Name)
	sw.AddCSSClass(spec.Name)
	sw.SetTooltipText(spec.Label)
	sw.SetActive(spec.Checked)

	// Also sets the labelled-by accessible relation on the switch.
	label.SetMnemonicWidget(sw)

	d.container.Append(label)
	d.container.Append(sw)

	c := &switchControl{sw: sw, label: label}
	sw.ConnectStateSet(func(state bool) bool {
		if !c.silent {
			for _, handler := range c.handlers {
				handler(state)
			}
		}
		// Let the default handler move the switch.
		return false
	})
	return c, nil
}

// PrefersDark reports the system preference as seen by libadwaita. Only
// meaningful before the color scheme has been forced.
func (d *Document) PrefersDark() bool {
	return d.styles.Dark()
}

type switchControl struct {
	sw       *gtk.Switch
	label    *gtk.Label
	handlers []func(bool)
	silent   bool
}

func (c *switchControl) Checked() bool {
	return c.sw.Active()
}

// SetChecked moves the switch without notifying the change handlers.
func (c *switchControl) SetChecked(checked bool) {
	c.silent = true
	defer func() { c.silent = false }()
	c.sw.SetActive(checked)
}

func (c *switchControl) OnChange(handler func(bool)) {
	c.handlers = append(c.handlers, handler)
}
