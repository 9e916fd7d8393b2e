package colorswitch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmylchreest/schemeswitch/internal/scheme"
)

// Default values for Options.
const (
	DefaultName              = "scheme-switch"
	DefaultLabel             = "Toggle Light or Dark Mode"
	DefaultStorageKey        = "preferred-color-scheme"
	DefaultRootAttribute     = "data-theme"
	DefaultVarPrefixProperty = "--var-prefix"

	// AttrScheme is the only attribute whose changes the switch reacts to.
	AttrScheme = "scheme"

	// RoleSwitch is the accessible role given to the control.
	RoleSwitch = "switch"
)

// ErrInvalidScheme is returned when the scheme attribute is set to a value
// other than "light" or "dark".
var ErrInvalidScheme = errors.New("invalid color scheme")

// Options configures a Switch.
type Options struct {
	Name              string // control name and style class
	Label             string
	StorageKey        string
	RootAttribute     string
	VarPrefixProperty string

	// Scheme is the initial value of the switch's "scheme" attribute.
	// Empty means the attribute is absent.
	Scheme string

	Logger *slog.Logger
}

// DefaultOptions returns Options with the default names.
func DefaultOptions() Options {
	return Options{
		Name:              DefaultName,
		Label:             DefaultLabel,
		StorageKey:        DefaultStorageKey,
		RootAttribute:     DefaultRootAttribute,
		VarPrefixProperty: DefaultVarPrefixProperty,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Name == "" {
		o.Name = d.Name
	}
	if o.Label == "" {
		o.Label = d.Label
	}
	if o.StorageKey == "" {
		o.StorageKey = d.StorageKey
	}
	if o.RootAttribute == "" {
		o.RootAttribute = d.RootAttribute
	}
	if o.VarPrefixProperty == "" {
		o.VarPrefixProperty = d.VarPrefixProperty
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// State is the attachment state of a Switch.
type State int

const (
	StateUnattached State = iota
	StateAttached
)

func (s State) String() string {
	if s == StateAttached {
		return "attached"
	}
	return "unattached"
}

// Source identifies where the initial scheme was resolved from.
type Source string

const (
	SourceStore     Source = "store"
	SourceAttribute Source = "attribute"
	SourceRoot      Source = "root"
	SourceSystem    Source = "system"
)

// projection selects the sinks a commit writes to.
type projection uint8

const (
	toRoot projection = 1 << iota
	toStore
	toAttribute
	toControl
)

// Switch is a light/dark color scheme toggle.
type Switch struct {
	opts   Options
	logger *slog.Logger

	doc    Document
	store  Store
	system SystemDetector

	scheme  scheme.Scheme
	source  Source
	attrs   map[string]string
	control Control
	state   State
	adopted bool
	lastErr error

	// committing suppresses change notifications raised by our own
	// SetChecked calls.
	committing bool
}

// New creates a Switch, resolves its scheme and applies it to the document
// root and to the switch's own scheme attribute. The persisted store is not
// written until the scheme is changed.
func New(doc Document, store Store, system SystemDetector, opts Options) (*Switch, error) {
	opts = opts.withDefaults()

	s := &Switch{
		opts:   opts,
		logger: opts.Logger,
		doc:    doc,
		store:  store,
		system: system,
		attrs:  make(map[string]string),
	}
	if opts.Scheme != "" {
		s.attrs[AttrScheme] = opts.Scheme
	}

	resolved, source, err := s.resolve()
	if err != nil {
		return nil, err
	}
	s.source = source

	if err := s.commit(resolved, toRoot|toAttribute); err != nil {
		return nil, err
	}

	s.logger.Debug("color scheme resolved", "scheme", resolved, "source", source)
	return s, nil
}

// resolve picks the first valid scheme from the store, the switch's
// attribute, the document root and the system preference, in that order.
func (s *Switch) resolve() (scheme.Scheme, Source, error) {
	stored, ok, err := s.store.Get(s.opts.StorageKey)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stored color scheme: %w", err)
	}
	if ok {
		if v, valid := scheme.Parse(stored); valid {
			return v, SourceStore, nil
		}
		s.logger.Debug("ignoring invalid stored color scheme", "value", stored)
	}

	if attr, ok := s.attrs[AttrScheme]; ok {
		if v, valid := scheme.Parse(attr); valid {
			return v, SourceAttribute, nil
		}
		s.logger.Debug("ignoring invalid scheme attribute", "value", attr)
	}

	if root, ok := s.doc.RootAttribute(s.opts.RootAttribute); ok {
		if v, valid := scheme.Parse(root); valid {
			return v, SourceRoot, nil
		}
		s.logger.Debug("ignoring invalid root attribute", "name", s.opts.RootAttribute, "value", root)
	}

	if s.system != nil && s.system.PrefersDark() {
		return scheme.Dark, SourceSystem, nil
	}
	return scheme.Light, SourceSystem, nil
}

// commit makes next the current scheme and writes it to the selected sinks.
func (s *Switch) commit(next scheme.Scheme, targets projection) error {
	s.committing = true
	defer func() { s.committing = false }()

	s.scheme = next

	if targets&toControl != 0 && s.control != nil {
		s.control.SetChecked(next.Checked())
	}
	if targets&toRoot != 0 {
		if err := s.doc.SetRootAttribute(s.opts.RootAttribute, next.String()); err != nil {
			return fmt.Errorf("failed to apply color scheme to document root: %w", err)
		}
	}
	if targets&toAttribute != 0 {
		s.attrs[AttrScheme] = next.String()
	}
	// The store goes last so a failed write leaves the in-memory copies
	// in agreement.
	if targets&toStore != 0 {
		if err := s.store.Set(s.opts.StorageKey, next.String()); err != nil {
			return fmt.Errorf("failed to persist color scheme: %w", err)
		}
	}
	return nil
}

// Attach places the control in the document and injects its styles.
// Only the first successful call has any effect, and the styles are
// adopted once even when creating the control fails and Attach is retried.
func (s *Switch) Attach() error {
	if s.state == StateAttached {
		return nil
	}

	prefix := unquote(s.doc.ComputedStyle(s.opts.VarPrefixProperty))
	if !s.adopted {
		if err := s.doc.AdoptStyleSheet(Stylesheet(prefix, s.opts.Name)); err != nil {
			return fmt.Errorf("failed to adopt switch styles: %w", err)
		}
		s.adopted = true
	}

	control, err := s.doc.NewControl(ControlSpec{
		Name:    s.opts.Name,
		Label:   s.opts.Label,
		Role:    RoleSwitch,
		Checked: s.scheme.Checked(),
	})
	if err != nil {
		return fmt.Errorf("failed to create switch control: %w", err)
	}

	control.OnChange(func(checked bool) {
		if s.committing {
			return
		}
		s.lastErr = s.Toggle(checked)
		if s.lastErr != nil {
			s.logger.Error("failed to change color scheme", "error", s.lastErr)
		}
	})

	s.control = control
	s.state = StateAttached
	s.logger.Debug("color scheme switch attached", "scheme", s.scheme, "prefix", prefix)
	return nil
}

// Toggle handles user input on the control: the scheme becomes dark when
// checked and light otherwise, and is written to the document root, the
// store and the scheme attribute.
func (s *Switch) Toggle(checked bool) error {
	if s.committing {
		return nil
	}
	next := scheme.FromChecked(checked)
	s.logger.Info("color scheme changed", "scheme", next, "trigger", "user")
	return s.commit(next, toRoot|toStore|toAttribute)
}

// Attribute returns the value of one of the switch's attributes.
func (s *Switch) Attribute(name string) (string, bool) {
	v, ok := s.attrs[name]
	return v, ok
}

// SetAttribute sets an attribute on the switch. Changing "scheme" from one
// value to a different one updates the control, the document root and the
// store. Setting it when it was absent only records the attribute.
// An invalid scheme is rejected and the attribute keeps its old value;
// when a sink fails the attribute keeps the new value, like the scheme.
func (s *Switch) SetAttribute(name, value string) error {
	old, hadOld := s.attrs[name]
	s.attrs[name] = value
	if name != AttrScheme {
		return nil
	}
	err := s.attributeChanged(old, hadOld, value, true)
	if errors.Is(err, ErrInvalidScheme) {
		if hadOld {
			s.attrs[name] = old
		} else {
			delete(s.attrs, name)
		}
	}
	return err
}

// RemoveAttribute removes an attribute from the switch. The scheme is not
// affected.
func (s *Switch) RemoveAttribute(name string) error {
	old, hadOld := s.attrs[name]
	delete(s.attrs, name)
	if name != AttrScheme {
		return nil
	}
	return s.attributeChanged(old, hadOld, "", false)
}

func (s *Switch) attributeChanged(oldValue string, hadOld bool, newValue string, hasNew bool) error {
	if !hadOld || !hasNew || oldValue == newValue {
		return nil
	}

	next, ok := scheme.Parse(newValue)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidScheme, newValue)
	}

	s.logger.Info("color scheme changed", "scheme", next, "trigger", "attribute")
	return s.commit(next, toControl|toRoot|toStore)
}

// LastError returns the error of the most recent change made through the
// control, or nil when it succeeded.
func (s *Switch) LastError() error {
	return s.lastErr
}

// Scheme returns the current scheme.
func (s *Switch) Scheme() scheme.Scheme {
	return s.scheme
}

// Source returns where the initial scheme was resolved from.
func (s *Switch) Source() Source {
	return s.source
}

// State returns the attachment state.
func (s *Switch) State() State {
	return s.state
}

// Control returns the attached control, or nil before Attach.
func (s *Switch) Control() Control {
	return s.control
}

// Options returns the effective options.
func (s *Switch) Options() Options {
	return s.opts
}
