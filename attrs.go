package drawable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/drawable/markup"
)

// DisplayMetrics describes the output device for dimension conversion.
type DisplayMetrics struct {
	// Density is the scale from dp to pixels (1 at 160 dpi).
	Density float64
	// ScaledDensity is Density times the user's font scale, for sp.
	ScaledDensity float64
	// XDPI is the physical pixels per inch, for in, mm and pt.
	XDPI float64
}

// DefaultDisplayMetrics returns metrics for a 160 dpi screen.
func DefaultDisplayMetrics() DisplayMetrics {
	return DisplayMetrics{Density: 1, ScaledDensity: 1, XDPI: 160}
}

// ParseDimension converts a dimension such as "12dp" or "3.5mm" to pixels.
// A bare number is taken as pixels.
func (m DisplayMetrics) ParseDimension(s string) (float64, error) {
	px, _, err := m.parseDimension(s)
	return px, err
}

// parseDimension also returns the configuration axes the value depends on.
func (m DisplayMetrics) parseDimension(s string) (float64, Config, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 && (s[i-1] >= 'a' && s[i-1] <= 'z') {
		i--
	}
	num, unit := s[:i], s[i:]
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad dimension %q", s)
	}
	switch unit {
	case "", "px":
		return v, 0, nil
	case "dp", "dip":
		return v * m.Density, ConfigDensity, nil
	case "sp":
		return v * m.ScaledDensity, ConfigDensity | ConfigFontScale, nil
	case "pt":
		return v * m.XDPI / 72, ConfigDensity, nil
	case "in":
		return v * m.XDPI, ConfigDensity, nil
	case "mm":
		return v * m.XDPI / 25.4, ConfigDensity, nil
	}
	return 0, 0, fmt.Errorf("bad dimension unit %q in %q", unit, s)
}

// ThemeAttr is an attribute whose value is a theme reference that could not
// be resolved when it was read.
type ThemeAttr struct {
	Name string
	Ref  string
}

// Attributes is the typed view of an element's attributes used during
// inflation. Theme references (?attr/name) are resolved through the theme;
// those it cannot resolve are recorded and read as absent, so the caller's
// default stays in effect until ApplyTheme.
type Attributes struct {
	attrs     []markup.Attr
	theme     *Theme
	resources *Resources
	metrics   DisplayMetrics
	configs   Config
	deferred  []ThemeAttr
}

func newAttributes(attrs []markup.Attr, o *inflateOptions) *Attributes {
	return &Attributes{
		attrs:     attrs,
		theme:     o.theme,
		resources: o.resources,
		metrics:   o.metrics,
	}
}

// themeAttributes builds attributes from deferred references.
func themeAttributes(refs []ThemeAttr, t *Theme, o *inflateOptions) *Attributes {
	attrs := make([]markup.Attr, len(refs))
	for i, r := range refs {
		attrs[i] = markup.Attr{Name: r.Name, Value: r.Ref}
	}
	a := newAttributes(attrs, o)
	a.theme = t
	return a
}

// ChangingConfigurations returns the configuration axes the values read so
// far depend on.
func (a *Attributes) ChangingConfigurations() Config { return a.configs }

// ThemeAttrs returns the references deferred so far.
func (a *Attributes) ThemeAttrs() []ThemeAttr { return a.deferred }

// Has reports whether the attribute is present, resolved or not.
func (a *Attributes) Has(name string) bool {
	_, ok := a.raw(name)
	return ok
}

func (a *Attributes) raw(name string) (string, bool) {
	for _, at := range a.attrs {
		if at.Name == name {
			return strings.TrimSpace(at.Value), true
		}
	}
	return "", false
}

// value returns the concrete value of name. ok is false if the attribute is
// absent or its theme reference was deferred.
func (a *Attributes) value(name string) (v string, ok bool, err error) {
	v, ok = a.raw(name)
	if !ok || !isThemeRef(v) {
		return v, ok, nil
	}
	ref := v
	if a.theme == nil {
		a.deferAttr(name, ref)
		return "", false, nil
	}
	v, err = a.theme.Resolve(ref)
	switch {
	case errors.Is(err, ErrUnresolved):
		a.deferAttr(name, ref)
		return "", false, nil
	case err != nil:
		return "", false, &AttributeError{Attr: name, Value: ref, Err: err}
	}
	return v, true, nil
}

func (a *Attributes) deferAttr(name, ref string) {
	Logger().Debug("drawable: deferring theme attribute", "attr", name, "ref", ref)
	a.deferred = append(a.deferred, ThemeAttr{Name: name, Ref: ref})
}

// Color returns the colour value of name, or def if absent. "@color/"
// references yield the default colour of the referenced entry.
func (a *Attributes) Color(name string, def Color) (Color, error) {
	v, ok, err := a.value(name)
	if !ok || err != nil {
		return def, err
	}
	if isResourceRef(v) {
		l, err := a.resources.resolveColorRef(v)
		if err != nil {
			return def, &AttributeError{Attr: name, Value: v, Err: err}
		}
		return l.DefaultColor(), nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return def, &AttributeError{Attr: name, Value: v, Err: err}
	}
	return c, nil
}

// ColorStateList returns the colour state list of name, or nil if absent.
// A plain colour becomes a stateless list.
func (a *Attributes) ColorStateList(name string) (*ColorStateList, error) {
	v, ok, err := a.value(name)
	if !ok || err != nil {
		return nil, err
	}
	if isResourceRef(v) {
		l, err := a.resources.resolveColorRef(v)
		if err != nil {
			return nil, &AttributeError{Attr: name, Value: v, Err: err}
		}
		return l, nil
	}
	c, err := ParseColor(v)
	if err != nil {
		return nil, &AttributeError{Attr: name, Value: v, Err: err}
	}
	return ColorStateListOf(c), nil
}

// Bool returns the boolean value of name, or def if absent.
func (a *Attributes) Bool(name string, def bool) (bool, error) {
	v, ok, err := a.value(name)
	if !ok || err != nil {
		return def, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, &AttributeError{Attr: name, Value: v, Err: err}
	}
	return b, nil
}

// Int returns the integer value of name, or def if absent. Hexadecimal
// values with a 0x prefix are accepted.
func (a *Attributes) Int(name string, def int) (int, error) {
	v, ok, err := a.value(name)
	if !ok || err != nil {
		return def, err
	}
	n, err := strconv.ParseInt(v, 0, 64)
	if err != nil {
		return def, &AttributeError{Attr: name, Value: v, Err: err}
	}
	return int(n), nil
}

// Float returns the floating point value of name, or def if absent.
func (a *Attributes) Float(name string, def float64) (float64, error) {
	v, ok, err := a.value(name)
	if !ok || err != nil {
		return def, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, &AttributeError{Attr: name, Value: v, Err: err}
	}
	return f, nil
}

// Dimension returns the dimension of name in pixels, or def if absent.
func (a *Attributes) Dimension(name string, def float64) (float64, error) {
	v, ok, err := a.value(name)
	if !ok || err != nil {
		return def, err
	}
	px, cfg, err := a.metrics.parseDimension(v)
	if err != nil {
		return def, &AttributeError{Attr: name, Value: v, Err: err}
	}
	a.configs |= cfg
	return px, nil
}

// DimensionPixelOffset returns the dimension of name truncated to whole
// pixels, or def if absent.
func (a *Attributes) DimensionPixelOffset(name string, def int) (int, error) {
	px, err := a.Dimension(name, float64(def))
	return int(px), err
}

// BlendMode returns the blend mode of name, or def if absent.
func (a *Attributes) BlendMode(name string, def BlendMode) (BlendMode, error) {
	v, ok, err := a.value(name)
	if !ok || err != nil {
		return def, err
	}
	m, err := ParseBlendMode(v)
	if err != nil {
		return def, &AttributeError{Attr: name, Value: v, Err: err}
	}
	return m, nil
}
