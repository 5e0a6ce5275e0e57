package drawable

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
)

// Theme is a named table of attribute values that theme references such as
// "?attr/colorAccent" resolve against. A value may itself be a reference to
// another attribute of the same theme.
type Theme struct {
	Name  string
	attrs map[string]string
}

// NewTheme returns a theme holding a copy of attrs.
func NewTheme(name string, attrs map[string]string) *Theme {
	t := &Theme{Name: name, attrs: make(map[string]string, len(attrs))}
	maps.Copy(t.attrs, attrs)
	return t
}

// Set stores an attribute value.
func (t *Theme) Set(name, value string) {
	if t.attrs == nil {
		t.attrs = make(map[string]string)
	}
	t.attrs[name] = value
}

// Lookup returns the raw value of an attribute.
func (t *Theme) Lookup(name string) (string, bool) {
	v, ok := t.attrs[name]
	return v, ok
}

// isThemeRef reports whether s refers to a theme attribute.
func isThemeRef(s string) bool {
	return strings.HasPrefix(s, "?")
}

// themeRefName strips the reference syntax, so "?attr/accent",
// "?android:attr/accent" and "?accent" all name "accent".
func themeRefName(ref string) string {
	name := strings.TrimPrefix(ref, "?")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Resolve follows ref through the theme until it reaches a concrete value.
// It returns an error wrapping ErrUnresolved when an attribute is missing
// and ErrThemeCycle when the chain loops.
func (t *Theme) Resolve(ref string) (string, error) {
	seen := make(map[string]bool)
	v := ref
	for isThemeRef(v) {
		name := themeRefName(v)
		if seen[name] {
			return "", fmt.Errorf("theme %q: %s: %w", t.Name, ref, ErrThemeCycle)
		}
		seen[name] = true
		next, ok := t.attrs[name]
		if !ok {
			return "", fmt.Errorf("theme %q: attribute %q: %w", t.Name, name, ErrUnresolved)
		}
		v = strings.TrimSpace(next)
	}
	return v, nil
}

// ParseTheme reads a theme from r. Each line holds "name: value"; blank
// lines and lines starting with # or // are skipped. The Name key sets the
// theme name.
//
//	Name: Dusk
//	colorAccent: #ffff4081
//	tintColor: ?colorAccent
func ParseTheme(r io.Reader) (*Theme, error) {
	t := NewTheme("", nil)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("theme line %d: missing ':' in %q", lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, fmt.Errorf("theme line %d: empty attribute name", lineNo)
		}

		if key == "Name" {
			t.Name = value
			continue
		}
		t.Set(key, value)
	}
	return t, scanner.Err()
}

// LoadTheme reads a theme file.
func LoadTheme(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ParseTheme(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
