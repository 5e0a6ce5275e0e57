package drawable

import (
	"fmt"
	"slices"
	"strings"
)

// State identifies a widget state such as pressed or focused. In a
// ColorStateList spec a negated State means the state must be absent.
type State int

const (
	StatePressed State = iota + 1
	StateFocused
	StateSelected
	StateEnabled
	StateChecked
	StateActivated
	StateHovered
	StateWindowFocused
)

var stateNames = map[State]string{
	StatePressed:       "pressed",
	StateFocused:       "focused",
	StateSelected:      "selected",
	StateEnabled:       "enabled",
	StateChecked:       "checked",
	StateActivated:     "activated",
	StateHovered:       "hovered",
	StateWindowFocused: "window_focused",
}

func (s State) String() string {
	if s < 0 {
		return "!" + (-s).String()
	}
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState parses a state name such as "pressed" or "state_pressed".
func ParseState(name string) (State, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "state_")
	for s, n := range stateNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown state %q", name)
}

// stateSetMatches reports whether stateSet satisfies spec. An empty spec
// matches every state set.
func stateSetMatches(spec, stateSet []State) bool {
	for _, s := range spec {
		if s == 0 {
			break
		}
		if s > 0 {
			if !slices.Contains(stateSet, s) {
				return false
			}
		} else if slices.Contains(stateSet, -s) {
			return false
		}
	}
	return true
}

// ColorStateList maps state sets to colours. Specs are tried in order and
// the first match wins.
//
// A ColorStateList is immutable and may be shared freely.
type ColorStateList struct {
	specs        [][]State
	colors       []Color
	defaultColor Color
}

// NewColorStateList returns a list pairing each spec with a colour.
func NewColorStateList(specs [][]State, colors []Color) (*ColorStateList, error) {
	if len(specs) != len(colors) {
		return nil, fmt.Errorf("color state list: %d specs for %d colors", len(specs), len(colors))
	}
	l := &ColorStateList{
		specs:  make([][]State, len(specs)),
		colors: slices.Clone(colors),
	}
	for i, spec := range specs {
		l.specs[i] = slices.Clone(spec)
	}
	if len(colors) > 0 {
		l.defaultColor = colors[0]
		for i := len(specs) - 1; i > 0; i-- {
			if len(specs[i]) == 0 {
				l.defaultColor = colors[i]
				break
			}
		}
	}
	return l, nil
}

// ColorStateListOf returns a stateless list holding c.
func ColorStateListOf(c Color) *ColorStateList {
	return &ColorStateList{
		specs:        [][]State{{}},
		colors:       []Color{c},
		defaultColor: c,
	}
}

// ColorForState returns the colour of the first spec matching stateSet, or
// fallback when nothing matches.
func (l *ColorStateList) ColorForState(stateSet []State, fallback Color) Color {
	for i, spec := range l.specs {
		if stateSetMatches(spec, stateSet) {
			return l.colors[i]
		}
	}
	return fallback
}

// DefaultColor returns the colour used when no state applies.
func (l *ColorStateList) DefaultColor() Color { return l.defaultColor }

// IsStateful reports whether the colour depends on the state set.
func (l *ColorStateList) IsStateful() bool {
	for _, spec := range l.specs {
		if len(spec) > 0 {
			return true
		}
	}
	return false
}

// WithAlpha returns a copy with every colour's alpha replaced by a.
func (l *ColorStateList) WithAlpha(a uint8) *ColorStateList {
	c := &ColorStateList{
		specs:        l.specs,
		colors:       make([]Color, len(l.colors)),
		defaultColor: l.defaultColor.WithAlpha(a),
	}
	for i, col := range l.colors {
		c.colors[i] = col.WithAlpha(a)
	}
	return c
}

func (l *ColorStateList) String() string {
	var b strings.Builder
	b.WriteString("ColorStateList{")
	for i, spec := range l.specs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", spec, l.colors[i])
	}
	b.WriteString("}")
	return b.String()
}
