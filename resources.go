package drawable

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/drawable/internal/cache"
	"github.com/gogpu/drawable/markup"
)

// stateCacheSize bounds the number of inflated drawable states kept per
// Resources.
const stateCacheSize = 64

// Resources is a table of named colours, colour state lists and drawable
// markup that "@color/name" references and Drawable lookups resolve
// against.
//
// Drawables loaded by name share their constant state: the markup is
// inflated once per set of display metrics and every later lookup returns a
// new drawable over the cached state. Call Mutate on a drawable before
// changing it on its own.
//
// Resources may be used from multiple goroutines once populated.
type Resources struct {
	mu        sync.RWMutex
	colors    map[string]*ColorStateList
	drawables map[string]drawableDef
	states    *cache.Cache[stateKey, ConstantState]
}

// drawableDef is drawable markup plus the options it is inflated with.
type drawableDef struct {
	el   *markup.Element
	opts []Option
}

type stateKey struct {
	name    string
	metrics DisplayMetrics
}

// CacheStats reports how Resources.Drawable lookups were served.
type CacheStats struct {
	// States is the number of inflated states currently cached.
	States int
	// Inflations counts lookups that had to inflate markup.
	Inflations uint64
	// Hits counts lookups served from a cached state.
	Hits      uint64
	Evictions uint64
}

// NewResources returns an empty table.
func NewResources() *Resources {
	return &Resources{
		colors:    make(map[string]*ColorStateList),
		drawables: make(map[string]drawableDef),
		states:    cache.New[stateKey, ConstantState](stateCacheSize),
	}
}

// SetColor stores a plain colour under name.
func (r *Resources) SetColor(name string, c Color) {
	r.SetColorStateList(name, ColorStateListOf(c))
}

// SetColorStateList stores a colour state list under name. Cached drawable
// states are dropped since they may refer to the old value.
func (r *Resources) SetColorStateList(name string, l *ColorStateList) {
	r.mu.Lock()
	r.colors[name] = l
	r.mu.Unlock()
	r.states.Clear()
}

// ColorStateList returns the list stored under name.
func (r *Resources) ColorStateList(name string) (*ColorStateList, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.colors[name]
	return l, ok
}

// SetDrawable stores drawable markup under name, replacing any cached state
// inflated from an earlier definition. opts are applied to the drawable the
// markup is inflated into; WithShape, WithDrawFunc and WithTagHandler given
// here end up in the shared state.
//
// Example:
//
//	res.SetDrawable("badge", el, drawable.WithTagHandler(cornerTags))
func (r *Resources) SetDrawable(name string, el *markup.Element, opts ...Option) {
	r.mu.Lock()
	r.drawables[name] = drawableDef{el: el, opts: slices.Clone(opts)}
	r.mu.Unlock()
	r.states.Clear()
}

// Drawable returns a new drawable for the markup stored under name. The
// first lookup for a given set of display metrics inflates the markup;
// later ones share its constant state. A theme passed with WithTheme is
// applied to a private copy, so the cached state stays unthemed.
//
// Options passed with WithDrawableOptions apply to the returned drawable
// only: its callback and tag handler. WithShape and WithDrawFunc would
// change the shared state and fail with ErrSharedOption; give them to
// SetDrawable instead.
func (r *Resources) Drawable(name string, opts ...InflateOption) (Drawable, error) {
	o := defaultInflateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var own options
	for _, opt := range o.options {
		opt(&own)
	}
	if own.shape != nil || own.drawFunc != nil {
		return nil, fmt.Errorf("drawable %q: %w", name, ErrSharedOption)
	}

	key := stateKey{name: name, metrics: o.metrics}
	cs, err := r.states.GetOrCreate(key, func() (ConstantState, error) {
		r.mu.RLock()
		def, ok := r.drawables[name]
		r.mu.RUnlock()
		if !ok {
			return nil, ErrUnresolved
		}
		Logger().Debug("drawable: inflating resource", "name", name)
		d, err := Inflate(def.el,
			WithDisplayMetrics(o.metrics),
			WithResources(r),
			WithDrawableOptions(def.opts...))
		if err != nil {
			return nil, err
		}
		return d.ConstantState(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("drawable %q: %w", name, err)
	}

	var d Drawable
	if o.theme != nil && cs.CanApplyTheme() {
		if d, err = cs.NewThemedDrawable(o.theme); err != nil {
			return nil, err
		}
	} else {
		d = cs.NewDrawable()
	}
	if sd, ok := d.(*ShapeDrawable); ok && own.tagHandler != nil {
		sd.tagHandler = own.tagHandler
	}
	if own.callback != nil {
		d.SetCallback(own.callback)
	}
	return d, nil
}

// CacheStats returns counters for the drawable state cache.
func (r *Resources) CacheStats() CacheStats {
	s := r.states.Stats()
	return CacheStats{
		States:     s.Len,
		Inflations: s.Misses,
		Hits:       s.Hits,
		Evictions:  s.Evictions,
	}
}

// resolveColorRef looks up a "@color/name" reference.
func (r *Resources) resolveColorRef(ref string) (*ColorStateList, error) {
	name, ok := strings.CutPrefix(ref, "@color/")
	if !ok {
		name, ok = strings.CutPrefix(ref, "@android:color/")
	}
	if !ok {
		return nil, fmt.Errorf("%q is not a colour reference", ref)
	}
	l, found := r.ColorStateList(name)
	if !found {
		return nil, fmt.Errorf("color %q: %w", name, ErrUnresolved)
	}
	return l, nil
}

func isResourceRef(s string) bool {
	return strings.HasPrefix(s, "@")
}
