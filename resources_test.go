package drawable

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/gogpu/drawable/markup"
)

func TestResourcesColors(t *testing.T) {
	r := NewResources()
	r.SetColor("accent", 0xff00ff00)

	l, err := r.resolveColorRef("@color/accent")
	if err != nil || l.DefaultColor() != 0xff00ff00 {
		t.Errorf("resolveColorRef(@color/accent) = %v, %v", l, err)
	}
	if _, err := r.resolveColorRef("@android:color/accent"); err != nil {
		t.Errorf("resolveColorRef(@android:color/accent): %v", err)
	}
	if _, err := r.resolveColorRef("@color/missing"); !errors.Is(err, ErrUnresolved) {
		t.Errorf("missing colour error = %v, want ErrUnresolved", err)
	}
	if _, err := r.resolveColorRef("@dimen/accent"); err == nil {
		t.Error("resolveColorRef(@dimen/accent) succeeded")
	}

	var nilRes *Resources
	if _, ok := nilRes.ColorStateList("accent"); ok {
		t.Error("nil Resources found a colour")
	}
}

func TestResourcesDrawableSharesState(t *testing.T) {
	r := NewResources()
	r.SetColor("accent", 0xffff0000)
	r.SetDrawable("button", mustDecode(t, `<shape color="@color/accent" width="4dp"/>`))

	d1, err := r.Drawable("button")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := r.Drawable("button")
	if err != nil {
		t.Fatal(err)
	}
	s1, s2 := d1.(*ShapeDrawable), d2.(*ShapeDrawable)
	if s1 == s2 {
		t.Fatal("Drawable returned the same instance twice")
	}
	if s1.ConstantState() != s2.ConstantState() {
		t.Error("drawables of one resource do not share their state")
	}
	if s1.Paint().Color() != 0xffff0000 || s1.IntrinsicWidth() != 4 {
		t.Errorf("inflated color %v width %d, want #ffff0000 and 4", s1.Paint().Color(), s1.IntrinsicWidth())
	}

	if _, err := s2.Mutate(); err != nil {
		t.Fatal(err)
	}
	s2.Paint().SetColor(0xff0000ff)
	d3, _ := r.Drawable("button")
	if got := d3.(*ShapeDrawable).Paint().Color(); got != 0xffff0000 {
		t.Errorf("mutated drawable leaked colour %v into the cache", got)
	}

	dense, err := r.Drawable("button", WithDisplayMetrics(DisplayMetrics{Density: 2, ScaledDensity: 2, XDPI: 320}))
	if err != nil {
		t.Fatal(err)
	}
	if dense.IntrinsicWidth() != 8 {
		t.Errorf("width at density 2 = %d, want 8", dense.IntrinsicWidth())
	}
	if got := r.CacheStats().States; got != 2 {
		t.Errorf("cached states = %d, want 2", got)
	}
}

func TestResourcesDrawableTheme(t *testing.T) {
	r := NewResources()
	r.SetDrawable("chip", mustDecode(t, `<shape color="?accent"/>`))
	theme := NewTheme("Dusk", map[string]string{"accent": "#ff00ff00"})

	themed, err := r.Drawable("chip", WithTheme(theme))
	if err != nil {
		t.Fatal(err)
	}
	if got := themed.(*ShapeDrawable).Paint().Color(); got != 0xff00ff00 {
		t.Errorf("themed color = %v, want #ff00ff00", got)
	}

	plain, err := r.Drawable("chip")
	if err != nil {
		t.Fatal(err)
	}
	if got := plain.(*ShapeDrawable).Paint().Color(); got != Black {
		t.Errorf("unthemed color = %v, want black: theme leaked into the cache", got)
	}
	if !plain.ConstantState().CanApplyTheme() {
		t.Error("cached state lost its theme references")
	}
}

func TestResourcesDrawableErrors(t *testing.T) {
	r := NewResources()
	if _, err := r.Drawable("nope"); !errors.Is(err, ErrUnresolved) {
		t.Errorf("missing drawable error = %v, want ErrUnresolved", err)
	}

	r.SetDrawable("bad", mustDecode(t, `<shape color="bogus"/>`))
	_, err := r.Drawable("bad")
	var ae *AttributeError
	if !errors.As(err, &ae) {
		t.Errorf("bad drawable error = %v, want *AttributeError", err)
	}
	if r.CacheStats().States != 0 {
		t.Error("failed inflation was cached")
	}
}

func TestResourcesRedefineDropsCache(t *testing.T) {
	r := NewResources()
	r.SetDrawable("x", mustDecode(t, `<shape width="1"/>`))
	if d, _ := r.Drawable("x"); d.IntrinsicWidth() != 1 {
		t.Fatalf("width = %d, want 1", d.IntrinsicWidth())
	}
	r.SetDrawable("x", mustDecode(t, `<shape width="2"/>`))
	if d, _ := r.Drawable("x"); d.IntrinsicWidth() != 2 {
		t.Errorf("width after redefinition = %d, want 2", d.IntrinsicWidth())
	}
}

func TestResourcesConcurrentLookup(t *testing.T) {
	r := NewResources()
	r.SetDrawable("x", mustDecode(t, `<shape width="3"/>`))

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := r.Drawable("x")
			if err == nil && d.IntrinsicWidth() != 3 {
				err = errors.New("wrong width")
			}
			errs[i] = err
		}()
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		t.Error(err)
	}
	if s := r.CacheStats(); s.Inflations != 1 || s.Hits != 7 {
		t.Errorf("inflations/hits = %d/%d, want 1/7", s.Inflations, s.Hits)
	}
}

type countingCallback struct{ n int }

func (c *countingCallback) InvalidateDrawable(Drawable) { c.n++ }

func TestResourcesDrawablePerInstanceOptions(t *testing.T) {
	r := NewResources()
	r.SetDrawable("x", mustDecode(t, `<shape color="#ff112233"/>`))

	for i := range 2 {
		var cb countingCallback
		d, err := r.Drawable("x", WithDrawableOptions(WithCallback(&cb)))
		if err != nil {
			t.Fatal(err)
		}
		if cb.n != 0 {
			t.Errorf("lookup %d: %d invalidations before use, want 0", i, cb.n)
		}
		d.SetAlpha(10 + i)
		if cb.n != 1 {
			t.Errorf("lookup %d: invalidations after SetAlpha = %d, want 1", i, cb.n)
		}
	}

	handled := false
	h := func(*ShapeDrawable, *markup.Element, *Attributes) (bool, error) {
		handled = true
		return true, nil
	}
	d, err := r.Drawable("x", WithDrawableOptions(WithTagHandler(h)))
	if err != nil {
		t.Fatal(err)
	}
	if d, err = d.Mutate(); err != nil {
		t.Fatal(err)
	}
	if err := d.(*ShapeDrawable).Inflate(mustDecode(t, `<shape><extra/></shape>`)); err != nil {
		t.Fatal(err)
	}
	if !handled {
		t.Error("tag handler of the lookup was not installed on the drawable")
	}
	plain, _ := r.Drawable("x")
	if plain.(*ShapeDrawable).tagHandler != nil {
		t.Error("tag handler leaked to another lookup")
	}
}

func TestResourcesDrawableSharedOptions(t *testing.T) {
	r := NewResources()
	r.SetDrawable("x", mustDecode(t, `<shape/>`))

	for _, opt := range []Option{
		WithShape(NewOvalShape()),
		WithDrawFunc(func(Shape, Canvas, *Paint) {}),
	} {
		if _, err := r.Drawable("x", WithDrawableOptions(opt)); !errors.Is(err, ErrSharedOption) {
			t.Errorf("Drawable with a state option: err = %v, want ErrSharedOption", err)
		}
	}
	if s := r.CacheStats(); s.Inflations != 0 {
		t.Errorf("rejected lookups inflated %d states", s.Inflations)
	}

	tags := func(d *ShapeDrawable, el *markup.Element, _ *Attributes) (bool, error) {
		if el.Name != "oval" {
			return false, nil
		}
		d.SetShape(NewOvalShape())
		return true, nil
	}
	r.SetDrawable("dot", mustDecode(t, `<shape><oval/></shape>`), WithTagHandler(tags))
	d, err := r.Drawable("dot")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(*ShapeDrawable).Shape().(*OvalShape); !ok {
		t.Errorf("shape = %T, want *OvalShape from the definition's tag handler", d.(*ShapeDrawable).Shape())
	}
}

func TestResourcesRedefineWhileLoading(t *testing.T) {
	r := NewResources()
	r.SetDrawable("x", mustDecode(t, `<shape width="1"/>`))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_, _ = r.Drawable("x")
			}
		}()
	}
	for i := range 50 {
		r.SetDrawable("x", mustDecode(t, `<shape width="`+strconv.Itoa(i%5+1)+`"/>`))
	}
	r.SetDrawable("x", mustDecode(t, `<shape width="9"/>`))
	wg.Wait()

	d, err := r.Drawable("x")
	if err != nil {
		t.Fatal(err)
	}
	if d.IntrinsicWidth() != 9 {
		t.Errorf("width = %d, want 9 from the last definition", d.IntrinsicWidth())
	}
}
