// Command drawablerender inflates a shape drawable from markup and renders
// it to a PNG file.
//
// Besides the built-in attributes and <padding>, the markup may hold a
// <corners android:radius="8dp"/> child to round the shape, or an
// <arc android:startAngle="0" android:sweepAngle="270"/> child for a pie
// wedge, or <oval/>.
//
// Several state sets may be given with -state, separated by ';'. They are
// rendered concurrently, one PNG each, from drawables sharing one inflated
// state:
//
//	drawablerender -in button.xml -state "enabled;pressed,enabled" -out button.png
//
// writes button-0.png and button-1.png.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/drawable"
	"github.com/gogpu/drawable/ggcanvas"
	"github.com/gogpu/drawable/markup"
	"github.com/gogpu/gg"
)

func main() {
	var (
		input   = flag.String("in", "", "markup file (required)")
		asJSON  = flag.Bool("json", false, "input is the JSON markup form")
		theme   = flag.String("theme", "", "theme file for ?attr references")
		width   = flag.Int("width", 0, "image width (default: intrinsic width or 64)")
		height  = flag.Int("height", 0, "image height (default: intrinsic height or 64)")
		states  = flag.String("state", "", "comma-separated states, e.g. pressed,focused; separate several sets with ';'")
		density = flag.Float64("density", 1, "display density (dp to px scale)")
		output  = flag.String("out", "drawable.png", "output file")
		verbose = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		drawable.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	el, err := readMarkup(*input, *asJSON)
	if err != nil {
		log.Fatalf("Failed to read markup: %v", err)
	}

	opts := []drawable.InflateOption{
		drawable.WithDisplayMetrics(drawable.DisplayMetrics{
			Density:       *density,
			ScaledDensity: *density,
			XDPI:          160 * *density,
		}),
	}
	if *theme != "" {
		t, err := drawable.LoadTheme(*theme)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		opts = append(opts, drawable.WithTheme(t))
	}

	res := drawable.NewResources()
	res.SetDrawable("main", el, drawable.WithTagHandler(shapeTags))

	sets := [][]drawable.State{nil}
	if *states != "" {
		sets, err = parseStateSets(*states)
		if err != nil {
			log.Fatalf("Bad -state: %v", err)
		}
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, set := range sets {
		out := *output
		if len(sets) > 1 {
			ext := filepath.Ext(out)
			out = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(out, ext), i, ext)
		}
		g.Go(func() error {
			return render(res, opts, set, *width, *height, out)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// render draws one state set of the "main" drawable into a PNG file.
func render(res *drawable.Resources, opts []drawable.InflateOption, set []drawable.State, w, h int, out string) error {
	d, err := res.Drawable("main", opts...)
	if err != nil {
		return fmt.Errorf("failed to inflate: %w", err)
	}
	// Draw writes to the paint, which is shared with the other renders.
	if d, err = d.Mutate(); err != nil {
		return fmt.Errorf("failed to mutate: %w", err)
	}
	if len(set) > 0 {
		d.SetState(set)
	}

	if w <= 0 {
		w = orDefault(d.IntrinsicWidth(), 64)
	}
	if h <= 0 {
		h = orDefault(d.IntrinsicHeight(), 64)
	}

	dc := gg.NewContext(w, h)
	c := ggcanvas.New(dc)
	d.SetBounds(drawable.Rect{Right: w, Bottom: h})
	d.Draw(c)
	if err := c.Err(); err != nil {
		return fmt.Errorf("failed to draw %s: %w", out, err)
	}

	if err := dc.SavePNG(out); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	log.Printf("Drawable saved to %s (%dx%d, %v)\n", out, w, h, d.Opacity())
	return nil
}

func readMarkup(path string, asJSON bool) (*markup.Element, error) {
	if asJSON {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return markup.DecodeJSON(data)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return markup.Decode(f)
}

func parseStateSets(s string) ([][]drawable.State, error) {
	var sets [][]drawable.State
	for _, group := range strings.Split(s, ";") {
		var set []drawable.State
		for _, name := range strings.Split(group, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			st, err := drawable.ParseState(name)
			if err != nil {
				return nil, err
			}
			set = append(set, st)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// shapeTags picks the shape from <corners>, <arc> and <oval> children.
func shapeTags(d *drawable.ShapeDrawable, el *markup.Element, a *drawable.Attributes) (bool, error) {
	switch el.Name {
	case "oval":
		d.SetShape(drawable.NewOvalShape())
	case "corners":
		r, err := a.Dimension("radius", 0)
		if err != nil {
			return true, err
		}
		s, err := drawable.NewRoundRectShape([]float64{r, r, r, r, r, r, r, r}, nil, nil)
		if err != nil {
			return true, err
		}
		d.SetShape(s)
	case "arc":
		start, err := a.Float("startAngle", 0)
		if err != nil {
			return true, err
		}
		sweep, err := a.Float("sweepAngle", 360)
		if err != nil {
			return true, err
		}
		d.SetShape(drawable.NewArcShape(start, sweep))
	default:
		return false, nil
	}
	return true, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: drawablerender -in shape.xml [flags]\n")
		flag.PrintDefaults()
	}
}
