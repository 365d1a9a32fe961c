// Package demo runs the fixed lvgeo demonstration: unit shapes, rejected
// dimensions and two scene totals.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvgeo/internal/logging"
	"github.com/katalvlaran/lvgeo/scene"
	"github.com/katalvlaran/lvgeo/shape"
)

// ErrPanic marks a panic recovered by Guard.
var ErrPanic = errors.New("demo: panic")

// Demo writes results to one stream and diagnostics to another. Each
// writer is paired with styles rendered for it, so both are fixed at New.
type Demo struct {
	out       io.Writer
	diag      io.Writer
	log       logging.Logger
	outStyle  styles
	diagStyle styles
}

// New returns a Demo writing to out and diag. A nil log discards records.
func New(out, diag io.Writer, log logging.Logger) *Demo {
	if log == nil {
		log = logging.Nop()
	}
	return &Demo{
		out:       out,
		diag:      diag,
		log:       log.WithComponent("demo"),
		outStyle:  newStyles(out),
		diagStyle: newStyles(diag),
	}
}

// Run executes Script under Guard.
func (d *Demo) Run(ctx context.Context) error {
	return d.Guard(ctx, func() error { return d.Script(ctx) })
}

// builder is a constructor lifted to the Shape interface.
type builder struct {
	kind  shape.Kind
	build func(float64) (shape.Shape, error)
}

var builders = []builder{
	{shape.KindCircle, func(v float64) (shape.Shape, error) { return shape.NewCircle(v) }},
	{shape.KindSquare, func(v float64) (shape.Shape, error) { return shape.NewSquare(v) }},
	{shape.KindEquilateralTriangle, func(v float64) (shape.Shape, error) { return shape.NewEquilateralTriangle(v) }},
}

// Script performs the demonstration steps in order. Rejected dimensions
// are reported and skipped; any other error aborts the script.
func (d *Demo) Script(ctx context.Context) error {
	for _, b := range builders {
		s, err := b.build(1)
		if err != nil {
			return fmt.Errorf("unit %s: %w", b.kind, err)
		}
		d.report(ctx, d.diag, d.diagStyle, "Circumference of unity "+humanize(b.kind), s.Perimeter())
	}

	for _, b := range builders {
		fmt.Fprintf(d.diag, "Creating %s with %s -1\n", humanize(b.kind), b.kind.DimensionName())
		_, err := b.build(-1)
		switch {
		case err == nil:
			d.log.Warn(ctx, nil, "negative dimension accepted", "kind", b.kind.String())
		case errors.Is(err, shape.ErrNegativeDimension):
			d.caught(ctx, err)
		default:
			return err
		}
	}

	unity := scene.New(scene.WithCapacity(2))
	unity.AddShape(shape.MustCircle(1))
	unity.AddShape(shape.MustSquare(1))
	d.report(ctx, d.out, d.outStyle, "Circumference of all unity shapes", unity.TotalPerimeter())

	empty := scene.New()
	d.report(ctx, d.out, d.outStyle, "Circumference of the empty scene", empty.TotalPerimeter())

	return nil
}

// Guard runs fn and classifies its outcome on the diagnostic stream:
// an escaping ErrNegativeDimension is reported as "Error: ..." and
// swallowed; any other error or a panic is reported distinctly and
// returned so the caller can fail.
func (d *Demo) Guard(ctx context.Context, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
			fmt.Fprintln(d.diag, d.diagStyle.fatal.Render("A non-error panic was raised, but not handled."))
			d.log.Error(ctx, err, "demo panicked")
		}
	}()

	err = fn()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, shape.ErrNegativeDimension):
		fmt.Fprintln(d.diag, "Error: "+err.Error())
		d.log.Warn(ctx, err, "demo stopped on a rejected dimension")
		return nil
	default:
		fmt.Fprintln(d.diag, d.diagStyle.fatal.Render("Fatal: "+err.Error()))
		d.log.Error(ctx, err, "demo failed")
		return err
	}
}

func (d *Demo) report(ctx context.Context, w io.Writer, st styles, label string, v float64) {
	fmt.Fprintf(w, "%s %s\n", st.label.Render(label+":"), st.value.Render(fmt.Sprintf("%.6g", v)))
	d.log.Debug(ctx, label, "perimeter", v)
}

func (d *Demo) caught(ctx context.Context, err error) {
	fmt.Fprintln(d.diag, d.diagStyle.caught.Render("Caught exception: "+err.Error()))

	var dimErr *shape.NegativeDimensionError
	if errors.As(err, &dimErr) {
		d.log.Debug(ctx, "rejected dimension", "kind", dimErr.Kind.String(), "value", dimErr.Value)
	}
}

// humanize turns "equilateral_triangle" into "equilateral triangle".
func humanize(k shape.Kind) string {
	return strings.ReplaceAll(k.String(), "_", " ")
}
