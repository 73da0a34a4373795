package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func cmdPlot(args []string) int {
	fs := flag.NewFlagSet("plot", flag.ContinueOnError)
	exprSrc := fs.String("expr", "", "expression to plot")
	varName := fs.String("var", "x", "plot variable")
	from := fs.Float64("from", -10, "lower bound")
	to := fs.Float64("to", 10, "upper bound")
	samples := fs.Int("n", 400, "sample count")
	out := fs.String("o", "plot.png", "output image file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *exprSrc == "" {
		fmt.Fprintln(os.Stderr, "mathhook plot: -expr is required")
		return 2
	}
	if *samples < 2 || *to <= *from {
		fmt.Fprintln(os.Stderr, "mathhook plot: need -n >= 2 and -to > -from")
		return 2
	}

	raw, err := Parse(*exprSrc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	e := newEngine().Simplify(raw)

	pts := make(plotter.XYs, 0, *samples)
	for i := 0; i < *samples; i++ {
		x := *from + (*to-*from)*float64(i)/float64(*samples-1)
		y, err := evalFloat(e, map[string]float64{*varName: x})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	if len(pts) == 0 {
		fmt.Fprintln(os.Stderr, "mathhook plot: no finite samples in range")
		return 1
	}

	p := plot.New()
	p.Title.Text = e.String()
	p.X.Label.Text = *varName
	line, err := plotter.NewLine(pts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, *out); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	fmt.Printf("wrote %s (%d samples)\n", *out, len(pts))
	return 0
}
