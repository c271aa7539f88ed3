package sweep

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders the four recovery counts against k as a line+point
// plot and writes it to the run directory as a PNG. The format is
// inferred from the extension, so a caller-supplied name can swap in
// SVG or PDF.
func SavePlot(run *Run, c *Curve) (string, error) {
	return PlotCurve(c, run.Name, run.Path("sweep.png"))
}

// PlotCurve writes the curve plot to path.
func PlotCurve(c *Curve, title, path string) (string, error) {
	if len(c.Points) == 0 {
		return "", fmt.Errorf("nothing to plot: no k-mer value completed")
	}

	p := plot.New()
	p.Title.Text = title + " target recovery by k-mer size"
	p.X.Label.Text = "k"
	p.Y.Label.Text = "targets"
	p.Legend.Top = true

	xys := func(counts []int) plotter.XYs {
		pts := make(plotter.XYs, len(c.Points))
		for i, point := range c.Points {
			pts[i].X = float64(point.K)
			pts[i].Y = float64(counts[i])
		}
		return pts
	}

	err := plotutil.AddLinePoints(p,
		"with hits", xys(c.WithHits()),
		"one hit", xys(c.OneHit()),
		"one segment", xys(c.OneSegment()),
		"nested", xys(c.Nested()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build sweep plot: %v", err)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to write sweep plot %s: %v", path, err)
	}

	return path, nil
}
