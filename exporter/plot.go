package exporter

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	PlotTitle  = "Design space - Radiator Area vs Heater Power for a thermal equilibrium of 15°C"
	PlotXLabel = "Radiator Area [m²]"
	PlotYLabel = "Heater Power [W]"
)

// Scatter renders radiator area against heater power. The image format follows
// the file extension (png, svg, pdf...).
func Scatter(path string, areas, heaters []float64) error {
	if len(areas) != len(heaters) {
		return fmt.Errorf("scatter: %d areas for %d heater powers", len(areas), len(heaters))
	}
	p := plot.New()
	p.Title.Text = PlotTitle
	p.X.Label.Text = PlotXLabel
	p.Y.Label.Text = PlotYLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(areas))
	for i := range areas {
		pts[i].X = areas[i]
		pts[i].Y = heaters[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	p.Add(s)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
