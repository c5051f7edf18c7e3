package exporter

import (
	"gonum.org/v1/gonum/floats"

	"thermaldesign/calculator"
	"thermaldesign/model"
)

// Summary describes the target-matched design space. Best is the match with
// the smallest radiator area, then the smallest heater power.
type Summary struct {
	Feasible  int
	Targets   int
	MinArea   float64
	MaxArea   float64
	MinHeater float64
	MaxHeater float64
	Best      *model.SolutionRecord
}

func Summarize(r *calculator.Result) Summary {
	s := Summary{
		Feasible: len(r.Feasible),
		Targets:  len(r.Targets),
	}
	if len(r.Targets) == 0 {
		return s
	}
	s.MinArea, s.MaxArea = floats.Min(r.RadiatorAreas), floats.Max(r.RadiatorAreas)
	s.MinHeater, s.MaxHeater = floats.Min(r.HeaterPowers), floats.Max(r.HeaterPowers)

	best := 0
	for i, t := range r.Targets[1:] {
		b := r.Targets[best]
		if t.RadiatorArea < b.RadiatorArea ||
			(t.RadiatorArea == b.RadiatorArea && t.HeaterPower < b.HeaterPower) {
			best = i + 1
		}
	}
	rec := r.Targets[best]
	s.Best = &rec
	return s
}
