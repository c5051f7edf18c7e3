package calculator

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"thermaldesign/model"
	"thermaldesign/spacecraft"
)

// Limits is the operational temperature band [K]. Both ends are excluded.
type Limits struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// MaxEvaluations bounds the grid size of one request.
const MaxEvaluations = 1_000_000_000

// Request is everything one sweep needs.
type Request struct {
	Materials            []float64 // body absorptivities, outer loop
	Emissivity           Range     // body emissivity
	RadiatorArea         Range     // [m²]
	HeaterPower          Range     // [W]
	Geometry             spacecraft.Geometry
	HeatLoad             spacecraft.HeatLoad
	RadiatorAbsorptivity float64
	RadiatorEmissivity   float64
	Limits               Limits
	Target               float64 // [K]
	Tolerance            float64 // [K]
	Env                  Environment
	HeaterAtNight        bool
}

// Validate rejects a request before anything is evaluated.
func (r Request) Validate() error {
	if len(r.Materials) == 0 {
		return &ConfigError{Field: "materials", Reason: "catalog is empty"}
	}
	for i, a := range r.Materials {
		if !(a >= 0 && a <= 1) {
			return &ConfigError{Field: "materials", Reason: fmt.Sprintf("absorptivity #%d = %v outside [0,1]", i+1, a)}
		}
	}
	if r.Geometry == nil {
		return &ConfigError{Field: "geometry", Reason: "missing"}
	}
	if err := r.Geometry.Validate(); err != nil {
		return configError("geometry", err)
	}
	if err := r.HeatLoad.Validate(); err != nil {
		return configError("heat load", err)
	}
	if !(r.RadiatorAbsorptivity >= 0 && r.RadiatorAbsorptivity <= 1) {
		return &ConfigError{Field: "radiator absorptivity", Reason: fmt.Sprintf("%v outside [0,1]", r.RadiatorAbsorptivity)}
	}
	if !(r.RadiatorEmissivity >= 0 && r.RadiatorEmissivity <= 1) {
		return &ConfigError{Field: "radiator emissivity", Reason: fmt.Sprintf("%v outside [0,1]", r.RadiatorEmissivity)}
	}
	for _, rg := range []struct {
		name string
		r    Range
	}{
		{"emissivity range", r.Emissivity},
		{"radiator area range", r.RadiatorArea},
		{"heater power range", r.HeaterPower},
	} {
		if err := rg.r.validate(rg.name); err != nil {
			return err
		}
		if rg.r.Count() == 0 {
			return &ConfigError{Field: rg.name, Reason: fmt.Sprintf("%s is empty", rg.r)}
		}
	}
	if n := float64(len(r.Materials)) * float64(r.Emissivity.Count()) *
		float64(r.RadiatorArea.Count()) * float64(r.HeaterPower.Count()); n > MaxEvaluations {
		return &ConfigError{Field: "grid", Reason: fmt.Sprintf("%.0f evaluations, at most %d allowed", n, MaxEvaluations)}
	}
	// body emissivity is the night-side denominator, it has to stay above zero
	if !(r.Emissivity.Start > 0) || r.Emissivity.At(r.Emissivity.Count()-1) > 1 {
		return &ConfigError{Field: "emissivity range", Reason: fmt.Sprintf("%s must stay within (0,1]", r.Emissivity)}
	}
	if r.RadiatorArea.Start < 0 {
		return &ConfigError{Field: "radiator area range", Reason: "areas must not be negative"}
	}
	if r.HeaterPower.Start < 0 {
		return &ConfigError{Field: "heater power range", Reason: "heater power must not be negative"}
	}
	if !(r.Limits.Lower < r.Limits.Upper) {
		return &ConfigError{Field: "limits", Reason: fmt.Sprintf("lower %v must be below upper %v", r.Limits.Lower, r.Limits.Upper)}
	}
	if math.IsNaN(r.Target) || math.IsInf(r.Target, 0) {
		return &ConfigError{Field: "target", Reason: "must be finite"}
	}
	if !(r.Tolerance >= 0) {
		return &ConfigError{Field: "tolerance", Reason: fmt.Sprintf("must not be negative, got %v", r.Tolerance)}
	}
	if err := r.Env.Validate(); err != nil {
		return configError("environment", err)
	}
	return nil
}

// Evaluations is the grid size M*E*A*H.
func (r Request) Evaluations() int {
	return len(r.Materials) * r.Emissivity.Count() * r.RadiatorArea.Count() * r.HeaterPower.Count()
}

// Result holds the two solution sets of one run, in enumeration order.
type Result struct {
	RunID       string
	Evaluations int
	Feasible    []model.SolutionRecord
	Targets     []model.SolutionRecord
	// RadiatorAreas and HeaterPowers pair up with Targets for plotting.
	RadiatorAreas []float64
	HeaterPowers  []float64
}

func (r *Result) Data() model.ResultData {
	return model.ResultData{
		RunID:         r.RunID,
		Evaluations:   r.Evaluations,
		Feasible:      r.Feasible,
		Targets:       r.Targets,
		RadiatorAreas: r.RadiatorAreas,
		HeaterPowers:  r.HeaterPowers,
	}
}

// Run sweeps the grid sequentially.
func Run(req Request) (*Result, error) {
	return NewSearch(1).Run(context.Background(), req)
}

// Search runs sweeps. It keeps no state between runs.
type Search struct {
	workers int
	hub     *CalcHub
}

// NewSearch returns a search spreading materials over the given number of workers.
func NewSearch(workers int) *Search {
	if workers < 1 {
		workers = 1
	}
	return &Search{workers: workers}
}

// WithHub attaches a progress hub.
func (s *Search) WithHub(hub *CalcHub) *Search {
	s.hub = hub
	return s
}

func (s *Search) executor() executor {
	if s.workers == 1 {
		return executorSequential{}
	}
	return newExecutorBaseOnMaterial(s.workers)
}

// Run validates req, then evaluates every grid point.
// Output order is material, emissivity, area, heater whatever the worker count.
func (s *Search) Run(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	total := req.Evaluations()
	logger := log.WithField("run", runID)
	logger.WithFields(log.Fields{
		"materials":    len(req.Materials),
		"emissivity":   req.Emissivity.String(),
		"radiatorArea": req.RadiatorArea.String(),
		"heaterPower":  req.HeaterPower.String(),
		"evaluations":  total,
		"workers":      s.workers,
	}).Info("design space search started")
	if s.hub != nil {
		s.hub.start(runID, total)
	}

	start := time.Now()
	slots := make([]slot, len(req.Materials))
	err := s.executor().dispatch(ctx, len(req.Materials), func(ctx context.Context, i int) error {
		return s.sweepMaterial(ctx, req, i, &slots[i], logger)
	})
	if err != nil {
		logger.WithError(err).Warn("design space search aborted")
		return nil, err
	}

	res := &Result{RunID: runID, Evaluations: total}
	for _, sl := range slots {
		res.Feasible = append(res.Feasible, sl.feasible...)
		res.Targets = append(res.Targets, sl.targets...)
		res.RadiatorAreas = append(res.RadiatorAreas, sl.areas...)
		res.HeaterPowers = append(res.HeaterPowers, sl.heaters...)
	}
	logger.WithFields(log.Fields{
		"feasible": len(res.Feasible),
		"targets":  len(res.Targets),
		"elapsed":  time.Since(start).String(),
	}).Info("design space search finished")
	return res, nil
}

// slot collects the solutions of one material.
type slot struct {
	feasible []model.SolutionRecord
	targets  []model.SolutionRecord
	areas    []float64
	heaters  []float64
}

func (s *Search) sweepMaterial(ctx context.Context, req Request, mi int, out *slot, logger *log.Entry) error {
	m := Model{Env: req.Env, HeaterAtNight: req.HeaterAtNight}
	alpha := req.Materials[mi]
	ne, na, nh := req.Emissivity.Count(), req.RadiatorArea.Count(), req.HeaterPower.Count()
	trace := logger.Logger.IsLevelEnabled(log.DebugLevel)

	for ei := 0; ei < ne; ei++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		eps := req.Emissivity.At(ei)
		optics := Optics{
			BodyAbsorptivity:     alpha,
			RadiatorAbsorptivity: req.RadiatorAbsorptivity,
			BodyEmissivity:       eps,
			RadiatorEmissivity:   req.RadiatorEmissivity,
		}
		for ai := 0; ai < na; ai++ {
			area := req.RadiatorArea.At(ai)
			for hi := 0; hi < nh; hi++ {
				heater := req.HeaterPower.At(hi)
				day, night := m.Evaluate(req.Geometry, area, req.HeatLoad, optics, heater)
				rec := Record(model.EvaluationResult{
					DayTemp:   day,
					NightTemp: night,
					Point: model.SweepPoint{
						Absorptivity: alpha,
						Emissivity:   eps,
						RadiatorArea: area,
						HeaterPower:  heater,
					},
				})
				if trace {
					iteration := ((mi*ne+ei)*na+ai)*nh + hi + 1
					logger.WithFields(log.Fields{
						"iteration": iteration,
						"record":    rec,
					}).Debug("evaluated")
				}

				feasible, onTarget := Classify(rec.DayTemp, rec.NightTemp, req.Limits, req.Target, req.Tolerance)
				if !feasible {
					continue
				}
				out.feasible = append(out.feasible, rec)
				if onTarget {
					out.targets = append(out.targets, rec)
					out.areas = append(out.areas, Round(area, 2))
					out.heaters = append(out.heaters, Round(heater, 1))
				}
			}
		}
		if s.hub != nil {
			s.hub.add(na * nh)
		}
	}
	return nil
}

// Record rounds an evaluation for reporting: temperatures to 2 decimals,
// heater power to 1, area and emissivity to 4. Absorptivity is kept as catalogued.
func Record(ev model.EvaluationResult) model.SolutionRecord {
	return model.SolutionRecord{
		DayTemp:      Round(ev.DayTemp, 2),
		NightTemp:    Round(ev.NightTemp, 2),
		HeaterPower:  Round(ev.Point.HeaterPower, 1),
		RadiatorArea: Round(ev.Point.RadiatorArea, 4),
		Emissivity:   Round(ev.Point.Emissivity, 4),
		Absorptivity: ev.Point.Absorptivity,
	}
}

// Classify reports whether both temperatures are strictly inside the band,
// and if so whether both are strictly within tolerance of the target.
// Callers pass the rounded temperatures.
func Classify(day, night float64, limits Limits, target, tolerance float64) (feasible, onTarget bool) {
	feasible = limits.Lower < day && day < limits.Upper &&
		limits.Lower < night && night < limits.Upper
	if !feasible {
		return false, false
	}
	onTarget = math.Abs(day-target) < tolerance && math.Abs(night-target) < tolerance
	return feasible, onTarget
}

// Round rounds half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
