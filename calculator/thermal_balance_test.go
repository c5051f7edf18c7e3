package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermaldesign/spacecraft"
)

var (
	jared     = spacecraft.Cylinder{Radius: 0.60, Length: 1.80}
	jaredLoad = spacecraft.HeatLoad{Day: 362, Night: 464}
)

func jaredOptics(alpha, eps float64) Optics {
	return Optics{
		BodyAbsorptivity:     alpha,
		RadiatorAbsorptivity: 0.07,
		BodyEmissivity:       eps,
		RadiatorEmissivity:   0.74,
	}
}

func TestEvaluateReferencePoint(t *testing.T) {
	day, night := Evaluate(jared, 2.0, jaredLoad, jaredOptics(0.44, 0.1), 20, Venus())
	assert.Equal(t, 425.59, Round(day, 2))
	assert.Equal(t, 312.26, Round(night, 2))
}

func TestEvaluateCube(t *testing.T) {
	day, night := Evaluate(spacecraft.Cube{Side: 1.26}, 2.0, jaredLoad, jaredOptics(0.44, 0.1), 20, Venus())
	assert.Equal(t, 398.00, Round(day, 2))
	assert.Equal(t, 307.27, Round(night, 2))
}

func TestEvaluateWithoutRadiator(t *testing.T) {
	day, night := Evaluate(jared, 0, jaredLoad, jaredOptics(0.44, 0.1), 0, Venus())
	assert.Equal(t, 529.78, Round(day, 2))
	assert.Equal(t, 312.26, Round(night, 2))
}

func TestViewFactor(t *testing.T) {
	assert.InDelta(t, 0.7364939115393564, Venus().ViewFactor(), 1e-15)
}

func TestHeaterPowerIsALabel(t *testing.T) {
	for _, heater := range []float64{0, 5, 35, 1000} {
		day, night := Evaluate(jared, 2.0, jaredLoad, jaredOptics(0.44, 0.1), heater, Venus())
		assert.Equal(t, 425.59, Round(day, 2))
		assert.Equal(t, 312.26, Round(night, 2))
	}
}

func TestHeaterAtNight(t *testing.T) {
	m := Model{Env: Venus(), HeaterAtNight: true}
	day0, night0 := m.Evaluate(jared, 2.0, jaredLoad, jaredOptics(0.44, 0.1), 0)
	day, night := m.Evaluate(jared, 2.0, jaredLoad, jaredOptics(0.44, 0.1), 30)
	assert.Equal(t, day0, day)
	assert.Greater(t, night, night0)

	// heater power closes the night balance like internal dissipation would
	plain := Model{Env: Venus()}
	_, shifted := plain.Evaluate(jared, 2.0, spacecraft.HeatLoad{Day: 362, Night: 494}, jaredOptics(0.44, 0.1), 0)
	assert.InDelta(t, shifted, night, 1e-9)
}

func TestDayWarmerThanNight(t *testing.T) {
	// without a radiator both balances share the emitting capacity, so the
	// sunlit input decides
	load := spacecraft.HeatLoad{Day: 464, Night: 464}
	for _, g := range []spacecraft.Geometry{jared, spacecraft.Cube{Side: 1.26}} {
		for _, alpha := range []float64{0.07, 0.44, 0.95} {
			for _, eps := range []float64{0.005, 0.1, 0.195} {
				day, night := Evaluate(g, 0, load, jaredOptics(alpha, eps), 0, Venus())
				assert.Greater(t, day, night, "shape %s alpha %v eps %v", g.Shape(), alpha, eps)
			}
		}
	}

	day, night := Evaluate(jared, 2.0, jaredLoad, jaredOptics(0.44, 0.1), 0, Venus())
	assert.Greater(t, day, night)
}

func TestShapeOnlyMattersThroughAreas(t *testing.T) {
	// same sunlit area: 2*0.5*1.5 = 1.5 = s²
	cube := spacecraft.Cube{Side: math.Sqrt(1.5)}
	cyl := spacecraft.Cylinder{Radius: 0.5, Length: 1.5}
	require.InDelta(t, cube.SunlitArea(), cyl.SunlitArea(), 1e-12)

	env := Venus()
	optics := jaredOptics(0.44, 0.1)
	hc := Absorbed(cube, 2.0, optics, env)
	hy := Absorbed(cyl, 2.0, optics, env)
	assert.InDelta(t, hc.Day(), hy.Day(), 1e-9)
	assert.InDelta(t, hc.BodyIR, hy.BodyIR, 1e-9)

	dc, nc := Evaluate(cube, 2.0, jaredLoad, optics, 0, env)
	dy, ny := Evaluate(cyl, 2.0, jaredLoad, optics, 0, env)
	// T⁴ times the emitting capacity is the absorbed power for both shapes
	emitDay := func(s float64) float64 { return env.Sigma * (2.0*0.74 + s*0.1) }
	emitNight := func(s float64) float64 { return env.Sigma * s * 0.1 }
	assert.InDelta(t, math.Pow(dc, 4)*emitDay(cube.SurfaceArea()), math.Pow(dy, 4)*emitDay(cyl.SurfaceArea()), 1e-6)
	assert.InDelta(t, math.Pow(nc, 4)*emitNight(cube.SurfaceArea()), math.Pow(ny, 4)*emitNight(cyl.SurfaceArea()), 1e-6)
	assert.NotEqual(t, Round(dc, 2), Round(dy, 2))
}

func TestAbsorbedRadiatorHasNoSolarTerm(t *testing.T) {
	env := Venus()
	with := Absorbed(jared, 3.0, jaredOptics(0.44, 0.1), env)
	without := Absorbed(jared, 0, jaredOptics(0.44, 0.1), env)
	assert.Equal(t, without.BodySolar, with.BodySolar)
	assert.Zero(t, without.RadiatorAlbedo)
	assert.Zero(t, without.RadiatorIR)
	assert.InDelta(t, env.SolarConstant*3.0*0.07*env.Albedo*env.ViewFactor(), with.RadiatorAlbedo, 1e-9)
	assert.InDelta(t, env.PlanetIRFlux()*3.0, with.RadiatorIR, 1e-9)
}

func TestOpticsValidate(t *testing.T) {
	assert.NoError(t, jaredOptics(0.44, 0.1).Validate())
	assert.Error(t, jaredOptics(1.2, 0.1).Validate())
	assert.Error(t, jaredOptics(0.44, -0.1).Validate())
}
