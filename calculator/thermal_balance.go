package calculator

import (
	"fmt"
	"math"

	"thermaldesign/spacecraft"
)

// Optics are the surface coefficients of body and radiator, each in [0,1].
type Optics struct {
	BodyAbsorptivity     float64 `json:"body_absorptivity"`
	RadiatorAbsorptivity float64 `json:"radiator_absorptivity"`
	BodyEmissivity       float64 `json:"body_emissivity"`
	RadiatorEmissivity   float64 `json:"radiator_emissivity"`
}

func (o Optics) Validate() error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"body absorptivity", o.BodyAbsorptivity},
		{"radiator absorptivity", o.RadiatorAbsorptivity},
		{"body emissivity", o.BodyEmissivity},
		{"radiator emissivity", o.RadiatorEmissivity},
	} {
		if c.value < 0 || c.value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", c.name, c.value)
		}
	}
	return nil
}

// Heat is the absorbed power per source [W].
// The radiator is edge-on to the sun, so it has no direct solar term.
type Heat struct {
	RadiatorAlbedo float64 `json:"radiator_albedo"`
	RadiatorIR     float64 `json:"radiator_ir"`
	BodySolar      float64 `json:"body_solar"`
	BodyAlbedo     float64 `json:"body_albedo"`
	BodyIR         float64 `json:"body_ir"`
}

// Day is everything absorbed in sunlight.
func (h Heat) Day() float64 {
	return h.RadiatorAlbedo + h.RadiatorIR + h.BodySolar + h.BodyAlbedo + h.BodyIR
}

// Absorbed computes the environmental heat input of body and radiator.
func Absorbed(geometry spacecraft.Geometry, radiatorArea float64, optics Optics, env Environment) Heat {
	k := env.ViewFactor()
	ir := env.PlanetIRFlux()
	sunlit := geometry.SunlitArea()
	return Heat{
		RadiatorAlbedo: env.SolarConstant * radiatorArea * optics.RadiatorAbsorptivity * env.Albedo * k,
		RadiatorIR:     ir * radiatorArea,
		BodySolar:      env.SolarConstant * sunlit * optics.BodyAbsorptivity,
		BodyAlbedo:     env.SolarConstant * sunlit * optics.BodyAbsorptivity * env.Albedo * k,
		BodyIR:         ir * sunlit * optics.BodyEmissivity,
	}
}

// Evaluate returns the steady-state day and night temperatures [K].
// heaterPower is carried as a design label only and does not enter either balance.
func Evaluate(geometry spacecraft.Geometry, radiatorArea float64, load spacecraft.HeatLoad,
	optics Optics, heaterPower float64, env Environment) (day, night float64) {
	return Model{Env: env}.Evaluate(geometry, radiatorArea, load, optics, heaterPower)
}

// Model is the single-node balance with its options.
type Model struct {
	Env Environment
	// HeaterAtNight adds the heater power to the eclipse balance.
	// Off by default.
	HeaterAtNight bool
}

func (m Model) Evaluate(geometry spacecraft.Geometry, radiatorArea float64, load spacecraft.HeatLoad,
	optics Optics, heaterPower float64) (day, night float64) {
	heat := Absorbed(geometry, radiatorArea, optics, m.Env)
	surface := geometry.SurfaceArea()

	dayIn := load.Day + heat.Day()
	day = math.Pow(dayIn/
		(m.Env.Sigma*(radiatorArea*optics.RadiatorEmissivity+surface*optics.BodyEmissivity)), 0.25)

	nightIn := load.Night + heat.BodyIR
	if m.HeaterAtNight {
		nightIn += heaterPower
	}
	night = math.Pow(nightIn/(m.Env.Sigma*(surface*optics.BodyEmissivity)), 0.25)
	return day, night
}
