package calculator

import (
	"fmt"
	"math"
)

// ZeroCelsius is 0 °C in kelvin.
const ZeroCelsius = 273.15

// Environment holds the planetary constants of one mission.
type Environment struct {
	Sigma               float64 `json:"sigma"`                 // Stefan-Boltzmann constant [W m^-2 K^-4]
	PlanetIRTemperature float64 `json:"planet_ir_temperature"` // effective planetary temperature [K]
	Altitude            float64 `json:"altitude"`              // orbital altitude [m]
	PlanetRadius        float64 `json:"planet_radius"`         // [m]
	SolarConstant       float64 `json:"solar_constant"`        // [W/m²]
	Albedo              float64 `json:"albedo"`
}

// Venus returns the constants for a 1000 km Venus orbit.
func Venus() Environment {
	return Environment{
		Sigma:               5.670374419e-8,
		PlanetIRTemperature: 226.6,
		Altitude:            1000e3,
		PlanetRadius:        6051.8e3,
		SolarConstant:       2601.3,
		Albedo:              0.65,
	}
}

// ViewFactor is the attenuation (R/(h+R))² applied to albedo and planetary IR.
func (e Environment) ViewFactor() float64 {
	r := e.PlanetRadius / (e.Altitude + e.PlanetRadius)
	return r * r
}

// PlanetIRFlux is σT⁴k, the planetary IR flux at orbit [W/m²].
func (e Environment) PlanetIRFlux() float64 {
	return e.Sigma * math.Pow(e.PlanetIRTemperature, 4) * e.ViewFactor()
}

func (e Environment) Validate() error {
	switch {
	case !(e.Sigma > 0):
		return fmt.Errorf("sigma must be positive, got %v", e.Sigma)
	case e.PlanetIRTemperature < 0:
		return fmt.Errorf("planetary IR temperature must not be negative, got %v", e.PlanetIRTemperature)
	case e.Altitude < 0:
		return fmt.Errorf("altitude must not be negative, got %v", e.Altitude)
	case !(e.PlanetRadius > 0):
		return fmt.Errorf("planet radius must be positive, got %v", e.PlanetRadius)
	case e.SolarConstant < 0:
		return fmt.Errorf("solar constant must not be negative, got %v", e.SolarConstant)
	case e.Albedo < 0 || e.Albedo > 1:
		return fmt.Errorf("albedo must be in [0,1], got %v", e.Albedo)
	}
	return nil
}

// Kelvin converts °C to K.
func Kelvin(celsius float64) float64 {
	return celsius + ZeroCelsius
}
