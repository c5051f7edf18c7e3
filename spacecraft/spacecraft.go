package spacecraft

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// HeatLoad is the internally dissipated power in sunlight and in eclipse [W].
type HeatLoad struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
}

func (h HeatLoad) Validate() error {
	if h.Day < 0 || h.Night < 0 {
		return fmt.Errorf("internal heat loads must not be negative, got day=%v night=%v", h.Day, h.Night)
	}
	return nil
}

// Radiator surface finish. Its area is a sweep variable, not part of the spacecraft.
type Radiator struct {
	Absorptivity float64 `json:"absorptivity"`
	Emissivity   float64 `json:"emissivity"`
}

// Spacecraft holds the fixed part of a thermal design: body, loads and radiator finish.
type Spacecraft struct {
	Name     string
	Geometry Geometry
	HeatLoad HeatLoad
	Radiator Radiator
}

func NewSpacecraft(name string, geometry Geometry) *Spacecraft {
	s := &Spacecraft{
		Name:     name,
		Geometry: geometry,
	}
	log.WithFields(log.Fields{
		"name":        name,
		"shape":       geometry.Shape(),
		"sunlitArea":  geometry.SunlitArea(),
		"surfaceArea": geometry.SurfaceArea(),
	}).Info("spacecraft body set")
	return s
}

func (s *Spacecraft) SetHeatLoad(load HeatLoad) {
	s.HeatLoad = load
	log.WithFields(log.Fields{
		"day":   load.Day,
		"night": load.Night,
	}).Info("internal heat load set")
}

func (s *Spacecraft) SetRadiator(radiator Radiator) {
	s.Radiator = radiator
	log.WithFields(log.Fields{
		"absorptivity": radiator.Absorptivity,
		"emissivity":   radiator.Emissivity,
	}).Info("radiator finish set")
}

// Validate checks the body, the loads and the radiator finish.
func (s *Spacecraft) Validate() error {
	if s.Geometry == nil {
		return fmt.Errorf("spacecraft %q has no geometry", s.Name)
	}
	if err := s.Geometry.Validate(); err != nil {
		return err
	}
	if err := s.HeatLoad.Validate(); err != nil {
		return err
	}
	if !unit(s.Radiator.Absorptivity) || !unit(s.Radiator.Emissivity) {
		return fmt.Errorf("radiator absorptivity and emissivity must be in [0,1], got %v and %v",
			s.Radiator.Absorptivity, s.Radiator.Emissivity)
	}
	return nil
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}
