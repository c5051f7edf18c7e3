package calculator

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"thermaldesign/material"
	"thermaldesign/spacecraft"
)

// Config is the full description of a design study.
// Temperatures are kept in °C as written in the file; the tolerance is a difference, in K.
type Config struct {
	Environment Environment `json:"environment"`

	Name     string              `json:"name"`
	Shape    string              `json:"shape"`
	Side     float64             `json:"side"`
	Radius   float64             `json:"radius"`
	Length   float64             `json:"length"`
	HeatLoad spacecraft.HeatLoad `json:"heat_load"`
	Radiator spacecraft.Radiator `json:"radiator"`

	MaterialFile   string    `json:"material_file"`
	Absorptivities []float64 `json:"absorptivities"`

	LowerLimit float64 `json:"lower_limit"`
	UpperLimit float64 `json:"upper_limit"`
	Target     float64 `json:"target"`
	Tolerance  float64 `json:"tolerance"`

	Emissivity   Range `json:"emissivity"`
	RadiatorArea Range `json:"radiator_area"`
	HeaterPower  Range `json:"heater_power"`

	HeaterAtNight bool `json:"heater_at_night"`
	Workers       int  `json:"workers"`

	OutputDir    string `json:"output_dir"`
	FeasibleFile string `json:"feasible_file"`
	TargetFile   string `json:"target_file"`
	PlotFile     string `json:"plot_file"`
}

// DefaultConfig is the JARED Venus study.
func DefaultConfig() Config {
	return Config{
		Environment:  Venus(),
		Name:         "JARED",
		Shape:        string(spacecraft.ShapeCylinder),
		Side:         1.26,
		Radius:       0.60,
		Length:       1.80,
		HeatLoad:     spacecraft.HeatLoad{Day: 362, Night: 464},
		Radiator:     spacecraft.Radiator{Absorptivity: 0.07, Emissivity: 0.74},
		LowerLimit:   -15,
		UpperLimit:   38,
		Target:       15,
		Tolerance:    1,
		Emissivity:   Range{Start: 0.005, Stop: 0.2, Step: 0.005},
		RadiatorArea: Range{Start: 0, Stop: 10, Step: 0.2},
		HeaterPower:  Range{Start: 0, Stop: 40, Step: 5},
		Workers:      1,
		OutputDir:    ".",
		FeasibleFile: "Solutions.csv",
		TargetFile:   "EqualSolutions.csv",
		PlotFile:     "DesignSpace.png",
	}
}

// LoadConfig reads an ini file. Missing keys keep their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := loadCfg(file)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.WithField("file", path).Info("config loaded")
	return cfg, nil
}

// ParseConfig reads ini content from memory.
func ParseConfig(data []byte) (Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) (Config, error) {
	d := DefaultConfig()

	env := file.Section("environment")
	sc := file.Section("spacecraft")
	rad := file.Section("radiator")
	mat := file.Section("materials")
	lim := file.Section("limits")
	sweep := file.Section("sweep")
	mdl := file.Section("model")
	out := file.Section("output")

	cfg := Config{
		Environment: Environment{
			Sigma:               env.Key("Sigma").MustFloat64(d.Environment.Sigma),
			PlanetIRTemperature: env.Key("PlanetIRTemperature").MustFloat64(d.Environment.PlanetIRTemperature),
			Altitude:            env.Key("Altitude").MustFloat64(d.Environment.Altitude),
			PlanetRadius:        env.Key("PlanetRadius").MustFloat64(d.Environment.PlanetRadius),
			SolarConstant:       env.Key("SolarConstant").MustFloat64(d.Environment.SolarConstant),
			Albedo:              env.Key("Albedo").MustFloat64(d.Environment.Albedo),
		},
		Name:   sc.Key("Name").MustString(d.Name),
		Shape:  strings.ToLower(sc.Key("Shape").MustString(d.Shape)),
		Side:   sc.Key("Side").MustFloat64(d.Side),
		Radius: sc.Key("Radius").MustFloat64(d.Radius),
		Length: sc.Key("Length").MustFloat64(d.Length),
		HeatLoad: spacecraft.HeatLoad{
			Day:   sc.Key("HeatDay").MustFloat64(d.HeatLoad.Day),
			Night: sc.Key("HeatEclipse").MustFloat64(d.HeatLoad.Night),
		},
		Radiator: spacecraft.Radiator{
			Absorptivity: rad.Key("Absorptivity").MustFloat64(d.Radiator.Absorptivity),
			Emissivity:   rad.Key("Emissivity").MustFloat64(d.Radiator.Emissivity),
		},
		MaterialFile: mat.Key("File").MustString(d.MaterialFile),
		LowerLimit:   lim.Key("Lower").MustFloat64(d.LowerLimit),
		UpperLimit:   lim.Key("Upper").MustFloat64(d.UpperLimit),
		Target:       lim.Key("Target").MustFloat64(d.Target),
		Tolerance:    lim.Key("Tolerance").MustFloat64(d.Tolerance),
		Emissivity: Range{
			Start: sweep.Key("EmissivityStart").MustFloat64(d.Emissivity.Start),
			Stop:  sweep.Key("EmissivityStop").MustFloat64(d.Emissivity.Stop),
			Step:  sweep.Key("EmissivityStep").MustFloat64(d.Emissivity.Step),
		},
		RadiatorArea: Range{
			Start: sweep.Key("AreaStart").MustFloat64(d.RadiatorArea.Start),
			Stop:  sweep.Key("AreaStop").MustFloat64(d.RadiatorArea.Stop),
			Step:  sweep.Key("AreaStep").MustFloat64(d.RadiatorArea.Step),
		},
		HeaterPower: Range{
			Start: sweep.Key("HeaterStart").MustFloat64(d.HeaterPower.Start),
			Stop:  sweep.Key("HeaterStop").MustFloat64(d.HeaterPower.Stop),
			Step:  sweep.Key("HeaterStep").MustFloat64(d.HeaterPower.Step),
		},
		HeaterAtNight: mdl.Key("HeaterAtNight").MustBool(d.HeaterAtNight),
		Workers:       mdl.Key("Workers").MustInt(d.Workers),
		OutputDir:     out.Key("Dir").MustString(d.OutputDir),
		FeasibleFile:  out.Key("FeasibleFile").MustString(d.FeasibleFile),
		TargetFile:    out.Key("TargetFile").MustString(d.TargetFile),
		PlotFile:      out.Key("PlotFile").MustString(d.PlotFile),
	}

	if mat.HasKey("Absorptivities") {
		values, err := mat.Key("Absorptivities").StrictFloat64s(",")
		if err != nil {
			return Config{}, &ConfigError{Field: "materials.Absorptivities", Reason: err.Error()}
		}
		cfg.Absorptivities = values
	}
	return cfg, nil
}

// Spacecraft builds the fixed part of the design.
func (c Config) Spacecraft() (*spacecraft.Spacecraft, error) {
	var dims []float64
	switch spacecraft.Shape(strings.ToLower(c.Shape)) {
	case spacecraft.ShapeCube:
		dims = []float64{c.Side}
	case spacecraft.ShapeCylinder:
		dims = []float64{c.Radius, c.Length}
	}
	geometry, err := spacecraft.NewGeometry(c.Shape, dims...)
	if err != nil {
		return nil, configError("spacecraft", err)
	}
	s := spacecraft.NewSpacecraft(c.Name, geometry)
	s.SetHeatLoad(c.HeatLoad)
	s.SetRadiator(c.Radiator)
	if err := s.Validate(); err != nil {
		return nil, configError("spacecraft", err)
	}
	return s, nil
}

// Catalog picks the material list: the catalog file, then the inline list, then the built-in one.
func (c Config) Catalog() (material.Catalog, error) {
	var catalog material.Catalog
	switch {
	case c.MaterialFile != "":
		var err error
		catalog, err = material.Load(c.MaterialFile)
		if err != nil {
			return nil, configError("materials", err)
		}
	case len(c.Absorptivities) > 0:
		catalog = material.FromAbsorptivities(c.Absorptivities)
	default:
		catalog = material.Default()
	}
	if err := catalog.Validate(); err != nil {
		return nil, configError("materials", err)
	}
	return catalog, nil
}

// Request turns the config into a validated sweep request.
func (c Config) Request() (Request, error) {
	s, err := c.Spacecraft()
	if err != nil {
		return Request{}, err
	}
	catalog, err := c.Catalog()
	if err != nil {
		return Request{}, err
	}
	req := Request{
		Materials:            catalog.Absorptivities(),
		Emissivity:           c.Emissivity,
		RadiatorArea:         c.RadiatorArea,
		HeaterPower:          c.HeaterPower,
		Geometry:             s.Geometry,
		HeatLoad:             s.HeatLoad,
		RadiatorAbsorptivity: s.Radiator.Absorptivity,
		RadiatorEmissivity:   s.Radiator.Emissivity,
		Limits: Limits{
			Lower: Kelvin(c.LowerLimit),
			Upper: Kelvin(c.UpperLimit),
		},
		Target:        Kelvin(c.Target),
		Tolerance:     c.Tolerance,
		Env:           c.Environment,
		HeaterAtNight: c.HeaterAtNight,
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}
