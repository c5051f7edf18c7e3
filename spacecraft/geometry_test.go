package spacecraft

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeAreas(t *testing.T) {
	c := Cube{Side: 2}
	assert.Equal(t, ShapeCube, c.Shape())
	assert.Equal(t, 4.0, c.SunlitArea())
	assert.Equal(t, 24.0, c.SurfaceArea())
}

func TestCylinderAreas(t *testing.T) {
	c := Cylinder{Radius: 0.6, Length: 1.8}
	assert.Equal(t, ShapeCylinder, c.Shape())
	assert.InDelta(t, 2.16, c.SunlitArea(), 1e-12)
	assert.InDelta(t, 2*math.Pi*0.36+2*math.Pi*0.6*1.8, c.SurfaceArea(), 1e-12)
	assert.InDelta(t, 9.047786842338605, c.SurfaceArea(), 1e-12)
}

func TestNewGeometry(t *testing.T) {
	g, err := NewGeometry("Cube", 1.26)
	require.NoError(t, err)
	assert.Equal(t, Cube{Side: 1.26}, g)

	g, err = NewGeometry(" cylinder ", 0.6, 1.8)
	require.NoError(t, err)
	assert.Equal(t, Cylinder{Radius: 0.6, Length: 1.8}, g)

	tests := []struct {
		name  string
		shape string
		dims  []float64
	}{
		{"unknown shape", "sphere", []float64{1}},
		{"cube arity", "cube", []float64{1, 2}},
		{"cylinder arity", "cylinder", []float64{1}},
		{"zero side", "cube", []float64{0}},
		{"negative radius", "cylinder", []float64{-0.6, 1.8}},
		{"zero length", "cylinder", []float64{0.6, 0}},
		{"NaN side", "cube", []float64{math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeometry(tt.shape, tt.dims...)
			assert.Error(t, err)
		})
	}
}

func TestSpacecraftValidate(t *testing.T) {
	s := NewSpacecraft("JARED", Cylinder{Radius: 0.6, Length: 1.8})
	s.SetHeatLoad(HeatLoad{Day: 362, Night: 464})
	s.SetRadiator(Radiator{Absorptivity: 0.07, Emissivity: 0.74})
	require.NoError(t, s.Validate())

	s.SetHeatLoad(HeatLoad{Day: -1, Night: 464})
	assert.Error(t, s.Validate())

	s.SetHeatLoad(HeatLoad{Day: 362, Night: 464})
	s.SetRadiator(Radiator{Absorptivity: 0.07, Emissivity: 1.2})
	assert.Error(t, s.Validate())

	assert.Error(t, (&Spacecraft{Name: "empty"}).Validate())
	assert.Error(t, (&Spacecraft{Geometry: Cube{}}).Validate())
}
