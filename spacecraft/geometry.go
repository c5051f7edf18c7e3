package spacecraft

import (
	"fmt"
	"math"
	"strings"
)

// Shape names the body geometry of the spacecraft.
type Shape string

const (
	ShapeCube     Shape = "cube"
	ShapeCylinder Shape = "cylinder"
)

// Geometry is the body shape. Only Cube and Cylinder implement it.
type Geometry interface {
	Shape() Shape
	// SunlitArea is the area projected towards the sun [m²].
	SunlitArea() float64
	// SurfaceArea is the total emitting area [m²].
	SurfaceArea() float64
	Validate() error

	sealed()
}

// Cube body, side in metres.
type Cube struct {
	Side float64 `json:"side"`
}

func (c Cube) Shape() Shape { return ShapeCube }

func (c Cube) SunlitArea() float64 { return c.Side * c.Side }

func (c Cube) SurfaceArea() float64 { return 6 * c.Side * c.Side }

func (c Cube) Validate() error {
	if !(c.Side > 0) {
		return fmt.Errorf("cube side must be positive, got %v", c.Side)
	}
	return nil
}

func (Cube) sealed() {}

// Cylinder body. The sun sees the side of the cylinder, a 2r x l rectangle.
type Cylinder struct {
	Radius float64 `json:"radius"`
	Length float64 `json:"length"`
}

func (c Cylinder) Shape() Shape { return ShapeCylinder }

func (c Cylinder) SunlitArea() float64 { return 2 * c.Radius * c.Length }

func (c Cylinder) SurfaceArea() float64 {
	return 2*c.Radius*c.Radius*math.Pi + 2*math.Pi*c.Radius*c.Length
}

func (c Cylinder) Validate() error {
	if !(c.Radius > 0) || !(c.Length > 0) {
		return fmt.Errorf("cylinder radius and length must be positive, got r=%v l=%v", c.Radius, c.Length)
	}
	return nil
}

func (Cylinder) sealed() {}

// NewGeometry builds a geometry from its configured name and dimensions:
// cube takes the side, cylinder takes radius then length.
func NewGeometry(shape string, dims ...float64) (Geometry, error) {
	var g Geometry
	switch Shape(strings.ToLower(strings.TrimSpace(shape))) {
	case ShapeCube:
		if len(dims) != 1 {
			return nil, fmt.Errorf("cube needs 1 dimension, got %d", len(dims))
		}
		g = Cube{Side: dims[0]}
	case ShapeCylinder:
		if len(dims) != 2 {
			return nil, fmt.Errorf("cylinder needs 2 dimensions, got %d", len(dims))
		}
		g = Cylinder{Radius: dims[0], Length: dims[1]}
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
