package material

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Material is a surface finish candidate for the spacecraft body.
type Material struct {
	Number       int     `json:"number"`
	Name         string  `json:"name"`
	Absorptivity float64 `json:"absorptivity"`
}

// Catalog is the ordered list of candidates. The sweep walks it in this order.
type Catalog []Material

// defaultAbsorptivities is the coating list of the JARED Venus study.
var defaultAbsorptivities = []float64{
	0.44, 0.25, 0.21, 0.24, 0.14, 0.60, 0.95, 0.37, 0.26,
	0.29, 0.12, 0.88, 0.75, 0.40, 0.16, 0.08, 0.07,
}

// Default returns the built-in catalog.
func Default() Catalog {
	return FromAbsorptivities(defaultAbsorptivities)
}

// FromAbsorptivities numbers a bare absorptivity list, keeping its order.
func FromAbsorptivities(values []float64) Catalog {
	c := make(Catalog, len(values))
	for i, a := range values {
		c[i] = Material{
			Number:       i + 1,
			Name:         fmt.Sprintf("material %d", i+1),
			Absorptivity: a,
		}
	}
	return c
}

// Load reads a JSON array of materials. File order is kept.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read material catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode material catalog %s: %w", path, err)
	}
	for i := range c {
		if c[i].Number == 0 {
			c[i].Number = i + 1
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("material catalog %s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"file":      path,
		"materials": len(c),
	}).Info("material catalog loaded")
	return c, nil
}

func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("material catalog is empty")
	}
	for _, m := range c {
		if m.Absorptivity < 0 || m.Absorptivity > 1 {
			return fmt.Errorf("material %d (%s): absorptivity %v outside [0,1]", m.Number, m.Name, m.Absorptivity)
		}
	}
	return nil
}

// Absorptivities returns the catalog values in sweep order.
func (c Catalog) Absorptivities() []float64 {
	res := make([]float64, len(c))
	for i, m := range c {
		res[i] = m.Absorptivity
	}
	return res
}
