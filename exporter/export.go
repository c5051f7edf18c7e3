package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"thermaldesign/calculator"
)

// Files names the outputs of one export, relative to Dir.
type Files struct {
	Dir      string
	Feasible string
	Target   string
	Plot     string // empty skips the plot
}

// FilesFromConfig takes the output section of a config.
func FilesFromConfig(c calculator.Config) Files {
	return Files{
		Dir:      c.OutputDir,
		Feasible: c.FeasibleFile,
		Target:   c.TargetFile,
		Plot:     c.PlotFile,
	}
}

// Export writes both solution tables and the scatter plot of the target matches.
func Export(files Files, r *calculator.Result) error {
	if files.Dir == "" {
		files.Dir = "."
	}
	if err := os.MkdirAll(files.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	feasible := filepath.Join(files.Dir, files.Feasible)
	if err := WriteFile(feasible, r.Feasible); err != nil {
		return err
	}
	target := filepath.Join(files.Dir, files.Target)
	if err := WriteFile(target, r.Targets); err != nil {
		return err
	}
	fields := log.Fields{
		"run":      r.RunID,
		"feasible": feasible,
		"target":   target,
	}
	switch {
	case files.Plot == "":
	case len(r.Targets) == 0:
		log.WithField("run", r.RunID).Warn("no target matches, plot skipped")
	default:
		plot := filepath.Join(files.Dir, files.Plot)
		if err := Scatter(plot, r.RadiatorAreas, r.HeaterPowers); err != nil {
			return err
		}
		fields["plot"] = plot
	}
	log.WithFields(fields).Info("solutions exported")
	return nil
}
