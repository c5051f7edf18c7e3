package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermaldesign/calculator"
	"thermaldesign/model"
)

func init() {
	log.SetLevel(log.WarnLevel)
}

func sampleResult() *calculator.Result {
	targets := []model.SolutionRecord{
		{DayTemp: 288.87, NightTemp: 288.46, HeaterPower: 5, RadiatorArea: 9.4, Emissivity: 0.14, Absorptivity: 0.12},
		{DayTemp: 288.10, NightTemp: 288.46, HeaterPower: 10, RadiatorArea: 8.2, Emissivity: 0.14, Absorptivity: 0.12},
		{DayTemp: 288.10, NightTemp: 288.46, HeaterPower: 0, RadiatorArea: 8.2, Emissivity: 0.14, Absorptivity: 0.12},
	}
	feasible := append([]model.SolutionRecord{
		{DayTemp: 311.02, NightTemp: 302.09, HeaterPower: 0, RadiatorArea: 9.8, Emissivity: 0.115, Absorptivity: 0.25},
	}, targets...)
	return &calculator.Result{
		RunID:         "test",
		Evaluations:   100,
		Feasible:      feasible,
		Targets:       targets,
		RadiatorAreas: []float64{9.4, 8.2, 8.2},
		HeaterPowers:  []float64{5, 10, 0},
	}
}

func lines(t *testing.T, path string) []string {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files := Files{Dir: dir, Feasible: "Solutions.csv", Target: "EqualSolutions.csv", Plot: "DesignSpace.png"}

	require.NoError(t, Export(files, sampleResult()))

	assert.Len(t, lines(t, filepath.Join(dir, "Solutions.csv")), 5)
	target := lines(t, filepath.Join(dir, "EqualSolutions.csv"))
	require.Len(t, target, 4)
	assert.Equal(t, strings.Join(Header, ","), target[0])
	assert.Equal(t, "288.87,288.46,5.0,9.4000,0.1400,0.12", target[1])

	info, err := os.Stat(filepath.Join(dir, "DesignSpace.png"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportWithoutTargets(t *testing.T) {
	dir := t.TempDir()
	r := sampleResult()
	r.Targets, r.RadiatorAreas, r.HeaterPowers = nil, nil, nil

	require.NoError(t, Export(Files{Dir: dir, Feasible: "a.csv", Target: "b.csv", Plot: "plot.png"}, r))

	assert.Len(t, lines(t, filepath.Join(dir, "b.csv")), 1)
	_, err := os.Stat(filepath.Join(dir, "plot.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilesFromConfig(t *testing.T) {
	f := FilesFromConfig(calculator.DefaultConfig())
	assert.Equal(t, Files{Dir: ".", Feasible: "Solutions.csv", Target: "EqualSolutions.csv", Plot: "DesignSpace.png"}, f)
}

func TestScatterMismatch(t *testing.T) {
	err := Scatter(filepath.Join(t.TempDir(), "p.png"), []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleResult())
	assert.Equal(t, 4, s.Feasible)
	assert.Equal(t, 3, s.Targets)
	assert.Equal(t, 8.2, s.MinArea)
	assert.Equal(t, 9.4, s.MaxArea)
	assert.Equal(t, 0.0, s.MinHeater)
	assert.Equal(t, 10.0, s.MaxHeater)
	require.NotNil(t, s.Best)
	assert.Equal(t, 8.2, s.Best.RadiatorArea)
	assert.Equal(t, 0.0, s.Best.HeaterPower)

	empty := Summarize(&calculator.Result{})
	assert.Nil(t, empty.Best)
	assert.Zero(t, empty.Targets)
}
