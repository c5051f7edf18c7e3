package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"thermaldesign/model"
)

// Header is the column row of both solution files.
var Header = []string{
	"Daylight temperature [K]",
	"Night temperature [K]",
	"Heater power [W]",
	"Radiator Surface Area [m²]",
	"Emissivity [-]",
	"Absorptivity [-]",
}

// Row formats one record in Header order.
func Row(r model.SolutionRecord) []string {
	return []string{
		strconv.FormatFloat(r.DayTemp, 'f', 2, 64),
		strconv.FormatFloat(r.NightTemp, 'f', 2, 64),
		strconv.FormatFloat(r.HeaterPower, 'f', 1, 64),
		strconv.FormatFloat(r.RadiatorArea, 'f', 4, 64),
		strconv.FormatFloat(r.Emissivity, 'f', 4, 64),
		strconv.FormatFloat(r.Absorptivity, 'f', -1, 64),
	}
}

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []model.SolutionRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates path and writes records to it.
func WriteFile(path string, records []model.SolutionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
