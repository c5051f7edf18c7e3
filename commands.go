package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"thermaldesign/calculator"
	"thermaldesign/exporter"
	"thermaldesign/model"
	"thermaldesign/server"
)

const defaultConfigPath = "conf/config.ini"

type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "thermaldesign",
		Short:         "Spacecraft thermal control design space explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "study config (ini)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug traces every grid point)")

	root.AddCommand(newSweepCmd(opts), newEvaluateCmd(opts), newServeCmd(opts))
	return root
}

// loadConfig falls back to the built-in study when the default file is absent.
func (o *options) loadConfig(cmd *cobra.Command) (calculator.Config, error) {
	cfg, err := calculator.LoadConfig(o.configPath)
	if err == nil {
		return cfg, nil
	}
	if !cmd.Flags().Changed("config") && errors.Is(err, fs.ErrNotExist) {
		log.WithField("file", o.configPath).Warn("no config file, using built-in study")
		return calculator.DefaultConfig(), nil
	}
	return calculator.Config{}, err
}

func newSweepCmd(opts *options) *cobra.Command {
	var (
		workers int
		outDir  string
		noPlot  bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the design grid and export feasible and target-matched solutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}
			req, err := cfg.Request()
			if err != nil {
				return err
			}
			res, err := calculator.NewSearch(cfg.Workers).Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			files := exporter.FilesFromConfig(cfg)
			if noPlot {
				files.Plot = ""
			}
			if err := exporter.Export(files, res); err != nil {
				return err
			}
			logSummary(exporter.Summarize(res))
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "materials evaluated in parallel")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the scatter plot")
	return cmd
}

func logSummary(s exporter.Summary) {
	fields := log.Fields{
		"feasible": s.Feasible,
		"targets":  s.Targets,
	}
	if s.Best != nil {
		fields["area"] = fmt.Sprintf("%.2f..%.2f", s.MinArea, s.MaxArea)
		fields["heater"] = fmt.Sprintf("%.1f..%.1f", s.MinHeater, s.MaxHeater)
		fields["best"] = exporter.Row(*s.Best)
	}
	log.WithFields(fields).Info("design space summary")
}

func newEvaluateCmd(opts *options) *cobra.Command {
	var absorptivity, emissivity, area, heater float64
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the thermal balance at a single design point",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := cfg.Spacecraft()
			if err != nil {
				return err
			}
			if err := cfg.Environment.Validate(); err != nil {
				return err
			}
			optics := calculator.Optics{
				BodyAbsorptivity:     absorptivity,
				RadiatorAbsorptivity: s.Radiator.Absorptivity,
				BodyEmissivity:       emissivity,
				RadiatorEmissivity:   s.Radiator.Emissivity,
			}
			if err := optics.Validate(); err != nil {
				return err
			}
			if !(emissivity > 0) || area < 0 {
				return fmt.Errorf("emissivity must be positive and area not negative")
			}
			m := calculator.Model{Env: cfg.Environment, HeaterAtNight: cfg.HeaterAtNight}
			day, night := m.Evaluate(s.Geometry, area, s.HeatLoad, optics, heater)
			heat := calculator.Absorbed(s.Geometry, area, optics, cfg.Environment)
			rec := calculator.Record(model.EvaluationResult{
				DayTemp:   day,
				NightTemp: night,
				Point: model.SweepPoint{
					Absorptivity: absorptivity,
					Emissivity:   emissivity,
					RadiatorArea: area,
					HeaterPower:  heater,
				},
			})
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "day   %.2f K (%.2f °C)\n", rec.DayTemp, rec.DayTemp-calculator.ZeroCelsius)
			fmt.Fprintf(out, "night %.2f K (%.2f °C)\n", rec.NightTemp, rec.NightTemp-calculator.ZeroCelsius)
			fmt.Fprintf(out, "absorbed in sunlight %.1f W (solar %.1f, albedo %.1f, IR %.1f)\n",
				heat.Day(), heat.BodySolar, heat.BodyAlbedo+heat.RadiatorAlbedo, heat.BodyIR+heat.RadiatorIR)
			return nil
		},
	}
	cmd.Flags().Float64Var(&absorptivity, "absorptivity", 0.44, "body absorptivity")
	cmd.Flags().Float64Var(&emissivity, "emissivity", 0.1, "body emissivity")
	cmd.Flags().Float64Var(&area, "area", 2.0, "radiator area [m²]")
	cmd.Flags().Float64Var(&heater, "heater", 20, "heater power [W]")
	return cmd
}

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sweeps to a websocket front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			return server.NewServer(addr, upgrader, cfg).Serve()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9000", "listen address")
	return cmd
}
