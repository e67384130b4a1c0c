// Command naa is the CLI front end for the activation engine: a
// cobra root command with persistent flags shared across subcommands,
// alongside the module's HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AbelV22/NAA-Web/internal/activation"
	"github.com/AbelV22/NAA-Web/internal/compliance"
	"github.com/AbelV22/NAA-Web/internal/config"
	"github.com/AbelV22/NAA-Web/internal/isotope"
	"github.com/AbelV22/NAA-Web/internal/loader"
	"github.com/AbelV22/NAA-Web/internal/maxppm"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
	"github.com/AbelV22/NAA-Web/internal/obslog"
	"github.com/AbelV22/NAA-Web/internal/pgstore"
	"github.com/AbelV22/NAA-Web/internal/reportpdf"
)

var (
	dataDir      string
	flux         float64
	tIrrS        float64
	tCoolS       float64
	depth        int
	massG        float64
	limitKind    string
	fromPostgres bool
	reportOut    string
)

var rootCmd = &cobra.Command{
	Use:   "naa",
	Short: "Neutron activation analysis engine",
	Long:  "naa computes radioactive inventories and regulatory compliance for neutron-irradiated samples.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding activation.csv, decay.csv and limits.csv (defaults to NAA_DATA_DIR)")
	rootCmd.PersistentFlags().Float64Var(&flux, "flux", 0, "thermal neutron flux, n/cm2/s (defaults to NAA_DEFAULT_FLUX)")
	rootCmd.PersistentFlags().Float64Var(&tIrrS, "t-irr", 0, "irradiation time, seconds")
	rootCmd.PersistentFlags().Float64Var(&tCoolS, "t-cool", 0, "cooling time, seconds")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", 0, "maximum chain depth (defaults to NAA_DEFAULT_DEPTH)")
	rootCmd.PersistentFlags().StringVar(&limitKind, "limit", "clearance", "regulatory limit kind: clearance or exemption")
	rootCmd.PersistentFlags().Float64Var(&massG, "mass-g", 1.0, "sample mass, grams")
	rootCmd.PersistentFlags().BoolVar(&fromPostgres, "postgres", false, "load record tables from Postgres (DATABASE_URL) instead of --data-dir")

	reportCmd.Flags().StringVar(&reportOut, "out", "", "PDF output path (defaults to stdout)")

	rootCmd.AddCommand(solveCmd, elementCmd, complianceCmd, maxPPMCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadStore(cfg config.Config, logger *slog.Logger) (*nucdata.Store, error) {
	if fromPostgres {
		return loadStoreFromPostgres(cfg, logger)
	}

	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}

	activationF, err := os.Open(dir + "/activation.csv")
	if err != nil {
		return nil, fmt.Errorf("naa: open activation table: %w", err)
	}
	defer activationF.Close()

	var decayF, limitsF io.Reader
	if f, err := os.Open(dir + "/decay.csv"); err == nil {
		decayF = f
		defer f.Close()
	}
	if f, err := os.Open(dir + "/limits.csv"); err == nil {
		limitsF = f
		defer f.Close()
	}

	tables, err := loader.LoadCSV(activationF, decayF, limitsF)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded ingestion tables",
		"activation_rows", tables.ActivationReport.RowsTotal,
		"decay_rows", tables.DecayReport.RowsTotal,
		"limit_rows", tables.LimitsReport.RowsTotal)

	store, err := nucdata.Build(tables.Activation, tables.Decay, tables.Limits)
	if err != nil {
		return nil, err
	}
	obslog.LogDiagnostics(logger, dir, store.Diagnostics)
	return store, nil
}

func loadStoreFromPostgres(cfg config.Config, logger *slog.Logger) (*nucdata.Store, error) {
	db, err := pgstore.OpenFromEnv()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	logger.Info("loading record tables from Postgres")
	store, err := pgstore.BuildStore(context.Background(), pgstore.NewPostgresStore(db))
	if err != nil {
		return nil, err
	}
	obslog.LogDiagnostics(logger, "postgres", store.Diagnostics)
	return store, nil
}

func resolvedFlux(cfg config.Config) float64 {
	if flux > 0 {
		return flux
	}
	return cfg.DefaultFluxNCm2S
}

func resolvedDepth(cfg config.Config) int {
	if depth > 0 {
		return depth
	}
	return cfg.DefaultDepth
}

func limitKindFlag() nucdata.LimitKind {
	if limitKind == "exemption" {
		return nucdata.Exemption
	}
	return nucdata.Clearance
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var solveCmd = &cobra.Command{
	Use:   "solve <isotope>",
	Short: "Solve the activity produced by irradiating a single isotope",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger, cleanup := obslog.Setup(cfg.LogFile, cfg.LogLevel)
		defer cleanup()

		store, err := loadStore(cfg, logger)
		if err != nil {
			return err
		}
		id, ok := isotope.Parse(args[0])
		if !ok {
			return fmt.Errorf("naa: unrecognized isotope %q", args[0])
		}
		res := activation.Solve(store, id, massG, resolvedFlux(cfg), tIrrS, tCoolS, 1, resolvedDepth(cfg))
		return printJSON(res)
	},
}

var elementCmd = &cobra.Command{
	Use:   "element <symbol>",
	Short: "Solve the activity produced by irradiating a natural element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger, cleanup := obslog.Setup(cfg.LogFile, cfg.LogLevel)
		defer cleanup()

		store, err := loadStore(cfg, logger)
		if err != nil {
			return err
		}
		res := activation.SolveElement(store, args[0], massG, resolvedFlux(cfg), tIrrS, tCoolS, true)
		return printJSON(res)
	},
}

var complianceCmd = &cobra.Command{
	Use:   "compliance <main-element>",
	Short: "Evaluate regulatory compliance for a sample's main element",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger, cleanup := obslog.Setup(cfg.LogFile, cfg.LogLevel)
		defer cleanup()

		store, err := loadStore(cfg, logger)
		if err != nil {
			return err
		}
		wasteMassG := massG
		rep := compliance.Evaluate(store, nil, args[0], massG, resolvedFlux(cfg), tIrrS, tCoolS, wasteMassG, limitKindFlag())
		return printJSON(rep)
	},
}

var maxPPMCmd = &cobra.Command{
	Use:   "max-ppm <symbol...>",
	Short: "Compute per-element regulatory ppm ceilings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger, cleanup := obslog.Setup(cfg.LogFile, cfg.LogLevel)
		defer cleanup()

		store, err := loadStore(cfg, logger)
		if err != nil {
			return err
		}
		rows := maxppm.Evaluate(store, args, resolvedFlux(cfg), tIrrS, tCoolS, massG, massG, limitKindFlag(), nil, nil)
		return printJSON(rows)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report <main-element>",
	Short: "Evaluate compliance and render it as a one-page PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logger, cleanup := obslog.Setup(cfg.LogFile, cfg.LogLevel)
		defer cleanup()

		store, err := loadStore(cfg, logger)
		if err != nil {
			return err
		}
		rep := compliance.Evaluate(store, nil, args[0], massG, resolvedFlux(cfg), tIrrS, tCoolS, massG, limitKindFlag())

		out := os.Stdout
		if reportOut != "" {
			f, err := os.Create(reportOut)
			if err != nil {
				return fmt.Errorf("naa: create report file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return reportpdf.Write(out, fmt.Sprintf("Compliance Report: %s", args[0]), rep)
	},
}
