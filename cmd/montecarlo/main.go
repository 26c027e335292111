// Package main provides the dice simulation CLI: it loads a dice set, plays
// a session, analyzes it, and prints or exports the report.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/montecarlo/internal/config"
	"github.com/cory-johannsen/montecarlo/internal/game/analysis"
	"github.com/cory-johannsen/montecarlo/internal/game/dice"
	"github.com/cory-johannsen/montecarlo/internal/game/play"
	"github.com/cory-johannsen/montecarlo/internal/game/ruleset"
	"github.com/cory-johannsen/montecarlo/internal/observability"
	"github.com/cory-johannsen/montecarlo/internal/report"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	diceFile := flag.String("dice", "", "path to dice-set YAML file")
	rolls := flag.Int("rolls", 0, "number of rolls")
	form := flag.String("form", "", "results layout: wide or narrow")
	xlsxPath := flag.String("xlsx", "", "write the report workbook to this .xlsx path")
	seed := flag.Uint64("seed", 0, "use a seeded source with this seed")
	flag.Parse()

	v := config.New()
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("reading config: %v", err)
		}
	}
	applyFlags(v, map[string]any{
		"dice":  *diceFile,
		"rolls": *rolls,
		"form":  *form,
		"xlsx":  *xlsxPath,
		"seed":  *seed,
	})

	cfg, err := config.LoadFromViper(v)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	set, err := ruleset.LoadDiceSet(cfg.Simulation.DiceFile)
	if err != nil {
		logger.Fatal("loading dice set", zap.Error(err))
	}
	src := newSource(cfg.Simulation)
	logger.Info("dice set loaded",
		zap.String("id", set.ID),
		zap.String("file", cfg.Simulation.DiceFile),
		zap.String("source", cfg.Simulation.Source),
	)

	var runErr error
	if set.Numeric() {
		ds, err := set.BuildNumeric(src)
		if err != nil {
			logger.Fatal("building dice", zap.Error(err))
		}
		runErr = run(logger, cfg, set.ID, ds)
	} else {
		ds, err := set.Build(src)
		if err != nil {
			logger.Fatal("building dice", zap.Error(err))
		}
		runErr = run(logger, cfg, set.ID, ds)
	}
	if err := runErr; err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}

	logger.Info("simulation complete", zap.Duration("elapsed", time.Since(start)))
}

// applyFlags layers explicitly set flags over the config file and environment.
func applyFlags(v *viper.Viper, values map[string]any) {
	keys := map[string]string{
		"dice":  "simulation.dice_file",
		"rolls": "simulation.rolls",
		"form":  "report.form",
		"xlsx":  "report.xlsx_path",
		"seed":  "simulation.seed",
	}
	flag.Visit(func(f *flag.Flag) {
		key, ok := keys[f.Name]
		if !ok {
			return
		}
		v.Set(key, values[f.Name])
		if f.Name == "seed" {
			v.Set("simulation.source", "seeded")
		}
	})
}

func newSource(cfg config.SimulationConfig) dice.Source {
	if cfg.Source == "seeded" {
		return dice.NewSeededSource(cfg.Seed)
	}
	return dice.NewCryptoSource()
}

func run[F cmp.Ordered](logger *zap.Logger, cfg config.Config, setID string, ds []*dice.Die[F]) error {
	game, err := play.NewGame(ds, logger.Named("play"))
	if err != nil {
		return err
	}
	if err := game.Play(cfg.Simulation.Rolls); err != nil {
		return err
	}
	analyzer, err := analysis.New(game)
	if err != nil {
		return err
	}
	logger = observability.ForSession(logger, setID, game.SessionID())
	logger.Info("session played",
		zap.Int("rolls", analyzer.Rolls()),
		zap.Int("dice", analyzer.DiceCount()),
		zap.Int("jackpots", analyzer.Jackpot()),
	)

	rep, err := report.Build(setID, analyzer, play.Form(cfg.Report.Form))
	if err != nil {
		return err
	}
	opts := report.TextOptions{Locale: cfg.Report.Locale, MaxRows: cfg.Report.MaxRows}
	if err := report.WriteText(os.Stdout, rep, opts); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if cfg.Report.XLSXPath != "" {
		if err := report.WriteXLSX(cfg.Report.XLSXPath, rep); err != nil {
			return err
		}
		logger.Info("workbook written", zap.String("path", cfg.Report.XLSXPath))
	}
	return nil
}
