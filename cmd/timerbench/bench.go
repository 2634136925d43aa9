package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/google/uuid"
	"github.com/mkraun/timerbench/pkg/bench/config"
	"github.com/mkraun/timerbench/pkg/bench/logging"
	"github.com/mkraun/timerbench/pkg/bench/platform"
	"github.com/mkraun/timerbench/pkg/bench/proc"
	"github.com/mkraun/timerbench/pkg/bench/report"
	"github.com/mkraun/timerbench/pkg/bench/results"
	"github.com/mkraun/timerbench/pkg/bench/sweep"
	"github.com/mkraun/timerbench/pkg/bench/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runBench is the root command handler: preflight checks, the sweep itself,
// and the final reduction.
func runBench(_ *cobra.Command, _ []string) error {
	noInput := viper.GetBool("no_input")
	stdin := bufio.NewReader(os.Stdin)

	printInfo("%s", report.Banner(version))

	// Elevation is a hard precondition for everything else: the setter
	// cannot apply a resolution without it.
	host := &platform.Host{}
	if !host.Elevated() {
		printError("administrator privileges required")
		return errors.New("administrator privileges required: run this program as administrator")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	printInfo("%s", report.Section("System"))
	printInfo("%s", report.KV("Working directory", cwd))
	printInfo("%s", report.KV("Elevation", report.SuccessStyle.Render("confirmed")))
	printInfo("")

	cfgPath := viper.GetString("config_file")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigFile
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		printError("%v", err)
		return err
	}

	logCfg := logging.Config{
		Level:      cfg.Logging.Level,
		Path:       cfg.Logging.Path,
		Rotation:   logging.DefaultRotationConfig(),
		Components: cfg.Logging.Components,
	}
	if viper.GetBool("verbose") {
		logCfg.ConsoleLevel = "debug"
	}
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	runID := uuid.NewString()[:8]
	log := logging.Get("bench").With("run", runID)

	reportTimerSource(host, stdin, noInput)

	params := cfg.Params
	if !noInput {
		edited, changed, err := editParams(stdin, params)
		if err != nil {
			return fmt.Errorf("reading parameters: %w", err)
		}
		if err := edited.Validate(); err != nil {
			return err
		}
		params = edited
		if changed && viper.GetBool("save_config") {
			if err := config.Save(cfgPath, params); err != nil {
				log.Warn("failed to save edited parameters", "error", err)
			} else {
				printInfo("%s", report.KV("Saved", cfgPath))
			}
		}
	}
	printInfo("%s\n", report.Params(params))

	located, err := tools.Locate(viper.GetString("setter"), viper.GetString("sampler"))
	if err != nil {
		printError("%v", err)
		return err
	}
	printInfo("%s", report.Section("Dependencies"))
	printInfo("%s", report.KV("Resolution setter", located.SetterPath))
	printInfo("%s", report.KV("Sampler", located.SamplerPath))
	printInfo("")

	if !noInput {
		if err := pressEnter(stdin, "Press Enter to start the benchmark..."); err != nil {
			return err
		}
	}

	resultsPath := viper.GetString("results")
	store, err := results.Create(resultsPath)
	if err != nil {
		return err
	}
	printInfo("%s", report.KV("Results file", resultsPath))

	controller := proc.NewController(proc.SystemExecer(), located.SetterPath, located.SamplerPath)
	driver := sweep.New(controller, store)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	quiet := viper.GetBool("quiet")
	driver.OnRound = func(p sweep.Progress) {
		if quiet {
			return
		}
		total := max(p.Planned, p.Round)
		fmt.Printf("\r%s %d/%d  %.4f ms", bar.ViewAs(float64(p.Round)/float64(total)), p.Round, total, p.ResolutionMs)
	}

	started := time.Now()
	log.Info("benchmark starting", "config", cfgPath, "results", resultsPath)

	recorded, runErr := driver.Run(params)
	if !quiet {
		fmt.Println()
	}
	if err := store.Close(); err != nil {
		log.Warn("failed to close results store", "error", err)
	}
	if runErr != nil {
		printError("sweep aborted: %v", runErr)
		return runErr
	}
	log.Info("benchmark finished", "recorded", len(recorded), "elapsed", time.Since(started))

	// The durable store is the authority: re-read it rather than trusting
	// the in-memory rounds.
	stored, err := results.ReadAll(resultsPath)
	if err != nil {
		return err
	}

	best, ok := results.Reduce(stored)
	if !ok {
		printError("no valid data found in %s", resultsPath)
		return fmt.Errorf("no valid data found in %s", resultsPath)
	}

	printInfo("\n%s", report.Section("Results"))
	printInfo("%s", report.Table(stored))
	printInfo("%s", report.Optimal(best, results.Summarize(stored)))
	printInfo("%s", report.KV("Elapsed", time.Since(started).Round(time.Millisecond).String()))

	if chartPath := viper.GetString("chart"); chartPath != "" {
		if err := report.WriteChart(stored, chartPath); err != nil {
			log.Warn("failed to write chart", "path", chartPath, "error", err)
			printInfo("%s", report.Warn(fmt.Sprintf("chart not written: %v", err)))
		} else {
			printInfo("%s", report.KV("Chart", chartPath))
		}
	}

	if !noInput {
		_ = pressEnter(stdin, "Press Enter to exit...")
	}
	return nil
}

// reportTimerSource prints the timer-source status and, interactively,
// offers to rewrite the boot configuration when the platform clock is still
// enabled.
func reportTimerSource(host *platform.Host, stdin *bufio.Reader, noInput bool) {
	log := logging.Get("platform")

	printInfo("%s", report.Section("Timer source"))
	status, err := host.TimerSource()
	if err != nil {
		log.Warn("timer-source inspection failed", "error", err)
		printInfo("%s", report.Warn(fmt.Sprintf("HPET status unknown: %v", err)))
		printInfo("")
		return
	}

	printInfo("%s", report.KV("HPET", status.String()))
	if status != platform.TimerSourceEnabled {
		printInfo("")
		return
	}

	printInfo("%s", report.Warn("HPET is enabled; disabling it usually improves timer consistency."))
	if noInput {
		printInfo("")
		return
	}

	if confirm(stdin, "Rewrite boot configuration to disable it (takes effect after reboot)?") {
		if err := host.DisableTimerSource(); err != nil {
			log.Error("timer-source remediation failed", "error", err)
			printError("%v", err)
		} else {
			printInfo("%s", report.SuccessStyle.Render("Boot configuration updated; reboot to apply."))
		}
	}
	printInfo("")
}
