package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "timerbench",
	Short: "Find the optimal Windows timer resolution",
	Long: `Timerbench sweeps the requested timer resolution across a configured
range, measuring actual sleep latency at each step, and reports the
resolution with the lowest observed delta.

It requires administrator privileges and the SetTimerResolution.exe and
MeasureSleep.exe helpers next to the timerbench binary.

Examples:
  timerbench                        # Interactive run with appsettings.json
  timerbench --no-input             # Unattended run
  timerbench --chart results.html   # Also write an HTML chart
  timerbench config init            # Write a starter appsettings.json`,
	SilenceUsage: true,
	RunE:         runBench,
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default: appsettings.json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output to stderr")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")

	rootCmd.Flags().String("results", "results.txt", "results file path")
	rootCmd.Flags().String("setter", "", "path to the resolution-setter executable")
	rootCmd.Flags().String("sampler", "", "path to the sampler executable")
	rootCmd.Flags().String("chart", "", "write an HTML chart of the results to this path")
	rootCmd.Flags().BoolP("no-input", "n", false, "run unattended: no prompts, config values used as-is")
	rootCmd.Flags().Bool("save-config", false, "write interactively edited parameters back to the config file")

	_ = viper.BindPFlag("config_file", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("results", rootCmd.Flags().Lookup("results"))
	_ = viper.BindPFlag("setter", rootCmd.Flags().Lookup("setter"))
	_ = viper.BindPFlag("sampler", rootCmd.Flags().Lookup("sampler"))
	_ = viper.BindPFlag("chart", rootCmd.Flags().Lookup("chart"))
	_ = viper.BindPFlag("no_input", rootCmd.Flags().Lookup("no-input"))
	_ = viper.BindPFlag("save_config", rootCmd.Flags().Lookup("save-config"))
}

// initViper wires environment overrides for the flag keys.
func initViper() {
	viper.SetEnvPrefix("TIMERBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// printInfo prints a message unless quiet mode is enabled.
func printInfo(format string, args ...interface{}) {
	if !viper.GetBool("quiet") {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
