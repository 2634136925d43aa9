package main

import (
	"fmt"

	"github.com/mkraun/timerbench/pkg/bench/config"
	"github.com/mkraun/timerbench/pkg/bench/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the benchmark configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved benchmark parameters",
	RunE: func(_ *cobra.Command, _ []string) error {
		path := viper.GetString("config_file")
		if path == "" {
			path = config.DefaultConfigFile
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		fmt.Println(report.KV("Config file", path))
		fmt.Println(report.Params(cfg.Params))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file if none exists",
	RunE: func(_ *cobra.Command, _ []string) error {
		path := viper.GetString("config_file")
		if path == "" {
			path = config.DefaultConfigFile
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Println(report.KV("Config file", path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
