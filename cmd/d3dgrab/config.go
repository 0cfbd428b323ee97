package main

import (
	"github.com/bnema/d3dgrab/internal/config"
	"github.com/bnema/d3dgrab/internal/logger"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage d3dgrab configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		logger.Info("Current Configuration:")
		logger.Infof("Config file: %s\n", config.GetConfigPath())

		logger.Info("[Acquire]")
		logger.Infof("  Probe Device: %v", cfg.Acquire.Probe)
		logger.Infof("  Release After: %v", cfg.Acquire.ReleaseAfter)

		logger.Info("\n[Console]")
		logger.Infof("  Alloc Console: %v", cfg.Console.Alloc)

		logger.Info("\n[Logging]")
		logger.Infof("  File Logging: %v", cfg.Logging.FileLogging)
		logger.Infof("  Log Level: %s", cfg.Logging.LogLevel)

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively write a config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *config.Get()

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Log level").
					Description("Verbosity for the CLI and the injected library").
					Options(
						huh.NewOption("debug", "debug"),
						huh.NewOption("info", "info"),
						huh.NewOption("warn", "warn"),
						huh.NewOption("error", "error"),
					).
					Value(&cfg.Logging.LogLevel),
				huh.NewConfirm().
					Title("Allocate a console when injected?").
					Description("Gives the DLL entry point somewhere to print diagnostics").
					Value(&cfg.Console.Alloc),
				huh.NewConfirm().
					Title("Probe the device after acquisition?").
					Value(&cfg.Acquire.Probe),
				huh.NewConfirm().
					Title("Release the device when the CLI exits?").
					Value(&cfg.Acquire.ReleaseAfter),
			),
		)

		if err := form.Run(); err != nil {
			return err
		}

		config.Update(&cfg)
		if err := config.Save(); err != nil {
			return err
		}

		logger.Infof("Configuration saved to %s", config.GetConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
