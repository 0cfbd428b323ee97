package main

import (
	"fmt"
	"os"

	"github.com/bnema/d3dgrab/internal/config"
	"github.com/bnema/d3dgrab/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Version info set during build
	version = "0.1.0-dev"

	configPath string

	rootCmd = &cobra.Command{
		Use:   "d3dgrab",
		Short: "Acquire a Direct3D 9 device from the current process",
		Long: `d3dgrab resolves a live Direct3D 9 device for the calling process without
creating a window of its own: it finds a top-level window owned by the
process and binds a device to it, falling back once between fullscreen-style
and windowed creation. The same routine ships as a c-shared library for
injection into a running application.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			cfg := config.Get()
			if cfg.Logging.LogLevel != "" {
				logger.SetLevel(cfg.Logging.LogLevel)
			}
			if cfg.Logging.FileLogging {
				if err := logger.EnableFileLogging("d3dgrab.log"); err != nil {
					logger.Warnf("file logging disabled: %v", err)
				}
			}
			return nil
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	rootCmd.AddCommand(acquireCmd)
	rootCmd.AddCommand(windowsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
