package main

import (
	"github.com/bnema/d3dgrab/internal/logger"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		logger.Infof("d3dgrab %s", version)
	},
}
