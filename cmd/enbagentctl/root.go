package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/5g-empower/empower-enb-agent/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "enbagentctl",
	Short: "eNB agent TLV framer control plane",
	Long:  "enbagentctl drives the controller/agent request-response TLV codec over a blocking TCP framer.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Sugar.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML framer config (optional; documented defaults apply otherwise)")
}
