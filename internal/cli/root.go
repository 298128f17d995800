package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xrpld",
	Short: "goXRPLd - XRPL canonical binary codec tool",
	Long: `xrpld is a command-line front end for goXRPLd's canonical binary
codec: the field-tagged wire format XRPL transactions and ledger entries are
serialized in. It encodes JSON field maps to the canonical hex blob and back,
and produces the hash-prefixed blobs used for single-signing, multisigning,
payment channel claims, and batch transactions.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "accepted for compatibility; no command produces debug output")
}

// initConfig reads defaults (e.g. a default multisigning account) from a
// config file and the environment, via internal/cli's Config loader.
func initConfig() {
	if err := loadConfig(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
