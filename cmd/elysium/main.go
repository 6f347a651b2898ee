// Elysium is a terminal dashboard for AWS IoT Greengrass fleets.
//
// It lists the Greengrass core devices, IoT thing groups and Greengrass
// deployments of one AWS account and region in a filterable table, with a
// status chart and a session panel above it.
//
// Usage:
//
//	elysium [flags]
//
// Credentials come from the named AWS profile. See 'elysium --help' for the
// available flags.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/elysium/internal/config"
	"github.com/muurk/elysium/internal/version"
)

// errReported marks failures that have already been shown to the user.
var errReported = errors.New("reported")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elysium",
	Short: "Terminal dashboard for AWS IoT Greengrass fleets",
	Long: `A terminal dashboard for browsing AWS IoT Greengrass resources.

Shows core devices, thing groups and deployments for one AWS profile and
region. Press ? inside the dashboard for the key bindings.

Settings are read from the config file, then ELYSIUM_* environment
variables, then flags.`,
	Version:       version.Full(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Flags
var (
	profile     string
	region      string
	verbosity   int
	logLevel    string
	configPath  string
	dumpConfig  bool
	writeConfig bool
)

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	registerFlags(rootCmd)
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
}

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&profile, "profile", "p", config.DefaultProfile, "AWS profile name")
	flags.StringVarP(&region, "region", "r", config.DefaultRegion, "AWS region")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&configPath, "config", "", "Config file (default: <config dir>/elysium/config.yaml)")
	flags.BoolVar(&dumpConfig, "dump-config", false, "Print the effective configuration and exit")
	flags.BoolVar(&writeConfig, "write-config", false, "Write the effective configuration to the config file and exit")
}
