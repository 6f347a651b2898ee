package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/elysium/internal/config"
	"github.com/muurk/elysium/internal/fleet"
	"github.com/muurk/elysium/internal/fleet/awsfleet"
	"github.com/muurk/elysium/internal/keybind"
	"github.com/muurk/elysium/internal/logging"
	"github.com/muurk/elysium/internal/terminal"
	"github.com/muurk/elysium/internal/tui"
	"github.com/muurk/elysium/internal/tui/components"
	"github.com/muurk/elysium/internal/ui"
	"github.com/muurk/elysium/internal/version"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	switch {
	case dumpConfig:
		return cfg.Dump(cmd.OutOrStdout())
	case writeConfig:
		return saveConfig(cfg)
	}

	printer := ui.NewPrinter(os.Stderr)
	if !ui.IsTerminal() {
		printer.PrintError("Cannot start dashboard", errors.New("stdout is not a terminal"), []string{
			"Run elysium from an interactive terminal",
			"Use --dump-config to inspect the configuration from scripts",
		})
		return errReported
	}

	dataDir, err := config.GetDataDir()
	if err != nil {
		return fmt.Errorf("failed to get data directory: %w", err)
	}
	if err := logging.Initialize(cfg.LogLevel, filepath.Join(dataDir, logging.LogFileName)); err != nil {
		return err
	}
	defer logging.Sync()

	logging.Info("Starting dashboard",
		zap.String("version", version.Full()),
		zap.String("profile", cfg.Profile),
		zap.String("region", cfg.Region),
	)

	overrides, err := keybind.ParseOverrides(cfg.Keybindings)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	bindings := keybind.Default().With(overrides)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := awsfleet.New(ctx, cfg.Profile, cfg.Region)
	if err != nil {
		return reportStartup(printer, "Cannot connect to AWS", err)
	}
	shared := fleet.NewShared(src)
	if err := shared.Load(ctx); err != nil {
		return reportStartup(printer, "Cannot load fleet resources", err)
	}

	theme := ui.NewTheme(cfg.Styles)
	comps := []tui.Component{
		components.NewHeader(theme),
		components.NewTopLeft(shared, theme),
		components.NewTopRight(shared, theme, components.Session{Profile: src.Profile, Region: src.Region}),
		components.NewDataTable(shared, theme, components.TableOptions{
			Fuzzy:        cfg.Filter.Fuzzy,
			RefreshOnTab: cfg.Refresh.OnTabChange,
		}),
		components.NewHelpBar(theme, bindings),
	}

	term := terminal.New(terminal.Options{
		TickRate:      cfg.TickRate,
		FrameInterval: cfg.FrameInterval(),
		Mouse:         cfg.Mouse,
	})
	app := tui.NewApp(term, term, comps, tui.Options{
		Bindings:      bindings,
		ShutdownGrace: cfg.ShutdownGrace,
		ExportDir:     dataDir,
	})

	if err := app.Run(ctx); err != nil {
		return err
	}
	if msg := app.PostExitError(); msg != "" {
		printer.PrintError("Dashboard stopped", errors.New(msg), nil)
		return errReported
	}
	return nil
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("profile") {
		cfg.Profile = profile
	}
	if flags.Changed("region") {
		cfg.Region = region
	}
	if verbosity > 0 {
		cfg.LogLevel = logging.LevelFromVerbosity(verbosity)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func saveConfig(cfg *config.Config) error {
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}
	if err := cfg.WriteFile(path); err != nil {
		return err
	}
	ui.NewPrinter(os.Stderr).PrintSuccess("Configuration written", ui.Detail{Key: "Path", Value: path})
	return nil
}

// reportStartup prints err with its troubleshooting hints.
func reportStartup(printer *ui.Printer, title string, err error) error {
	logging.Error(title, zap.Error(err))

	var hints []string
	var srcErr *fleet.SourceError
	if errors.As(err, &srcErr) {
		hints = srcErr.Troubleshooting()
	}
	printer.PrintError(title, err, hints)
	return errReported
}
