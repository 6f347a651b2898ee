// Package config loads the dashboard configuration.
//
// Values are resolved with viper in this order, later sources winning:
// built-in defaults, the YAML config file, then ELYSIUM_* environment
// variables. Nested keys map to environment names by replacing "." and "-"
// with "_", so refresh.on-tab-change becomes ELYSIUM_REFRESH_ON_TAB_CHANGE.
//
// # Configuration File Location
//
// Unless --config names a file, the configuration is read from:
//   - Linux: $XDG_CONFIG_HOME/elysium/config.yaml or $HOME/.config/elysium/config.yaml
//   - macOS: $HOME/.config/elysium/config.yaml
//   - Windows: %LOCALAPPDATA%\elysium\config.yaml
//
// A missing default file is not an error.
//
// # Example
//
//	tick-rate: 1s
//	frame-rate: 10
//	shutdown-grace: 2s
//	filter:
//	  fuzzy: true
//	refresh:
//	  on-tab-change: false
//	styles:
//	  highlight:
//	    fg: "#4c4f69"
//	    bg: "#ffffff"
//	keybindings:
//	  normal:
//	    x: quit
//	    "3": tab:deployments
//	  global:
//	    ctrl+r: refresh
//
// Key names are case-insensitive in the file, so bind letters in lowercase.
package config
