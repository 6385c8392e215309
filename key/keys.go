// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Appearance - these keys govern the visual theme of the interactive form.
const (
	ThemeMode = "theme.mode"
)

// Terminal User Interface (TUI) - these keys define the initial state of the interactive form.
const (
	TUIDefaultCategory = "tui.default_category"
	TUIShowHelp        = "tui.show_help"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)

// HTTP Service - these keys configure the stateless conversion endpoint.
const (
	ServeAddr            = "serve.addr"
	ServeShutdownTimeout = "serve.shutdown_timeout"
)
