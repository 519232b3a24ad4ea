// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Video Catalogue - the ordered list of selectable video identifiers.
const (
	Videos = "videos.list"
)

// Player - settings applied to generated player URLs and embeds.
const (
	PlayerAutoplay = "player.autoplay"
)

// Selection - the strategy used when no generator is given on the command line.
const (
	SelectGenerator = "select.generator"
)

// Embed Markup - defaults for rendered HTML snippets.
const (
	EmbedFramework = "embed.framework"
	EmbedRatio     = "embed.ratio"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Command Line Interface (CLI) - these keys configure global console behavior.
const (
	CliColored = "cli.colored"
)

// Diagnostic Logging - these keys control the verbosity and persistence of application logs.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
