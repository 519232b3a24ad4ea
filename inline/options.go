// Package inline implements the non-interactive, scriptable output mode.
package inline

import (
	"io"

	"github.com/samber/mo"
	"github.com/vimeolb/vimeolb/selector"
)

// Options configures a single inline run.
type Options struct {
	// Out receives the rendered result. Defaults to os.Stdout.
	Out       io.Writer
	Selector  *selector.Selector
	Generator selector.Generator
	// Framework enables HTML rendering when present.
	Framework mo.Option[selector.Framework]
	// Ratio overrides the framework default aspect ratio.
	Ratio mo.Option[string]
	Json  bool
}
