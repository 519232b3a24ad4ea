package selector

import (
	"fmt"
	"html"
	"strings"

	"github.com/samber/lo"
)

// Framework names a CSS framework whose responsive embed markup is rendered.
type Framework string

const (
	Bootstrap4 Framework = "bootstrap4"
	Bootstrap5 Framework = "bootstrap5"
)

// layout describes the class names a framework expects on the embed container and the iframe.
type layout struct {
	containerPrefix string
	item            string
	defaultRatio    string
}

var layouts = map[Framework]layout{
	Bootstrap4: {
		containerPrefix: "embed-responsive embed-responsive-",
		item:            "embed-responsive-item",
		defaultRatio:    "16by9",
	},
	Bootstrap5: {
		containerPrefix: "ratio ratio-",
		defaultRatio:    "16x9",
	},
}

// Frameworks returns all supported frameworks.
func Frameworks() []Framework {
	return []Framework{Bootstrap4, Bootstrap5}
}

// FrameworkNames returns the names of all supported frameworks.
func FrameworkNames() []string {
	return lo.Map(Frameworks(), func(f Framework, _ int) string {
		return string(f)
	})
}

// ParseFramework resolves a framework by name, ignoring case and surrounding space.
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := layouts[f]; !ok {
		return "", errUnknown("framework", s, FrameworkNames())
	}

	return f, nil
}

// DefaultRatio returns the aspect ratio token used when none is given, e.g. "16by9" for Bootstrap 4.
func (f Framework) DefaultRatio() string {
	return layouts[f].defaultRatio
}

// allowFeatures returns the iframe permission policy for the autoplay setting.
func allowFeatures(autoplay bool) string {
	features := []string{"fullscreen", "picture-in-picture"}
	if autoplay {
		features = append([]string{"autoplay"}, features...)
	}

	return strings.Join(features, "; ")
}

// Embed renders the responsive iframe markup for a video id.
func (s *Selector) Embed(id, ratio string, framework Framework) (string, error) {
	framework, err := ParseFramework(string(framework))
	if err != nil {
		return "", err
	}

	l := layouts[framework]
	if ratio = strings.TrimSpace(ratio); ratio == "" {
		ratio = l.defaultRatio
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<div class='%s%s'>", l.containerPrefix, html.EscapeString(ratio))
	b.WriteString("<iframe")
	if l.item != "" {
		fmt.Fprintf(&b, " class='%s'", l.item)
	}
	fmt.Fprintf(
		&b,
		" frameborder='0' src='%s' allow='%s' allowfullscreen webkitallowfullscreen mozallowfullscreen></iframe>",
		html.EscapeString(s.BuildURL(id)),
		allowFeatures(s.Autoplay),
	)
	b.WriteString("</div>")

	return b.String(), nil
}
