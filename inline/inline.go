package inline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vimeolb/vimeolb/log"
	"github.com/vimeolb/vimeolb/selector"
)

type result struct {
	id, url   string
	framework selector.Framework
	ratio     string
	html      string
}

// Run selects a video once and writes its id, URL and, if a framework is set, embed markup.
func Run(options *Options) error {
	if options.Selector == nil {
		return errors.New("inline: no selector configured")
	}

	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	r, err := resolve(options)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"generator": options.Generator.String(),
		"video":     r.id,
		"framework": string(r.framework),
	}).Info("video selected")

	if options.Json {
		data, err := asJson(options.Generator, r, options.Selector.Autoplay)
		if err != nil {
			return err
		}
		_, err = out.Write(append(data, '\n'))
		return err
	}

	return writeText(out, r)
}

// resolve picks the video a single time so random and weekday generators yield a consistent id, URL and embed.
func resolve(options *Options) (*result, error) {
	s := options.Selector

	framework, hasFramework := options.Framework.Get()
	if hasFramework {
		parsed, err := selector.ParseFramework(string(framework))
		if err != nil {
			return nil, err
		}
		framework = parsed
	}

	id, err := s.VideoID(options.Generator)
	if err != nil {
		return nil, fmt.Errorf("select video: %w", err)
	}

	r := &result{id: id, url: s.BuildURL(id)}
	if !hasFramework {
		return r, nil
	}

	r.framework = framework
	r.ratio = strings.TrimSpace(options.Ratio.OrElse(""))
	if r.ratio == "" {
		r.ratio = framework.DefaultRatio()
	}

	r.html, err = s.Embed(id, r.ratio, framework)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func writeText(out io.Writer, r *result) error {
	lines := []string{r.id, r.url}
	if r.html != "" {
		lines = append(lines, r.html)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
