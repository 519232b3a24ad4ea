package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vimeolb/vimeolb/key"
	"github.com/vimeolb/vimeolb/log"
	"github.com/vimeolb/vimeolb/selector"
	"github.com/vimeolb/vimeolb/where"
)

// newSelector builds a selector from the configured video list and player settings.
func newSelector() (*selector.Selector, error) {
	videos := viper.GetStringSlice(key.Videos)
	if len(videos) == 0 {
		return nil, fmt.Errorf(
			"no videos configured, set %s in %s or pass --videos",
			key.Videos,
			where.ConfigFile(),
		)
	}

	// indices address configured positions, blanks are not skipped
	if _, i, found := lo.FindIndexOf(videos, func(id string) bool {
		return strings.TrimSpace(id) == ""
	}); found {
		return nil, fmt.Errorf("%w: %s has an empty video id at index %d", selector.ErrInvalidArgument, key.Videos, i)
	}

	s := selector.New(videos)
	s.Autoplay = viper.GetBool(key.PlayerAutoplay)

	log.Debugf("selector ready with %d videos, autoplay=%t", len(videos), s.Autoplay)
	return s, nil
}

// resolveGenerator returns the generator named by the first argument, falling back to the configured one.
func resolveGenerator(args []string) (selector.Generator, error) {
	raw := viper.GetString(key.SelectGenerator)
	if len(args) > 0 {
		raw = args[0]
	}

	if raw == "" {
		return selector.Generator{}, nil
	}

	return selector.ParseGenerator(raw)
}

// resolveFramework returns the configured framework, which defaults to bootstrap4.
func resolveFramework() (selector.Framework, error) {
	name := viper.GetString(key.EmbedFramework)
	if name == "" {
		return "", errors.New("no embed framework configured")
	}

	return selector.ParseFramework(name)
}
