package cmd

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vimeolb/vimeolb/config"
	"github.com/vimeolb/vimeolb/filesystem"
	"github.com/vimeolb/vimeolb/key"
	"github.com/vimeolb/vimeolb/selector"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestNewSelector(t *testing.T) {
	Convey("Given configured videos", t, func() {
		Reset(func() {
			viper.Set(key.Videos, []string{})
			viper.Set(key.PlayerAutoplay, true)
		})

		Convey("The selector follows the configuration", func() {
			viper.Set(key.Videos, []string{"a", "b", "c"})
			viper.Set(key.PlayerAutoplay, false)

			s, err := newSelector()
			So(err, ShouldBeNil)
			So(s.Videos, ShouldResemble, []string{"a", "b", "c"})
			So(s.Autoplay, ShouldBeFalse)
		})

		Convey("A blank entry is rejected instead of shifting later indices", func() {
			viper.Set(key.Videos, []string{"sun", "", "tue", "wed", "thu", "fri", "sat"})

			s, err := newSelector()
			So(s, ShouldBeNil)
			So(errors.Is(err, selector.ErrInvalidArgument), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "index 1")

			viper.Set(key.Videos, []string{"sun", "mon", "  "})
			_, err = newSelector()
			So(err.Error(), ShouldContainSubstring, "index 2")
		})

		Convey("Configured positions are kept as given", func() {
			viper.Set(key.Videos, []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"})

			s, err := newSelector()
			So(err, ShouldBeNil)

			id, err := s.VideoID(selector.ByIndex(2))
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "tue")

			s.Clock = selector.ClockFunc(func() time.Time {
				return time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local)
			})
			id, err = s.VideoID(selector.Weekday())
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "mon")
		})

		Convey("An empty list is rejected", func() {
			viper.Set(key.Videos, []string{})
			_, err := newSelector()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.Videos)
		})
	})
}

func TestResolveGenerator(t *testing.T) {
	Convey("Given a configured generator", t, func() {
		viper.Set(key.SelectGenerator, "weekday")
		Reset(func() { viper.Set(key.SelectGenerator, "0") })

		Convey("It is used without arguments", func() {
			g, err := resolveGenerator(nil)
			So(err, ShouldBeNil)
			So(g, ShouldResemble, selector.Weekday())
		})

		Convey("An argument takes precedence", func() {
			g, err := resolveGenerator([]string{"4"})
			So(err, ShouldBeNil)
			So(g, ShouldResemble, selector.ByIndex(4))
		})

		Convey("An empty configuration selects index 0", func() {
			viper.Set(key.SelectGenerator, "")
			g, err := resolveGenerator(nil)
			So(err, ShouldBeNil)
			So(g, ShouldResemble, selector.ByIndex(0))
		})

		Convey("Unknown generators are rejected", func() {
			_, err := resolveGenerator([]string{"biweekly"})
			So(errors.Is(err, selector.ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestResolveFramework(t *testing.T) {
	Convey("Given a configured framework", t, func() {
		Reset(func() { viper.Set(key.EmbedFramework, "bootstrap4") })

		Convey("Known names resolve", func() {
			viper.Set(key.EmbedFramework, "bootstrap5")
			f, err := resolveFramework()
			So(err, ShouldBeNil)
			So(f, ShouldEqual, selector.Bootstrap5)
		})

		Convey("Unknown names are rejected", func() {
			viper.Set(key.EmbedFramework, "pure")
			_, err := resolveFramework()
			So(errors.Is(err, selector.ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("An empty name is rejected", func() {
			viper.Set(key.EmbedFramework, "")
			_, err := resolveFramework()
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("parseValue follows the field's default type", t, func() {
		v, err := parseValue(config.Default[key.PlayerAutoplay], []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(config.Default[key.Videos], []string{"1", "2"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"1", "2"})

		v, err = parseValue(config.Default[key.SelectGenerator], []string{"random"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "random")

		_, err = parseValue(config.Default[key.LogsWrite], []string{"maybe"})
		So(err, ShouldNotBeNil)
	})
}
