package selector

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	. "github.com/smartystreets/goconvey/convey"
)

func parseEmbed(markup string) (*goquery.Selection, *goquery.Selection) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	So(err, ShouldBeNil)

	div := doc.Find("body > div")
	So(div.Length(), ShouldEqual, 1)

	iframe := div.ChildrenFiltered("iframe")
	So(iframe.Length(), ShouldEqual, 1)

	return div, iframe
}

func TestHTML(t *testing.T) {
	Convey("Given a week of videos", t, func() {
		s := New(week)

		Convey("Bootstrap 4 markup for index 2", func() {
			markup, err := s.HTML(ByIndex(2), "16by9", Bootstrap4)
			So(err, ShouldBeNil)
			So(markup, ShouldContainSubstring, "embed-responsive-16by9")

			div, iframe := parseEmbed(markup)
			So(div.AttrOr("class", ""), ShouldEqual, "embed-responsive embed-responsive-16by9")
			So(iframe.HasClass("embed-responsive-item"), ShouldBeTrue)
			So(iframe.AttrOr("src", ""), ShouldEqual, "https://player.vimeo.com/video/c?autoplay=1&")
			So(iframe.AttrOr("allow", ""), ShouldEqual, "autoplay; fullscreen; picture-in-picture")

			for _, attr := range []string{"allowfullscreen", "webkitallowfullscreen", "mozallowfullscreen"} {
				_, ok := iframe.Attr(attr)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Bootstrap 5 markup uses the ratio classes", func() {
			markup, err := s.HTML(Static(), "4x3", Bootstrap5)
			So(err, ShouldBeNil)
			So(markup, ShouldNotContainSubstring, "embed-responsive")

			div, iframe := parseEmbed(markup)
			So(div.AttrOr("class", ""), ShouldEqual, "ratio ratio-4x3")
			So(iframe.AttrOr("src", ""), ShouldEqual, "https://player.vimeo.com/video/a?autoplay=1&")
		})

		Convey("Without autoplay the allow attribute stays well formed", func() {
			s.Autoplay = false
			for _, f := range Frameworks() {
				markup, err := s.HTML(ByIndex(1), "", f)
				So(err, ShouldBeNil)
				So(markup, ShouldNotContainSubstring, "' fullscreen;")

				_, iframe := parseEmbed(markup)
				So(iframe.AttrOr("allow", ""), ShouldEqual, "fullscreen; picture-in-picture")
				So(iframe.AttrOr("src", ""), ShouldEndWith, "/video/b?autoplay=0&")
			}
		})

		Convey("An empty ratio falls back to the framework default", func() {
			for _, f := range Frameworks() {
				markup, err := s.HTML(Static(), " ", f)
				So(err, ShouldBeNil)
				So(markup, ShouldContainSubstring, "-"+f.DefaultRatio()+"'")
			}
		})

		Convey("Attribute values are escaped", func() {
			markup, err := s.Embed("x'><script>", "16by9'", Bootstrap4)
			So(err, ShouldBeNil)
			So(markup, ShouldNotContainSubstring, "<script>")

			div, iframe := parseEmbed(markup)
			So(div.AttrOr("class", ""), ShouldEqual, "embed-responsive embed-responsive-16by9'")
			So(iframe.AttrOr("src", ""), ShouldEqual, "https://player.vimeo.com/video/x'><script>?autoplay=1&")
		})

		Convey("An unknown framework is rejected", func() {
			markup, err := s.HTML(ByIndex(0), "16by9", Framework("foundation"))
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			So(markup, ShouldBeEmpty)
		})

		Convey("An unknown framework does not consume a random pick", func() {
			var calls int
			s.Rand = RandFunc(func(int) int {
				calls++
				return 0
			})

			_, err := s.HTML(Random(), "", Framework("bulma"))
			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 0)
		})

		Convey("Selection errors propagate", func() {
			_, err := s.HTML(ByIndex(9), "16by9", Bootstrap4)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})
	})
}

func TestParseFramework(t *testing.T) {
	Convey("ParseFramework", t, func() {
		Convey("Accepts known names in any case", func() {
			f, err := ParseFramework(" Bootstrap5 ")
			So(err, ShouldBeNil)
			So(f, ShouldEqual, Bootstrap5)
		})

		Convey("Suggests the closest framework", func() {
			_, err := ParseFramework("bootstrap3")
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "did you mean")
		})

		Convey("Knows every default ratio", func() {
			So(Bootstrap4.DefaultRatio(), ShouldEqual, "16by9")
			So(Bootstrap5.DefaultRatio(), ShouldEqual, "16x9")
		})
	})
}
