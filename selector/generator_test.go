package selector

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseGenerator(t *testing.T) {
	Convey("ParseGenerator", t, func() {
		Convey("Resolves named strategies case-insensitively", func() {
			for input, want := range map[string]Kind{
				"static":    KindStatic,
				"STATIC":    KindStatic,
				"Random":    KindRandom,
				" weekday ": KindWeekday,
				"WeekDay":   KindWeekday,
			} {
				g, err := ParseGenerator(input)
				So(err, ShouldBeNil)
				So(g.Kind(), ShouldEqual, want)
			}
		})

		Convey("Resolves integers to an index", func() {
			g, err := ParseGenerator("3")
			So(err, ShouldBeNil)
			So(g.Kind(), ShouldEqual, KindIndex)
			So(g.Index(), ShouldEqual, 3)
		})

		Convey("Rejects an unsupported generator", func() {
			_, err := ParseGenerator("biweekly")
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "biweekly")
		})

		Convey("Suggests the closest strategy", func() {
			_, err := ParseGenerator("randm")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "random"`)

			_, err = ParseGenerator("week")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "weekday"`)
		})

		Convey("Reports an index too large for an int as out of range", func() {
			_, err := ParseGenerator("99999999999999999999")
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			So(errors.Is(err, ErrInvalidArgument), ShouldBeFalse)
			So(err.Error(), ShouldNotContainSubstring, "did you mean")

			_, err = ParseGenerator("-99999999999999999999")
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("Rejects an empty string", func() {
			_, err := ParseGenerator("")
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestGeneratorOf(t *testing.T) {
	Convey("GeneratorOf", t, func() {
		Convey("Accepts integers", func() {
			g, err := GeneratorOf(int64(5))
			So(err, ShouldBeNil)
			So(g, ShouldResemble, ByIndex(5))
		})

		Convey("Accepts strings", func() {
			g, err := GeneratorOf("random")
			So(err, ShouldBeNil)
			So(g, ShouldResemble, Random())
		})

		Convey("Defaults nil to index 0", func() {
			g, err := GeneratorOf(nil)
			So(err, ShouldBeNil)
			So(g, ShouldResemble, ByIndex(0))
		})

		Convey("Accepts unsigned integers", func() {
			g, err := GeneratorOf(uint(3))
			So(err, ShouldBeNil)
			So(g, ShouldResemble, ByIndex(3))

			g, err = GeneratorOf(uint64(6))
			So(err, ShouldBeNil)
			So(g, ShouldResemble, ByIndex(6))
		})

		Convey("Reports unsigned values beyond int as out of range", func() {
			_, err := GeneratorOf(uint64(math.MaxUint64))
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("Accepts whole numbers decoded from JSON", func() {
			var decoded map[string]any
			So(json.Unmarshal([]byte(`{"generator":2}`), &decoded), ShouldBeNil)

			g, err := GeneratorOf(decoded["generator"])
			So(err, ShouldBeNil)
			So(g, ShouldResemble, ByIndex(2))

			g, err = GeneratorOf(json.Number("4"))
			So(err, ShouldBeNil)
			So(g, ShouldResemble, ByIndex(4))
		})

		Convey("Rejects fractional and non-finite numbers", func() {
			for _, v := range []float64{2.5, math.NaN(), math.Inf(1)} {
				_, err := GeneratorOf(v)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			}
		})

		Convey("Reports floats beyond int as out of range", func() {
			_, err := GeneratorOf(1e30)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("Rejects other types", func() {
			_, err := GeneratorOf([]int{1})
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestGeneratorText(t *testing.T) {
	Convey("Generators round trip through their text form", t, func() {
		for _, g := range []Generator{ByIndex(4), Static(), Random(), Weekday()} {
			parsed, err := ParseGenerator(g.String())
			So(err, ShouldBeNil)
			So(parsed, ShouldResemble, g)
		}

		Convey("And decode from JSON", func() {
			var v struct {
				Generator Generator `json:"generator"`
			}
			So(json.Unmarshal([]byte(`{"generator":"Weekday"}`), &v), ShouldBeNil)
			So(v.Generator, ShouldResemble, Weekday())

			err := json.Unmarshal([]byte(`{"generator":"monthly"}`), &v)
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})
	})
}
