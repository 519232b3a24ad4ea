// Package selector picks a Vimeo video identifier from a fixed list and formats player URLs and embed markup for it.
package selector

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// PlayerURL is the base address of the hosted Vimeo player.
const PlayerURL = "https://player.vimeo.com/video/"

// Clock supplies the current time for weekday selection.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// Rand supplies uniformly distributed integers in [0, n).
type Rand interface {
	IntN(n int) int
}

// RandFunc adapts a function to the Rand interface.
type RandFunc func(n int) int

// IntN calls f.
func (f RandFunc) IntN(n int) int { return f(n) }

// Selector holds an ordered list of video identifiers and the player settings applied to them.
//
// Index 0 is the static video, indices 0 through 6 are the videos served on
// Sunday through Saturday. Selector methods never modify its fields.
type Selector struct {
	// Videos are the selectable video identifiers.
	Videos []string
	// Autoplay toggles the autoplay query parameter and permission.
	Autoplay bool
	// Clock is used by weekday selection. Defaults to the local wall clock.
	Clock Clock
	// Rand is used by random selection. Defaults to the process-level source.
	Rand Rand
}

// New returns a Selector over videos with autoplay enabled and the default clock and random source.
func New(videos []string) *Selector {
	return &Selector{
		Videos:   videos,
		Autoplay: true,
		Clock:    ClockFunc(time.Now),
		Rand:     RandFunc(rand.IntN),
	}
}

func (s *Selector) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s *Selector) intN(n int) int {
	if s.Rand == nil {
		return rand.IntN(n)
	}
	return s.Rand.IntN(n)
}

// SelectByIndex returns the video at position i.
func (s *Selector) SelectByIndex(i int) (string, error) {
	if i < 0 || i >= len(s.Videos) {
		return "", fmt.Errorf("%w: index %d, have %d videos", ErrIndexOutOfRange, i, len(s.Videos))
	}

	return s.Videos[i], nil
}

// SelectStatic returns the first video.
func (s *Selector) SelectStatic() (string, error) {
	return s.SelectByIndex(0)
}

// SelectRandom returns a uniformly random video.
func (s *Selector) SelectRandom() (string, error) {
	if len(s.Videos) == 0 {
		return "", fmt.Errorf("%w: no videos to pick from", ErrIndexOutOfRange)
	}

	return s.SelectByIndex(s.intN(len(s.Videos)))
}

// SelectByWeekday returns the video for the current day of the week, 0 being Sunday.
// The list must hold a video for every day.
func (s *Selector) SelectByWeekday() (string, error) {
	if len(s.Videos) < 7 {
		return "", fmt.Errorf("%w: weekday selection needs 7 videos, have %d", ErrIndexOutOfRange, len(s.Videos))
	}

	return s.SelectByIndex(int(s.now().Weekday()))
}

// VideoID returns the video chosen by the generator.
func (s *Selector) VideoID(g Generator) (string, error) {
	switch g.Kind() {
	case KindIndex:
		return s.SelectByIndex(g.Index())
	case KindStatic:
		return s.SelectStatic()
	case KindRandom:
		return s.SelectRandom()
	case KindWeekday:
		return s.SelectByWeekday()
	default:
		return "", fmt.Errorf("%w: unknown generator %s", ErrInvalidArgument, g)
	}
}

// BuildURL returns the player URL for a video id.
// The trailing ampersand is part of the established format.
func (s *Selector) BuildURL(id string) string {
	autoplay := 0
	if s.Autoplay {
		autoplay = 1
	}

	return fmt.Sprintf("%s%s?autoplay=%d&", PlayerURL, id, autoplay)
}

// URL returns the player URL of the video chosen by the generator.
func (s *Selector) URL(g Generator) (string, error) {
	id, err := s.VideoID(g)
	if err != nil {
		return "", err
	}

	return s.BuildURL(id), nil
}

// HTML returns the embed snippet of the video chosen by the generator.
// An empty ratio falls back to the framework default.
func (s *Selector) HTML(g Generator, ratio string, framework Framework) (string, error) {
	// framework is validated before any video is picked
	if _, err := ParseFramework(string(framework)); err != nil {
		return "", err
	}

	id, err := s.VideoID(g)
	if err != nil {
		return "", err
	}

	return s.Embed(id, ratio, framework)
}
