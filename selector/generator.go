package selector

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the selection strategy carried by a Generator.
type Kind uint8

const (
	// KindIndex selects the video at an explicit position.
	KindIndex Kind = iota
	// KindStatic always selects the first video.
	KindStatic
	// KindRandom selects a uniformly random video.
	KindRandom
	// KindWeekday selects the video for the current day of the week, Sunday being 0.
	KindWeekday
)

const (
	nameStatic  = "static"
	nameRandom  = "random"
	nameWeekday = "weekday"
)

// Generator is a resolved selection strategy.
// The zero value selects index 0.
type Generator struct {
	kind  Kind
	index int
}

// ByIndex returns a generator selecting the video at position i.
func ByIndex(i int) Generator {
	return Generator{kind: KindIndex, index: i}
}

// Static returns a generator selecting the first video.
func Static() Generator {
	return Generator{kind: KindStatic}
}

// Random returns a generator selecting a random video.
func Random() Generator {
	return Generator{kind: KindRandom}
}

// Weekday returns a generator selecting the video for today's weekday.
func Weekday() Generator {
	return Generator{kind: KindWeekday}
}

// Kind returns the strategy of the generator.
func (g Generator) Kind() Kind {
	return g.kind
}

// Index returns the explicit position for KindIndex generators and 0 otherwise.
func (g Generator) Index() int {
	if g.kind != KindIndex {
		return 0
	}
	return g.index
}

// String returns the textual form accepted by ParseGenerator.
func (g Generator) String() string {
	switch g.kind {
	case KindIndex:
		return strconv.Itoa(g.index)
	case KindStatic:
		return nameStatic
	case KindRandom:
		return nameRandom
	case KindWeekday:
		return nameWeekday
	default:
		return fmt.Sprintf("kind(%d)", g.kind)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Generator) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Generator) UnmarshalText(text []byte) error {
	parsed, err := ParseGenerator(string(text))
	if err != nil {
		return err
	}

	*g = parsed
	return nil
}

// GeneratorNames returns the named strategies accepted by ParseGenerator.
func GeneratorNames() []string {
	return []string{nameStatic, nameRandom, nameWeekday}
}

// ParseGenerator resolves a generator from its textual form.
// Integers select by index; "static", "random" and "weekday" are matched case-insensitively.
func ParseGenerator(s string) (Generator, error) {
	trimmed := strings.TrimSpace(s)

	i, err := strconv.Atoi(trimmed)
	switch {
	case err == nil:
		return ByIndex(i), nil
	case errors.Is(err, strconv.ErrRange):
		return Generator{}, fmt.Errorf("%w: index %s does not fit an int", ErrIndexOutOfRange, trimmed)
	}

	switch strings.ToLower(trimmed) {
	case nameStatic:
		return Static(), nil
	case nameRandom:
		return Random(), nil
	case nameWeekday:
		return Weekday(), nil
	default:
		return Generator{}, errUnknown("generator", s, GeneratorNames())
	}
}

func fromInt64(v int64) (Generator, error) {
	if v < math.MinInt || v > math.MaxInt {
		return Generator{}, fmt.Errorf("%w: index %d does not fit an int", ErrIndexOutOfRange, v)
	}
	return ByIndex(int(v)), nil
}

func fromUint64(v uint64) (Generator, error) {
	if v > math.MaxInt {
		return Generator{}, fmt.Errorf("%w: index %d does not fit an int", ErrIndexOutOfRange, v)
	}
	return ByIndex(int(v)), nil
}

// fromFloat64 accepts whole numbers only, as produced by encoding/json for numeric fields.
func fromFloat64(v float64) (Generator, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return Generator{}, fmt.Errorf("%w: index %v is not a whole number", ErrInvalidArgument, v)
	}
	if v < math.MinInt || v >= float64(math.MaxInt)+1 {
		return Generator{}, fmt.Errorf("%w: index %v does not fit an int", ErrIndexOutOfRange, v)
	}
	return ByIndex(int(v)), nil
}

// GeneratorOf resolves a generator from a dynamically typed value, such as a decoded config or JSON field.
// Numbers select by index and must be whole; strings go through ParseGenerator.
func GeneratorOf(v any) (Generator, error) {
	switch value := v.(type) {
	case Generator:
		return value, nil
	case int:
		return ByIndex(value), nil
	case int8:
		return ByIndex(int(value)), nil
	case int16:
		return ByIndex(int(value)), nil
	case int32:
		return ByIndex(int(value)), nil
	case int64:
		return fromInt64(value)
	case uint:
		return fromUint64(uint64(value))
	case uint8:
		return ByIndex(int(value)), nil
	case uint16:
		return ByIndex(int(value)), nil
	case uint32:
		return fromUint64(uint64(value))
	case uint64:
		return fromUint64(value)
	case float32:
		return fromFloat64(float64(value))
	case float64:
		return fromFloat64(value)
	case json.Number:
		return ParseGenerator(value.String())
	case string:
		return ParseGenerator(value)
	case nil:
		return Generator{}, nil
	default:
		return Generator{}, fmt.Errorf("%w: unsupported generator type %T", ErrInvalidArgument, v)
	}
}
