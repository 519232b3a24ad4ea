package selector

import "errors"

var (
	// ErrIndexOutOfRange is returned when a selection reads past the bounds of the video list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for generator or framework values that map to no strategy.
	ErrInvalidArgument = errors.New("invalid argument")
)
