package cue

import "errors"

var (
	ErrNonPositiveDuration   = errors.New("duration must be positive")
	ErrNonPositiveSampleRate = errors.New("sample rate must be positive")
	ErrPeakOutOfRange        = errors.New("peak amplitude must be in (0, 1]")
)
