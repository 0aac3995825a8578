// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrNonPositiveRate  = errors.New("sample rate must be positive")
	ErrNonPositiveCount = errors.New("sample count must be positive")
	ErrGainOutOfRange   = errors.New("gain must be in (0, 1]")
)
