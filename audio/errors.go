// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnknownFormat   = errors.New("no decoder registered for format")
	ErrEmptySample     = errors.New("sample holds no frames")
	ErrBadChannelCount = errors.New("sample channel count must be >= 1")
)
