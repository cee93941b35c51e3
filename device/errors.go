// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

var (
	ErrDeviceUnavailable = errors.New("audio device unavailable")
	ErrBadSpec           = errors.New("device spec must set sample rate, channels, buffer frames and callback")
)
