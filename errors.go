// SPDX-License-Identifier: EPL-2.0

package audmix

import "errors"

var (
	ErrUnknownSound = errors.New("sound name not loaded")
	ErrNotHeadless  = errors.New("offline rendering needs a null device backend")
)
