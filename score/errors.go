// SPDX-License-Identifier: EPL-2.0

package score

import "errors"

var (
	ErrInvalidSampleRate = errors.New("score sample rate must be positive")
	ErrScript            = errors.New("score script failed")
)
