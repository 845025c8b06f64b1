// SPDX-License-Identifier: EPL-2.0

package subsynth

import "errors"

var (
	ErrUnsupportedOutput = errors.New("unsupported output file type")
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
)
