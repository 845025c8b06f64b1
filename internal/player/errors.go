// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	ErrNoAudioBackend = errors.New("built without an audio backend")
	ErrAlreadyOpen    = errors.New("an audio device is already open")
)
