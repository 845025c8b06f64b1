// SPDX-License-Identifier: EPL-2.0

// Package player sends an audio.Source to the sound card through
// github.com/ebitengine/oto/v3.
//
// Build with -tags headless to drop the oto dependency on machines without
// audio; New then fails with ErrNoAudioBackend.
package player
