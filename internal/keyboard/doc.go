// SPDX-License-Identifier: EPL-2.0

// Package keyboard plays the synthesizer from a computer keyboard.
//
// Controller maps keys to note messages and parameter nudges. Host reads a
// raw-mode terminal with golang.org/x/term and feeds it.
package keyboard
