// SPDX-License-Identifier: MIT
// Package: linenet/scene
//
// errors.go - sentinel errors for scene loading.

package scene

import "errors"

var (
	// ErrUnknownFormat is returned when no codec is registered for a format or extension.
	ErrUnknownFormat = errors.New("scene: unknown format")

	// ErrEmptyScene is returned when the input holds no document.
	ErrEmptyScene = errors.New("scene: empty document")

	// ErrDecode wraps syntax and type errors from the underlying decoder.
	ErrDecode = errors.New("scene: decode failed")
)
