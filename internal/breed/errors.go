// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package breed

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("breed not found")

// NotFoundError reports that no sub-breed data could be obtained for Breed.
// Cause, when set, is the underlying transport or decoding failure. It is kept
// for logging only; callers must not branch on it.
type NotFoundError struct {
	Breed string
	Cause error
}

// NotFound returns a *NotFoundError for breed with an optional cause.
func NotFound(breed string, cause error) *NotFoundError {
	return &NotFoundError{Breed: breed, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("breed %q not found: %v", e.Breed, e.Cause)
	}
	return fmt.Sprintf("breed %q not found", e.Breed)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is, or wraps, a NotFound failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
