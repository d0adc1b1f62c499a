package vr

import "errors"

var (
	// ErrPoseUnavailable is returned when the tracker cannot supply a pose for the requested device.
	ErrPoseUnavailable = errors.New("vr: pose unavailable")
	// ErrDegeneratePose is returned when a pose's basis and translation matrix is not invertible.
	ErrDegeneratePose = errors.New("vr: degenerate pose basis")
	// ErrSingularMatrix is returned when an eye-space or combined matrix cannot be inverted.
	ErrSingularMatrix = errors.New("vr: singular matrix")
	// ErrInvalidClipPlanes is returned when near <= 0 or far <= near.
	ErrInvalidClipPlanes = errors.New("vr: invalid clip planes")
	// ErrInvalidEye is returned for an Eye value other than EyeLeft or EyeRight.
	ErrInvalidEye = errors.New("vr: invalid eye")
)
