package vr

import (
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StereoRigBuilderOption is a functional option for configuring a StereoRig.
type StereoRigBuilderOption func(r *stereoRigImpl)

// WithClipPlanes sets the initial near and far distances of both eye cameras.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - StereoRigBuilderOption: option function to apply
func WithClipPlanes(near, far float32) StereoRigBuilderOption {
	return func(r *stereoRigImpl) {
		r.near = near
		r.far = far
	}
}

// WithRigDepthRange sets the clip-space depth convention used by both eyes for frustum derivation.
//
// Parameters:
//   - depth: the runtime's depth convention
//
// Returns:
//   - StereoRigBuilderOption: option function to apply
func WithRigDepthRange(depth common.DepthRange) StereoRigBuilderOption {
	return func(r *stereoRigImpl) {
		r.depth = depth
	}
}

// WithRigEyeSpaceCache enables eye-to-head transform caching on both eyes.
//
// Parameters:
//   - enabled: true to cache
//
// Returns:
//   - StereoRigBuilderOption: option function to apply
func WithRigEyeSpaceCache(enabled bool) StereoRigBuilderOption {
	return func(r *stereoRigImpl) {
		r.cacheEyeSpace = enabled
	}
}

// WithParallelEyes updates the two eyes concurrently on a worker pool.
// The runtime must then be safe for concurrent queries.
//
// Parameters:
//   - parallel: true to update eyes concurrently
//
// Returns:
//   - StereoRigBuilderOption: option function to apply
func WithParallelEyes(parallel bool) StereoRigBuilderOption {
	return func(r *stereoRigImpl) {
		r.parallel = parallel
	}
}

// WithEyeWorkers sets the worker count of the parallel eye pool. Defaults to min(NumCPU-1, 2).
//
// Parameters:
//   - n: the number of workers (minimum 1)
//
// Returns:
//   - StereoRigBuilderOption: option function to apply
func WithEyeWorkers(n int) StereoRigBuilderOption {
	return func(r *stereoRigImpl) {
		if n < 1 {
			n = 1
		}
		r.eyeWorkers = n
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - StereoRigBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) StereoRigBuilderOption {
	return func(r *stereoRigImpl) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSessionID overrides the randomly generated session identifier.
//
// Parameters:
//   - id: the session identifier
//
// Returns:
//   - StereoRigBuilderOption: option function to apply
func WithSessionID(id uuid.UUID) StereoRigBuilderOption {
	return func(r *stereoRigImpl) {
		r.id = id
	}
}
