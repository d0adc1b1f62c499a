package vr

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stereoRigImpl struct {
	id      uuid.UUID
	tracker Tracker
	runtime Runtime
	logger  *zap.Logger

	near          float32
	far           float32
	depth         common.DepthRange
	cacheEyeSpace bool

	parallel   bool
	eyeWorkers int
	pool       worker.DynamicWorkerPool

	eyes       [2]EyeCamera
	frameCount atomic.Uint64
}

// StereoRig owns the two eye cameras of a VR session and updates both from one headset pose per frame.
type StereoRig interface {
	// SessionID returns the identifier attached to the rig's log entries.
	//
	// Returns:
	//   - uuid.UUID: the session identifier
	SessionID() uuid.UUID

	// Eye returns the camera of the given eye, or nil for an invalid eye.
	//
	// Parameters:
	//   - eye: the eye to look up
	//
	// Returns:
	//   - EyeCamera: the eye's camera
	Eye(eye Eye) EyeCamera

	// SetClipPlanes sets near and far on both eye cameras for the next Update.
	//
	// Parameters:
	//   - near: near plane distance
	//   - far: far plane distance
	SetClipPlanes(near, far float32)

	// FrameCount returns the number of successful Update calls.
	//
	// Returns:
	//   - uint64: completed frames
	FrameCount() uint64

	// Uniforms returns the GPU uniforms of both eyes, indexed by Eye.Index.
	//
	// Returns:
	//   - [2]GPUEyeUniform: left and right eye uniforms
	Uniforms() [2]GPUEyeUniform

	// Update reads the headset pose once and updates both eye cameras with it.
	// If the pose is unavailable no eye is updated and the returned error wraps ErrPoseUnavailable.
	//
	// Parameters:
	//   - updateFrustum: whether the eyes derive their frustum planes
	//
	// Returns:
	//   - error: pose loss or the joined errors of the eye updates
	Update(updateFrustum bool) error
}

var _ StereoRig = &stereoRigImpl{}

// NewStereoRig creates one EyeCamera per eye over rt and binds them to the headset pose of tracker.
//
// Parameters:
//   - rt: the VR runtime both eyes query
//   - tracker: the tracker supplying the headset pose in world space
//   - options: functional options to configure the rig
//
// Returns:
//   - StereoRig: the newly created rig
func NewStereoRig(rt Runtime, tracker Tracker, options ...StereoRigBuilderOption) StereoRig {
	r := &stereoRigImpl{
		id:         uuid.New(),
		tracker:    tracker,
		runtime:    rt,
		logger:     zap.NewNop(),
		near:       0.1,
		far:        100.0,
		depth:      common.DepthZeroToOne,
		eyeWorkers: min(max(runtime.NumCPU()-1, 1), len(Eyes)),
	}
	for _, option := range options {
		option(r)
	}

	r.logger = r.logger.With(zap.String("session", r.id.String()))
	for _, eye := range Eyes {
		r.eyes[eye.Index()] = NewEyeCamera(eye, rt,
			WithNear(r.near),
			WithFar(r.far),
			WithDepthRange(r.depth),
			WithEyeSpaceCache(r.cacheEyeSpace),
		)
	}
	if r.parallel {
		r.pool = worker.NewDynamicWorkerPool(r.eyeWorkers, 2*len(Eyes), 1*time.Second)
	}

	r.logger.Info("stereo rig created",
		zap.Float32("near", r.near),
		zap.Float32("far", r.far),
		zap.Stringer("depth", r.depth),
		zap.Bool("parallel", r.parallel),
		zap.Bool("cache_eye_space", r.cacheEyeSpace),
	)
	return r
}

func (r *stereoRigImpl) SessionID() uuid.UUID {
	return r.id
}

func (r *stereoRigImpl) Eye(eye Eye) EyeCamera {
	if !eye.Valid() {
		return nil
	}
	return r.eyes[eye.Index()]
}

func (r *stereoRigImpl) SetClipPlanes(near, far float32) {
	for _, cam := range r.eyes {
		cam.SetNear(near)
		cam.SetFar(far)
	}
}

func (r *stereoRigImpl) FrameCount() uint64 {
	return r.frameCount.Load()
}

func (r *stereoRigImpl) Uniforms() [2]GPUEyeUniform {
	var out [2]GPUEyeUniform
	for i, cam := range r.eyes {
		out[i] = cam.Frame().Uniform()
	}
	return out
}

func (r *stereoRigImpl) Update(updateFrustum bool) error {
	pose, err := r.tracker.TrackedPose(DeviceHeadMountedDisplay, SpaceWorld)
	if err != nil {
		r.logger.Warn("headset pose unavailable, eyes not updated", zap.Error(err))
		if !errors.Is(err, ErrPoseUnavailable) {
			err = fmt.Errorf("%w: %w", ErrPoseUnavailable, err)
		}
		return err
	}

	var errs [2]error
	if r.parallel {
		r.updateParallel(pose, updateFrustum, &errs)
	} else {
		for i, cam := range r.eyes {
			errs[i] = cam.Update(pose, updateFrustum)
		}
	}

	if err := errors.Join(errs[:]...); err != nil {
		r.logger.Error("eye update failed", zap.Error(err))
		return err
	}

	n := r.frameCount.Add(1)
	r.logger.Debug("eyes updated", zap.Uint64("frame", n), zap.Bool("frustum", updateFrustum))
	return nil
}

// updateParallel submits each eye to the worker pool. Eyes share no mutable state,
// so a WaitGroup barrier is the only synchronization needed.
func (r *stereoRigImpl) updateParallel(pose Pose, updateFrustum bool, errs *[2]error) {
	var wg sync.WaitGroup
	for i, cam := range r.eyes {
		wg.Add(1)
		r.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				errs[i] = cam.Update(pose, updateFrustum)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
