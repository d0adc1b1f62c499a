package vr

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// StaticTracker is a Tracker that reports poses set by the caller.
// Poses are reported unchanged for every Space; wrap it in a WorldTracker to place it in the world.
type StaticTracker struct {
	mu    sync.Mutex
	poses map[DeviceType]Pose
	lost  map[DeviceType]bool
}

var _ Tracker = (*StaticTracker)(nil)

// NewStaticTracker creates a tracker with no devices.
func NewStaticTracker() *StaticTracker {
	return &StaticTracker{
		poses: make(map[DeviceType]Pose),
		lost:  make(map[DeviceType]bool),
	}
}

// SetPose records the pose of a device and marks it tracked.
//
// Parameters:
//   - device: the device type
//   - pose: the device pose
func (t *StaticTracker) SetPose(device DeviceType, pose Pose) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.poses[device] = pose
	delete(t.lost, device)
}

// SetLost marks a device as no longer tracked. Its last pose is kept but not reported.
//
// Parameters:
//   - device: the device type
//   - lost: true to stop reporting the device
func (t *StaticTracker) SetLost(device DeviceType, lost bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if lost {
		t.lost[device] = true
		return
	}
	delete(t.lost, device)
}

func (t *StaticTracker) TrackedPose(device DeviceType, space Space) (Pose, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pose, ok := t.poses[device]
	if !ok {
		return Pose{}, fmt.Errorf("%s not connected: %w", device, ErrPoseUnavailable)
	}
	if t.lost[device] {
		return Pose{}, fmt.Errorf("%s not tracked: %w", device, ErrPoseUnavailable)
	}
	return pose, nil
}

// TrackerSpaceOrigin places tracker space in the world: a rotation of Yaw radians about +Y
// followed by a translation to Origin.
type TrackerSpaceOrigin struct {
	Origin mgl32.Vec3
	Yaw    float32
}

// Matrix returns the tracker-to-world transform (column-major).
func (o TrackerSpaceOrigin) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(o.Origin[0], o.Origin[1], o.Origin[2]).Mul4(mgl32.HomogRotate3DY(o.Yaw))
}

// WorldTracker adapts a tracker-space Tracker so that SpaceWorld requests are placed in the
// world by a TrackerSpaceOrigin. SpaceTracker requests pass through unchanged.
type WorldTracker struct {
	mu     sync.Mutex
	inner  Tracker
	origin TrackerSpaceOrigin
}

var _ Tracker = (*WorldTracker)(nil)

// NewWorldTracker wraps inner with the given tracker space origin.
//
// Parameters:
//   - inner: tracker reporting poses in tracker space
//   - origin: placement of tracker space in the world
//
// Returns:
//   - *WorldTracker: the adapter
func NewWorldTracker(inner Tracker, origin TrackerSpaceOrigin) *WorldTracker {
	return &WorldTracker{inner: inner, origin: origin}
}

// Origin returns the current tracker space origin.
func (w *WorldTracker) Origin() TrackerSpaceOrigin {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.origin
}

// SetOrigin moves tracker space in the world, e.g. for locomotion or recentering.
func (w *WorldTracker) SetOrigin(origin TrackerSpaceOrigin) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.origin = origin
}

func (w *WorldTracker) TrackedPose(device DeviceType, space Space) (Pose, error) {
	pose, err := w.inner.TrackedPose(device, SpaceTracker)
	if err != nil {
		return Pose{}, err
	}
	if space != SpaceWorld {
		return pose, nil
	}
	return pose.Transformed(w.Origin().Matrix()), nil
}
