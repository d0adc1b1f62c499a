package vr

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

type eyeCameraImpl struct {
	mu *sync.Mutex

	eye     Eye
	runtime Runtime
	depth   common.DepthRange

	near float32
	far  float32

	cacheEyeSpace bool
	eyeSpace      *mgl32.Mat4

	frame FrameState
}

// EyeCamera defines the interface for the camera of one eye of a head-mounted display.
// All state except near, far and the eye identity is replaced on every successful Update
// from the headset pose and the runtime's per-eye parameters.
type EyeCamera interface {
	// Eye returns the eye this camera renders.
	//
	// Returns:
	//   - Eye: the eye identity fixed at construction
	Eye() Eye

	// Runtime returns the VR runtime the camera queries.
	//
	// Returns:
	//   - Runtime: the runtime
	Runtime() Runtime

	// DepthRange returns the clip-space depth convention of the runtime's projection.
	//
	// Returns:
	//   - common.DepthRange: the depth convention
	DepthRange() common.DepthRange

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetNear sets the near clipping plane distance used by the next Update.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance used by the next Update.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Position returns the headset's world-space position from the last update.
	Position() mgl32.Vec3

	// Direction returns the headset's world-space forward vector from the last update.
	Direction() mgl32.Vec3

	// Up returns the headset's world-space up vector from the last update.
	Up() mgl32.Vec3

	// ProjectionMatrix returns the eye's projection matrix (column-major).
	ProjectionMatrix() mgl32.Mat4

	// ViewMatrix returns the world-to-head view matrix (column-major).
	ViewMatrix() mgl32.Mat4

	// CombinedMatrix returns projection * inverse eye space * view (column-major).
	CombinedMatrix() mgl32.Mat4

	// InverseCombinedMatrix returns the inverse of the combined matrix from the last update
	// that derived the frustum.
	InverseCombinedMatrix() mgl32.Mat4

	// EyeSpace returns the eye-to-head transform (column-major).
	EyeSpace() mgl32.Mat4

	// InverseEyeSpace returns the head-to-eye transform (column-major).
	InverseEyeSpace() mgl32.Mat4

	// Frustum returns the frustum planes from the last update that derived them.
	//
	// Returns:
	//   - common.Frustum: the frustum planes
	//   - bool: false if no update has derived a frustum yet
	Frustum() (common.Frustum, bool)

	// Frame returns a copy of the latest frame snapshot.
	//
	// Returns:
	//   - FrameState: the snapshot
	Frame() FrameState

	// Update recomputes every pose and projection dependent matrix from the runtime and pose.
	// When updateFrustum is false the inverse combined matrix and frustum keep their previous values.
	// On error the previous snapshot is left untouched.
	//
	// Parameters:
	//   - pose: the headset pose in world space
	//   - updateFrustum: whether to derive the frustum planes
	//
	// Returns:
	//   - error: a validation, runtime or inversion failure
	Update(pose Pose, updateFrustum bool) error

	// UpdateWithFrustum is Update(pose, true).
	//
	// Parameters:
	//   - pose: the headset pose in world space
	//
	// Returns:
	//   - error: a validation, runtime or inversion failure
	UpdateWithFrustum(pose Pose) error
}

var _ EyeCamera = &eyeCameraImpl{}

// NewEyeCamera creates the camera for one eye. Matrices are identity until the first Update.
//
// Parameters:
//   - eye: the eye this camera renders
//   - rt: the VR runtime to query each frame
//   - options: functional options to configure the camera
//
// Returns:
//   - EyeCamera: the newly created camera
func NewEyeCamera(eye Eye, rt Runtime, options ...EyeCameraBuilderOption) EyeCamera {
	c := &eyeCameraImpl{
		mu:      &sync.Mutex{},
		eye:     eye,
		runtime: rt,
		depth:   common.DepthZeroToOne,
		near:    0.1,
		far:     100.0,
	}
	for _, option := range options {
		option(c)
	}
	c.frame = initialFrame(eye, c.near, c.far)
	return c
}

func initialFrame(eye Eye, near, far float32) FrameState {
	ident := mgl32.Ident4()
	return FrameState{
		Eye:         eye,
		Near:        near,
		Far:         far,
		Direction:   mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Projection:  ident,
		EyeSpace:    ident,
		InvEyeSpace: ident,
		View:        ident,
		Combined:    ident,
		InvCombined: ident,
	}
}

func (c *eyeCameraImpl) Eye() Eye {
	return c.eye
}

func (c *eyeCameraImpl) Runtime() Runtime {
	return c.runtime
}

func (c *eyeCameraImpl) DepthRange() common.DepthRange {
	return c.depth
}

func (c *eyeCameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *eyeCameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *eyeCameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *eyeCameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *eyeCameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.Position
}

func (c *eyeCameraImpl) Direction() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.Direction
}

func (c *eyeCameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.Up
}

func (c *eyeCameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.Projection
}

func (c *eyeCameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.View
}

func (c *eyeCameraImpl) CombinedMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.Combined
}

func (c *eyeCameraImpl) InverseCombinedMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.InvCombined
}

func (c *eyeCameraImpl) EyeSpace() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.EyeSpace
}

func (c *eyeCameraImpl) InverseEyeSpace() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.InvEyeSpace
}

func (c *eyeCameraImpl) Frustum() (common.Frustum, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame.Frustum, c.frame.FrustumValid
}

func (c *eyeCameraImpl) Frame() FrameState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

func (c *eyeCameraImpl) UpdateWithFrustum(pose Pose) error {
	return c.Update(pose, true)
}

func (c *eyeCameraImpl) Update(pose Pose, updateFrustum bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.computeFrame(pose)
	if err != nil {
		return err
	}

	if updateFrustum {
		next, err = DeriveFrustum(next, c.depth)
		if err != nil {
			return err
		}
	} else {
		next.InvCombined = c.frame.InvCombined
		next.Frustum = c.frame.Frustum
		next.FrustumValid = c.frame.FrustumValid
	}

	c.frame = next
	return nil
}

// computeFrame builds the next snapshot, reusing the cached eye space when caching is enabled.
// Caller must hold the mutex.
func (c *eyeCameraImpl) computeFrame(pose Pose) (FrameState, error) {
	params := FrameParams{Eye: c.eye, Near: c.near, Far: c.far, Depth: c.depth}
	if !c.cacheEyeSpace {
		return ComputeFrame(c.runtime, params, pose)
	}

	if err := params.Validate(); err != nil {
		return FrameState{}, err
	}
	projection, err := QueryProjection(c.runtime, params)
	if err != nil {
		return FrameState{}, err
	}
	if c.eyeSpace == nil {
		eyeSpace, err := QueryEyeSpace(c.runtime, c.eye)
		if err != nil {
			return FrameState{}, err
		}
		c.eyeSpace = &eyeSpace
	}
	return ComposeFrame(params, pose, projection, *c.eyeSpace)
}
