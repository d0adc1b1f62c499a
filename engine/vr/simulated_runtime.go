package vr

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Tangents are the tangents of the half-angles of the four sides of an eye's frustum,
// measured from the optical axis. Left and Bottom are negative for a centered lens.
type Tangents struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
}

// Mirrored returns the tangents reflected across the vertical axis, turning a left-eye
// lens into the matching right-eye lens.
func (t Tangents) Mirrored() Tangents {
	return Tangents{Left: -t.Right, Right: -t.Left, Bottom: t.Bottom, Top: t.Top}
}

// DefaultTangents approximates a consumer headset lens with a slight outward bias for the left eye.
var DefaultTangents = Tangents{Left: -1.39, Right: 1.24, Bottom: -1.47, Top: 1.46}

// DefaultIPD is the default interpupillary distance in meters.
const DefaultIPD float32 = 0.064

// SimulatedRuntime is a deterministic Runtime producing OpenVR style row-major matrices from
// lens tangents, an interpupillary distance and an eye relief. It is immutable after construction
// and safe for concurrent use.
type SimulatedRuntime struct {
	tangents  [2]Tangents
	ipd       float32
	eyeRelief float32
	depth     common.DepthRange
}

var _ Runtime = (*SimulatedRuntime)(nil)

// SimulatedRuntimeOption is a functional option for configuring a SimulatedRuntime.
type SimulatedRuntimeOption func(*SimulatedRuntime)

// WithTangents sets the left eye's lens tangents; the right eye uses the mirrored tangents.
//
// Parameters:
//   - t: the left eye tangents
//
// Returns:
//   - SimulatedRuntimeOption: functional option to set the lens tangents
func WithTangents(t Tangents) SimulatedRuntimeOption {
	return func(r *SimulatedRuntime) {
		r.tangents = [2]Tangents{t, t.Mirrored()}
	}
}

// WithIPD sets the interpupillary distance in meters.
//
// Parameters:
//   - ipd: distance between the optical centers of both eyes
//
// Returns:
//   - SimulatedRuntimeOption: functional option to set the IPD
func WithIPD(ipd float32) SimulatedRuntimeOption {
	return func(r *SimulatedRuntime) {
		r.ipd = ipd
	}
}

// WithEyeRelief sets how far in front of the head reference point the eyes sit, in meters.
//
// Parameters:
//   - relief: forward offset of both eyes
//
// Returns:
//   - SimulatedRuntimeOption: functional option to set the eye relief
func WithEyeRelief(relief float32) SimulatedRuntimeOption {
	return func(r *SimulatedRuntime) {
		r.eyeRelief = relief
	}
}

// WithRuntimeDepthRange sets the clip-space depth convention of the reported projections.
//
// Parameters:
//   - depth: the depth convention, DepthZeroToOne by default
//
// Returns:
//   - SimulatedRuntimeOption: functional option to set the depth convention
func WithRuntimeDepthRange(depth common.DepthRange) SimulatedRuntimeOption {
	return func(r *SimulatedRuntime) {
		r.depth = depth
	}
}

// NewSimulatedRuntime creates a simulated runtime with default lens tangents and IPD.
//
// Parameters:
//   - options: functional options to configure the runtime
//
// Returns:
//   - *SimulatedRuntime: the runtime
func NewSimulatedRuntime(options ...SimulatedRuntimeOption) *SimulatedRuntime {
	r := &SimulatedRuntime{
		tangents: [2]Tangents{DefaultTangents, DefaultTangents.Mirrored()},
		ipd:      DefaultIPD,
		depth:    common.DepthZeroToOne,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// DepthRange returns the clip-space depth convention of the reported projections.
func (r *SimulatedRuntime) DepthRange() common.DepthRange {
	return r.depth
}

func (r *SimulatedRuntime) ProjectionMatrix(eye Eye, near, far float32) (HmdMatrix44, error) {
	if !eye.Valid() {
		return HmdMatrix44{}, fmt.Errorf("%w: %d", ErrInvalidEye, int(eye))
	}
	t := r.tangents[eye.Index()]
	return HmdMatrix44From(common.ProjectionFromTangents(t.Left, t.Right, t.Bottom, t.Top, near, far, r.depth)), nil
}

func (r *SimulatedRuntime) EyeToHeadTransform(eye Eye) (HmdMatrix34, error) {
	if !eye.Valid() {
		return HmdMatrix34{}, fmt.Errorf("%w: %d", ErrInvalidEye, int(eye))
	}
	x := r.ipd / 2
	if eye == EyeLeft {
		x = -x
	}
	return HmdMatrix34From(mgl32.Translate3D(x, 0, -r.eyeRelief)), nil
}
