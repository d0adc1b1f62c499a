// Package vr computes per-eye camera state for head-mounted displays from a tracked headset
// pose and the per-eye projection and eye-to-head transforms reported by a VR runtime.
package vr

// Eye identifies one of the two viewpoints of a stereo pair.
type Eye int

const (
	EyeLeft Eye = iota
	EyeRight
)

// Eyes lists both eyes in runtime index order.
var Eyes = [2]Eye{EyeLeft, EyeRight}

// Index returns the runtime index used to query per-eye hardware parameters.
//
// Returns:
//   - int: 0 for the left eye, 1 for the right eye
func (e Eye) Index() int {
	return int(e)
}

// Valid reports whether e is EyeLeft or EyeRight.
func (e Eye) Valid() bool {
	return e == EyeLeft || e == EyeRight
}

func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "left"
	case EyeRight:
		return "right"
	default:
		return "unknown"
	}
}

// DeviceType is the kind of tracked device a pose is requested for.
type DeviceType int

const (
	DeviceHeadMountedDisplay DeviceType = iota
	DeviceController
	DeviceBaseStation
	DeviceGeneric
)

func (d DeviceType) String() string {
	switch d {
	case DeviceHeadMountedDisplay:
		return "head_mounted_display"
	case DeviceController:
		return "controller"
	case DeviceBaseStation:
		return "base_station"
	case DeviceGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// Space is the coordinate space a pose is expressed in.
type Space int

const (
	// SpaceTracker is the raw space reported by the runtime.
	SpaceTracker Space = iota
	// SpaceWorld is tracker space placed in the scene by an origin offset and yaw.
	SpaceWorld
)

func (s Space) String() string {
	switch s {
	case SpaceTracker:
		return "tracker"
	case SpaceWorld:
		return "world"
	default:
		return "unknown"
	}
}
