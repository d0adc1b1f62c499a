// Package config loads the YAML description of a VR rig: clip planes, lens model,
// depth convention, world placement and update strategy.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Carmen-Shannon/oxy-vr/common"
	"github.com/Carmen-Shannon/oxy-vr/engine/vr"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid rig config")

const (
	DefaultNear     float32 = 0.1
	DefaultFar      float32 = 100.0
	DefaultLogLevel         = "info"
)

// Config describes a VR rig.
type Config struct {
	Near      float32 `yaml:"near"`
	Far       float32 `yaml:"far"`
	IPD       float32 `yaml:"ipd"`
	EyeRelief float32 `yaml:"eye_relief"`

	// DepthRange is "zero_to_one" (default) or "neg_one_to_one".
	DepthRange string `yaml:"depth_range"`

	// Tangents describe the left lens. FovDegrees and Aspect build a symmetric lens instead
	// when Tangents is absent.
	Tangents   *vr.Tangents `yaml:"tangents,omitempty"`
	FovDegrees float32      `yaml:"fov_degrees"`
	Aspect     float32      `yaml:"aspect"`

	ParallelEyes  bool `yaml:"parallel_eyes"`
	Workers       int  `yaml:"workers"`
	CacheEyeSpace bool `yaml:"cache_eye_space"`

	// WorldOrigin and WorldYawDegrees place tracker space in the world.
	WorldOrigin     []float32 `yaml:"world_origin,omitempty"`
	WorldYawDegrees float32   `yaml:"world_yaw_degrees"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load decodes YAML from r, fills defaults and validates the result.
// Empty input yields the default configuration.
//
// Parameters:
//   - r: the YAML source
//
// Returns:
//   - *Config: the loaded configuration
//   - error: a decode error or one wrapping ErrInvalidConfig
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode rig config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rig config %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) applyDefaults() {
	c.Near = common.Coalesce(c.Near, DefaultNear)
	c.Far = common.Coalesce(c.Far, DefaultFar)
	c.IPD = common.Coalesce(c.IPD, vr.DefaultIPD)
	c.DepthRange = common.Coalesce(c.DepthRange, common.DepthZeroToOne.String())
	c.LogLevel = common.Coalesce(c.LogLevel, DefaultLogLevel)
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("%w: need 0 < near < far, got near=%v far=%v", ErrInvalidConfig, c.Near, c.Far)
	}
	if c.IPD < 0 {
		return fmt.Errorf("%w: negative ipd %v", ErrInvalidConfig, c.IPD)
	}
	if _, err := c.Depth(); err != nil {
		return err
	}
	if c.Tangents != nil {
		t := *c.Tangents
		if t.Right <= t.Left || t.Top <= t.Bottom {
			return fmt.Errorf("%w: degenerate lens tangents %+v", ErrInvalidConfig, t)
		}
	} else if c.FovDegrees != 0 {
		if c.FovDegrees <= 0 || c.FovDegrees >= 180 {
			return fmt.Errorf("%w: fov_degrees must be in (0, 180), got %v", ErrInvalidConfig, c.FovDegrees)
		}
		if c.Aspect < 0 {
			return fmt.Errorf("%w: negative aspect %v", ErrInvalidConfig, c.Aspect)
		}
	}
	if len(c.WorldOrigin) != 0 && len(c.WorldOrigin) != 3 {
		return fmt.Errorf("%w: world_origin needs 3 components, got %d", ErrInvalidConfig, len(c.WorldOrigin))
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: negative workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Depth parses DepthRange.
func (c *Config) Depth() (common.DepthRange, error) {
	switch c.DepthRange {
	case common.DepthZeroToOne.String():
		return common.DepthZeroToOne, nil
	case common.DepthNegOneToOne.String():
		return common.DepthNegOneToOne, nil
	default:
		return common.DepthZeroToOne, fmt.Errorf("%w: unknown depth_range %q", ErrInvalidConfig, c.DepthRange)
	}
}

// LensTangents resolves the left lens from Tangents, then FovDegrees, then the runtime default.
func (c *Config) LensTangents() vr.Tangents {
	if c.Tangents != nil {
		return *c.Tangents
	}
	if c.FovDegrees > 0 {
		l, r, b, t := common.TangentsFromFov(mgl32.DegToRad(c.FovDegrees), common.Coalesce(c.Aspect, 1))
		return vr.Tangents{Left: l, Right: r, Bottom: b, Top: t}
	}
	return vr.DefaultTangents
}

// Origin returns the tracker space placement.
func (c *Config) Origin() vr.TrackerSpaceOrigin {
	var o vr.TrackerSpaceOrigin
	if len(c.WorldOrigin) == 3 {
		o.Origin = mgl32.Vec3{c.WorldOrigin[0], c.WorldOrigin[1], c.WorldOrigin[2]}
	}
	o.Yaw = mgl32.DegToRad(c.WorldYawDegrees)
	return o
}

// RuntimeOptions returns the options for a vr.SimulatedRuntime matching this config.
func (c *Config) RuntimeOptions() []vr.SimulatedRuntimeOption {
	depth, _ := c.Depth()
	return []vr.SimulatedRuntimeOption{
		vr.WithTangents(c.LensTangents()),
		vr.WithIPD(c.IPD),
		vr.WithEyeRelief(c.EyeRelief),
		vr.WithRuntimeDepthRange(depth),
	}
}

// RigOptions returns the options for a vr.StereoRig matching this config.
//
// Parameters:
//   - logger: the logger handed to the rig
//
// Returns:
//   - []vr.StereoRigBuilderOption: the rig options
func (c *Config) RigOptions(logger *zap.Logger) []vr.StereoRigBuilderOption {
	depth, _ := c.Depth()
	opts := []vr.StereoRigBuilderOption{
		vr.WithClipPlanes(c.Near, c.Far),
		vr.WithRigDepthRange(depth),
		vr.WithRigEyeSpaceCache(c.CacheEyeSpace),
		vr.WithParallelEyes(c.ParallelEyes),
		vr.WithLogger(logger),
	}
	if c.Workers > 0 {
		opts = append(opts, vr.WithEyeWorkers(c.Workers))
	}
	return opts
}
