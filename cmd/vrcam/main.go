// Command vrcam drives a stereo rig against the simulated runtime with a headset turning in
// place and logs the per-eye camera state of every frame.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-vr/engine/logger"
	"github.com/Carmen-Shannon/oxy-vr/engine/profiler"
	"github.com/Carmen-Shannon/oxy-vr/engine/vr"
	"github.com/Carmen-Shannon/oxy-vr/engine/vr/config"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a rig YAML file (defaults are used when empty)")
	frames := flag.Int("frames", 90, "number of frames to simulate")
	frustumEvery := flag.Int("frustum-every", 1, "derive frustum planes every N frames (0 disables)")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	if err := run(*configPath, *frames, *frustumEvery, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "vrcam: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, frames, frustumEvery int, logLevel string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	rt := vr.NewSimulatedRuntime(cfg.RuntimeOptions()...)
	headset := vr.NewStaticTracker()
	tracker := vr.NewWorldTracker(headset, cfg.Origin())
	rig := vr.NewStereoRig(rt, tracker, cfg.RigOptions(log)...)
	prof := profiler.NewProfiler(log, profiler.WithInterval(250*time.Millisecond))

	for frame := range frames {
		yaw := float32(frame) * 2 * math.Pi / float32(max(frames, 1))
		headset.SetPose(vr.DeviceHeadMountedDisplay, turningHead(yaw))

		updateFrustum := frustumEvery > 0 && frame%frustumEvery == 0
		start := time.Now()
		if err := rig.Update(updateFrustum); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		prof.Tick(time.Since(start))

		for _, eye := range vr.Eyes {
			state := rig.Eye(eye).Frame()
			log.Debug("eye frame",
				zap.Int("frame", frame),
				zap.Stringer("eye", eye),
				zap.Float32s("eye_position", state.EyePosition[:]),
				zap.Float32s("direction", state.Direction[:]),
				zap.Bool("frustum_valid", state.FrustumValid),
			)
		}
	}

	uniforms := rig.Uniforms()
	log.Info("simulation finished",
		zap.Uint64("frames", rig.FrameCount()),
		zap.Float32s("left_combined", uniforms[vr.EyeLeft.Index()].Combined[:]),
		zap.Float32s("right_combined", uniforms[vr.EyeRight.Index()].Combined[:]),
		zap.Int("uniform_bytes", len(uniforms[0].Marshal())+len(uniforms[1].Marshal())),
	)
	return nil
}

// turningHead returns a standing headset pose at eye height rotated yaw radians about +Y.
func turningHead(yaw float32) vr.Pose {
	pose := vr.IdentityPose().Transformed(mgl32.HomogRotate3DY(yaw))
	pose.Position = mgl32.Vec3{0, 1.6, 0}
	return pose
}
