package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	PlayerFile   = "player.yaml"
	CameraFile   = "camera.yaml"
	PlatformFile = "platform.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type VecSpec struct {
	X int64 `yaml:"x"`
	Y int64 `yaml:"y"`
}

// KinematicSpec is the motion state at spawn. The bird always spawns at the
// origin.
type KinematicSpec struct {
	Velocity VecSpec `yaml:"velocity"`
}

type MotionSpec struct {
	FlapX      int64 `yaml:"flap_x"`
	FlapY      int64 `yaml:"flap_y"`
	Gravity    int64 `yaml:"gravity"`
	Resistance int64 `yaml:"resistance"`
	// TranslationDivisor converts grid units to render units (1/divisor).
	TranslationDivisor float64 `yaml:"translation_divisor"`
}

type BirdSpec struct {
	State     string `yaml:"state"`
	Direction string `yaml:"direction"`
}

type SpriteSpec struct {
	Image      string `yaml:"image"`
	FrameW     int    `yaml:"frame_w"`
	FrameH     int    `yaml:"frame_h"`
	FrameCount int    `yaml:"frame_count"`
	Index      int    `yaml:"index"`
	FlipX      bool   `yaml:"flip_x"`
	Centered   bool   `yaml:"centered"`
}

type AnimationSpec struct {
	Period time.Duration `yaml:"period"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type RigidBodySpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Density       float64 `yaml:"density"`
	Friction      float64 `yaml:"friction"`
	LinearDamping float64 `yaml:"linear_damping"`
	FlapXForce    float64 `yaml:"flap_x_force"`
	FlapYForce    float64 `yaml:"flap_y_force"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	GravityScale  float64 `yaml:"gravity_scale"`
	Static        bool    `yaml:"static"`
}

type PlayerSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Kinematic   KinematicSpec   `yaml:"kinematic"`
	Motion      MotionSpec      `yaml:"motion"`
	Bird        BirdSpec        `yaml:"bird"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	Animation   AnimationSpec   `yaml:"animation"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	RigidBody   RigidBodySpec   `yaml:"rigid_body"`
}

// Validate rejects tunings the systems cannot run with.
func (s *PlayerSpec) Validate() error {
	if s.Motion.TranslationDivisor <= 0 {
		return fmt.Errorf("%w: %s: motion.translation_divisor must be > 0", ErrInvalidSpec, s.Name)
	}
	if s.Sprite.FrameCount <= 3 {
		return fmt.Errorf("%w: %s: sprite.frame_count must leave flap frames after the 3 ground frames", ErrInvalidSpec, s.Name)
	}
	if s.Animation.Period <= 0 {
		return fmt.Errorf("%w: %s: animation.period must be > 0", ErrInvalidSpec, s.Name)
	}
	if s.RigidBody.PixelsPerUnit <= 0 {
		return fmt.Errorf("%w: %s: rigid_body.pixels_per_unit must be > 0", ErrInvalidSpec, s.Name)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string        `yaml:"name"`
	Transform  TransformSpec `yaml:"transform"`
	Zoom       float64       `yaml:"zoom"`
	Smoothness float64       `yaml:"smoothness"`
	FollowY    bool          `yaml:"follow_y"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlatformSpec struct {
	Name        string          `yaml:"name"`
	Transform   TransformSpec   `yaml:"transform"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
	RigidBody   RigidBodySpec   `yaml:"rigid_body"`
}

func LoadPlatformSpec() (*PlatformSpec, error) {
	spec, err := LoadSpec[PlatformSpec](PlatformFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
