package entity

import (
	"fmt"

	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
	"github.com/milk9111/flapper/prefabs"
)

// NewPlayer spawns the bird at the origin with the prefab's initial
// velocity. The rigid controller also gets a Chipmunk body; the integer
// kinematic state is kept either way for scoring.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, opts Options) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	bird, err := BirdFromSpec(spec.Bird)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	transform := spec.Transform
	transform.X, transform.Y = 0, 0
	if err := addTransform(w, player, transform); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, player, component.KinematicComponent.Kind(), &component.Kinematic{
		Velocity: component.Vec2{X: spec.Kinematic.Velocity.X, Y: spec.Kinematic.Velocity.Y},
	}); err != nil {
		return 0, fmt.Errorf("player: add kinematic: %w", err)
	}
	motion := MotionFromSpec(spec.Motion)
	if err := ecs.Add(w, player, component.MotionComponent.Kind(), &motion); err != nil {
		return 0, fmt.Errorf("player: add motion: %w", err)
	}
	if err := ecs.Add(w, player, component.BirdComponent.Kind(), &bird); err != nil {
		return 0, fmt.Errorf("player: add bird: %w", err)
	}

	if err := addSprite(w, player, spec.Sprite, opts.Images); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.AnimationComponent.Kind(), &component.Animation{
		Timer:      component.NewRepeatingTimer(spec.Animation.Period),
		FrameCount: spec.Sprite.FrameCount,
	}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	if err := addRenderLayer(w, player, spec.RenderLayer); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	if opts.Controller == ControllerRigid {
		rb := spec.RigidBody
		rb.Static = false
		if err := addRigidBody(w, player, rb); err != nil {
			return 0, fmt.Errorf("player: add rigid body: %w", err)
		}
	}

	if err := addScope(w, player, opts.Scope); err != nil {
		return 0, fmt.Errorf("player: add scope: %w", err)
	}

	return player, nil
}

// MotionFromSpec converts prefab tuning into the integrator component.
func MotionFromSpec(spec prefabs.MotionSpec) component.Motion {
	factor := 0.0
	if spec.TranslationDivisor > 0 {
		factor = 1 / spec.TranslationDivisor
	}
	return component.Motion{
		FlapX:             spec.FlapX,
		FlapY:             spec.FlapY,
		Gravity:           spec.Gravity,
		Resistance:        spec.Resistance,
		TranslationFactor: factor,
	}
}

func BirdFromSpec(spec prefabs.BirdSpec) (component.Bird, error) {
	var bird component.Bird
	switch spec.State {
	case "", "gliding":
		bird.State = component.BirdGliding
	case "flapping":
		bird.State = component.BirdFlapping
	case "idle":
		bird.State = component.BirdIdle
	case "walking":
		bird.State = component.BirdWalking
	case "pecking":
		bird.State = component.BirdPecking
	default:
		return bird, fmt.Errorf("unknown bird state %q", spec.State)
	}
	switch spec.Direction {
	case "", "right":
		bird.Direction = component.DirectionRight
	case "left":
		bird.Direction = component.DirectionLeft
	default:
		return bird, fmt.Errorf("unknown direction %q", spec.Direction)
	}
	return bird, nil
}

// ReloadMotion replaces the motion tuning of every live player.
func ReloadMotion(w *ecs.World, spec prefabs.MotionSpec) int {
	motion := MotionFromSpec(spec)
	updated := 0
	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, m *component.Motion) {
		*m = motion
		updated++
	})
	return updated
}
