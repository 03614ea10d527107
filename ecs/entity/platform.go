package entity

import (
	"fmt"

	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
	"github.com/milk9111/flapper/prefabs"
)

// NewPlatform spawns the ground strip under the spawn point. It only gets a
// static body when the rigid controller is active.
func NewPlatform(w *ecs.World, spec *prefabs.PlatformSpec, opts Options) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("platform: nil spec")
	}

	platform := ecs.CreateEntity(w)
	if err := ecs.Add(w, platform, component.PlatformTagComponent.Kind(), &component.PlatformTag{}); err != nil {
		return 0, fmt.Errorf("platform: add platform tag: %w", err)
	}
	if err := addTransform(w, platform, spec.Transform); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := addSprite(w, platform, spec.Sprite, opts.Images); err != nil {
		return 0, fmt.Errorf("platform: add sprite: %w", err)
	}
	if err := addRenderLayer(w, platform, spec.RenderLayer); err != nil {
		return 0, fmt.Errorf("platform: add render layer: %w", err)
	}
	if opts.Controller == ControllerRigid {
		rb := spec.RigidBody
		rb.Static = true
		if err := addRigidBody(w, platform, rb); err != nil {
			return 0, fmt.Errorf("platform: add rigid body: %w", err)
		}
	}
	if err := addScope(w, platform, opts.Scope); err != nil {
		return 0, fmt.Errorf("platform: add scope: %w", err)
	}
	return platform, nil
}
