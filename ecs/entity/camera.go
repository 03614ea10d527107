package entity

import (
	"fmt"

	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
	"github.com/milk9111/flapper/prefabs"
)

func NewCamera(w *ecs.World, spec *prefabs.CameraSpec, opts Options) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := addTransform(w, camera, spec.Transform); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	smooth := spec.Smoothness
	if smooth == 0 {
		smooth = 0.15
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       zoom,
		Smoothness: smooth,
		FollowY:    spec.FollowY,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	if err := addScope(w, camera, opts.Scope); err != nil {
		return 0, fmt.Errorf("camera: add scope: %w", err)
	}
	return camera, nil
}
