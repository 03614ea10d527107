package system

import (
	"github.com/milk9111/flapper/common"
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

// CameraSystem eases the camera transform toward the player. The camera
// transform is the world point drawn at the screen center.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		target, ok := w.First(component.PlayerTagComponent.Kind())
		if !ok {
			return
		}
		cs.targetEntity = target
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t := cam.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, t)
	if cam.FollowY {
		camTransform.Y = common.Lerp(camTransform.Y, target.Y, t)
	}
}
