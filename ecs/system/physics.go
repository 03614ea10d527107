package system

import (
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

// PhysicsSystem applies gravity and horizontal resistance once per tick,
// after MotionSystem has integrated the position.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.KinematicComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, kin *component.Kinematic, motion *component.Motion) {
		if ecs.Has(w, e, component.RigidBodyComponent.Kind()) {
			return
		}
		kin.Settle(*motion)
	})
}
