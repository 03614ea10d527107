package system

import (
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

// MotionSystem turns held keys into velocity, integrates the integer
// position and moves the render transform by the same velocity scaled by
// the translation factor. Rigid bodies are left to RigidBodySystem.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.KinematicComponent.Kind(),
		component.MotionComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, input *component.Input, kin *component.Kinematic, motion *component.Motion, transform *component.Transform) {
			if ecs.Has(w, e, component.RigidBodyComponent.Kind()) {
				return
			}
			kin.Steer(*input, *motion)
			kin.Integrate()
			transform.X += float64(kin.Velocity.X) * motion.TranslationFactor
			transform.Y += float64(kin.Velocity.Y) * motion.TranslationFactor
		})
}
