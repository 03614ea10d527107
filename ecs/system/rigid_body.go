package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

// RigidBodySystem drives bodies through a Chipmunk2D space. Held keys push
// the player with flap forces; after the step the body is read back into
// the render transform and the integer kinematic state, so scoring works
// the same as with MotionSystem.
type RigidBodySystem struct {
	space    *cp.Space
	step     float64
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// NewRigidBodySystem creates a space pulling down with gravity (physics
// units per second squared) stepped by tick each update.
func NewRigidBodySystem(gravity float64, tick time.Duration) *RigidBodySystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &RigidBodySystem{
		space:    space,
		step:     tick.Seconds(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (rs *RigidBodySystem) Space() *cp.Space {
	if rs == nil {
		return nil
	}
	return rs.space
}

func (rs *RigidBodySystem) Update(w *ecs.World) {
	if rs == nil || w == nil {
		return
	}

	rs.cleanupEntities(w)
	rs.syncEntities(w)
	rs.applyForces(w)
	rs.space.Step(rs.step)
	rs.syncTransforms(w)
}

func (rs *RigidBodySystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform) {
		if _, ok := rs.entities[e]; ok {
			return
		}

		ppu := rb.PixelsPerUnit
		if ppu <= 0 {
			ppu = 1
		}
		center := cp.Vector{X: transform.X / ppu, Y: transform.Y / ppu}

		if rb.Static {
			half := rb.Width / 2
			shape := cp.NewSegment(rs.space.StaticBody, center.Add(cp.Vector{X: -half}), center.Add(cp.Vector{X: half}), 0)
			shape.SetFriction(rb.Friction)
			rs.space.AddShape(shape)
			rb.Body = rs.space.StaticBody
			rb.Shape = shape
			rs.entities[e] = &bodyInfo{body: rs.space.StaticBody, shape: shape, static: true}
			return
		}

		mass := rb.Density * rb.Width * rb.Height
		if mass <= 0 {
			mass = 1
		}
		// Infinite moment keeps the bird upright.
		body := cp.NewBody(mass, math.Inf(1))
		body.SetPosition(center)

		scale := 1.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			scale = gs.Scale
		}
		body.SetVelocityUpdateFunc(dampedVelocityFunc(scale, rb.LinearDamping))

		shape := cp.NewBox(body, rb.Width, rb.Height, 0)
		shape.SetFriction(rb.Friction)

		rs.space.AddBody(body)
		rs.space.AddShape(shape)
		rb.Body = body
		rb.Shape = shape
		rs.entities[e] = &bodyInfo{body: body, shape: shape}
	})
}

func (rs *RigidBodySystem) applyForces(w *ecs.World) {
	ecs.ForEach2(w, component.InputComponent.Kind(), component.RigidBodyComponent.Kind(), func(e ecs.Entity, input *component.Input, rb *component.RigidBody) {
		if rb.Body == nil || rb.Static {
			return
		}
		var force cp.Vector
		if input.Up {
			force.Y += rb.FlapYForce
		}
		if input.Left {
			force.X -= rb.FlapXForce
		}
		if input.Right {
			force.X += rb.FlapXForce
		}
		if force != (cp.Vector{}) {
			rb.Body.ApplyForceAtLocalPoint(force, cp.Vector{})
		}
	})
}

func (rs *RigidBodySystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, rb *component.RigidBody, transform *component.Transform) {
		if rb.Body == nil || rb.Static {
			return
		}
		ppu := rb.PixelsPerUnit
		if ppu <= 0 {
			ppu = 1
		}
		pos := rb.Body.Position()
		transform.X = pos.X * ppu
		transform.Y = pos.Y * ppu

		kin, ok := ecs.Get(w, e, component.KinematicComponent.Kind())
		if !ok {
			return
		}
		factor := 1.0
		if motion, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok && motion.TranslationFactor > 0 {
			factor = motion.TranslationFactor
		}
		vel := rb.Body.Velocity()
		kin.Position = toGrid(pos, ppu, factor)
		kin.Velocity = toGrid(vel.Mult(rs.step), ppu, factor)
	})
}

func (rs *RigidBodySystem) cleanupEntities(w *ecs.World) {
	for e, info := range rs.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.RigidBodyComponent.Kind()) {
			continue
		}
		rs.space.RemoveShape(info.shape)
		if !info.static {
			rs.space.RemoveBody(info.body)
		}
		delete(rs.entities, e)
	}
}

// dampedVelocityFunc scales gravity per body and applies linear damping as
// v *= 1/(1+dt*damping) on top of the space damping.
func dampedVelocityFunc(gravityScale, linearDamping float64) func(*cp.Body, cp.Vector, float64, float64) {
	return func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(gravityScale), damping/(1+dt*linearDamping), dt)
	}
}

// toGrid maps physics units to integer grid units through pixels.
func toGrid(v cp.Vector, ppu, factor float64) component.Vec2 {
	return component.Vec2{
		X: int64(math.Round(v.X * ppu / factor)),
		Y: int64(math.Round(v.Y * ppu / factor)),
	}
}
