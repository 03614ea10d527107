package component

// Vec2 is an integer world-grid vector.
type Vec2 struct {
	X int64
	Y int64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Kinematic is the authoritative integer motion state of the player.
// Velocity is in grid units per tick.
type Kinematic struct {
	Position Vec2
	Velocity Vec2
}

var KinematicComponent = NewComponent[Kinematic]()

// Motion holds the per-tick tuning used by the integrator and the physics
// step. Values come from the player prefab.
type Motion struct {
	FlapX             int64
	FlapY             int64
	Gravity           int64
	Resistance        int64
	TranslationFactor float64
}

var MotionComponent = NewComponent[Motion]()

// Steer applies the held keys as velocity deltas. Left and right cancel.
func (k *Kinematic) Steer(in Input, m Motion) {
	if in.Up {
		k.Velocity.Y += m.FlapY
	}
	if in.Left {
		k.Velocity.X -= m.FlapX
	}
	if in.Right {
		k.Velocity.X += m.FlapX
	}
}

// Integrate advances the position by one tick of velocity.
func (k *Kinematic) Integrate() {
	k.Position = k.Position.Add(k.Velocity)
}

// Settle applies gravity and horizontal resistance. Resistance never pushes
// the velocity past zero.
func (k *Kinematic) Settle(m Motion) {
	k.Velocity.Y -= m.Gravity
	switch vx := k.Velocity.X; {
	case vx > 0:
		k.Velocity.X = max(vx-m.Resistance, 0)
	case vx < 0:
		k.Velocity.X = min(vx+m.Resistance, 0)
	}
}
