package component

// Transform is the float render placement of an entity in world space, y up.
// For the player it is derived from Kinematic and never read back.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
