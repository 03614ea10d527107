package component

// GravityScale multiplies the space gravity felt by a rigid body. Bodies
// without one fall at scale 1.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
