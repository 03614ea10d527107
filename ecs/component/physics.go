package component

import "github.com/jakecoffman/cp"

// RigidBody is a Chipmunk2D body driven by flap forces instead of the
// integer integrator. Sizes are in physics units; PixelsPerUnit maps them to
// the render transform.
type RigidBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width         float64
	Height        float64
	Density       float64
	Friction      float64
	LinearDamping float64
	FlapXForce    float64
	FlapYForce    float64
	PixelsPerUnit float64
	Static        bool
}

var RigidBodyComponent = NewComponent[RigidBody]()
