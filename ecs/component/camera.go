package component

// Camera follows the player horizontally. The screen center sits on the
// camera transform.
type Camera struct {
	Zoom       float64
	Smoothness float64
	FollowY    bool
}

var CameraComponent = NewComponent[Camera]()
