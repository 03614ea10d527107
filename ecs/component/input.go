package component

// Input stores the held keys for the current tick.
type Input struct {
	Up    bool
	Left  bool
	Right bool
	Quit  bool
	End   bool
}

// Steering reports whether any flap key is held.
func (i Input) Steering() bool {
	return i.Up || i.Left || i.Right
}

var InputComponent = NewComponent[Input]()
