package system

import (
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

// Sheet layout: tiles [0, groundFrames) are the ground cycle, the glide pose
// is the first tile after it and the flap cycle runs to the end of the sheet.
const (
	groundFrames = 3
	glideFrame   = groundFrames
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update advances each animation timer by the tick delta and only picks a
// new frame on the ticks where the timer fires.
func (a *AnimationSystem) Update(w *ecs.World) {
	delta := w.Delta()
	ecs.ForEach3(w,
		component.BirdComponent.Kind(),
		component.AnimationComponent.Kind(),
		component.SpriteComponent.Kind(),
		func(e ecs.Entity, bird *component.Bird, anim *component.Animation, sprite *component.Sprite) {
			if !anim.Timer.Tick(delta) {
				return
			}
			// The sheet faces left.
			sprite.FlipX = bird.Direction == component.DirectionRight
			sprite.Index = NextFrame(bird.State, sprite.Index, anim.FrameCount)
		})
}

// NextFrame picks the sheet tile shown after current for state.
func NextFrame(state component.BirdState, current, frameCount int) int {
	switch state {
	case component.BirdGliding:
		return glideFrame
	case component.BirdFlapping:
		next := max(current+1, glideFrame)
		if next >= frameCount {
			return glideFrame
		}
		return next
	case component.BirdWalking:
		next := current + 1
		if next >= groundFrames {
			return 0
		}
		return next
	default:
		return 0
	}
}
