package system

import (
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

type BehaviorSystem struct{}

func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{}
}

func (b *BehaviorSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.InputComponent.Kind(), component.BirdComponent.Kind(), func(e ecs.Entity, input *component.Input, bird *component.Bird) {
		*bird = NextBird(*bird, *input)
	})
}

// NextBird returns the behavior after one tick of input. Any flap key
// flaps; with none held an airborne bird glides. Ground states are never
// entered here and survive a tick without input. When left and right are
// both held the bird faces right.
func NextBird(bird component.Bird, in component.Input) component.Bird {
	if !in.Steering() {
		if !bird.State.Grounded() {
			bird.State = component.BirdGliding
		}
		return bird
	}

	bird.State = component.BirdFlapping
	if in.Left {
		bird.Direction = component.DirectionLeft
	}
	if in.Right {
		bird.Direction = component.DirectionRight
	}
	return bird
}
