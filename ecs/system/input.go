package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

// KeySource reports which keys are held this tick.
type KeySource interface {
	Poll() component.Input
}

// KeySourceFunc adapts a function to KeySource.
type KeySourceFunc func() component.Input

func (f KeySourceFunc) Poll() component.Input {
	return f()
}

// Keyboard polls ebiten. Arrows or WASD flap, Escape quits and Backspace
// ends the current run.
type Keyboard struct{}

func (Keyboard) Poll() component.Input {
	return component.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		End:   inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
	}
}

// InputSystem copies the polled keys into every Input component. The keys
// are set by the owner of the tick before the scheduler runs, so polling
// happens even while no player exists.
type InputSystem struct {
	current component.Input
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Set(in component.Input) {
	i.current = in
}

func (i *InputSystem) Current() component.Input {
	return i.current
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = i.current
	})

	if i.current.End {
		w.Events().Push(ecs.Event{Kind: ecs.EventEndGame})
	}
}
