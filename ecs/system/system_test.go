package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
)

const tick = time.Second / 60

func newTestPlayer(t *testing.T, w *ecs.World, vel component.Vec2, bird component.Bird) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.KinematicComponent.Kind(), &component.Kinematic{Velocity: vel})
	mustAdd(t, w, e, component.MotionComponent.Kind(), &component.Motion{
		FlapX: 2, FlapY: 10, Gravity: 6, Resistance: 1, TranslationFactor: 1.0 / 15,
	})
	mustAdd(t, w, e, component.BirdComponent.Kind(), &bird)
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{
		Timer:      component.NewRepeatingTimer(100 * time.Millisecond),
		FrameCount: 9,
	})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{FrameW: 16, FrameH: 16, Index: 3})
	return e
}

func newKinematicScheduler(input *InputSystem) *ecs.Scheduler {
	return ecs.NewScheduler().
		Add("input", input).
		Add("motion", NewMotionSystem()).
		Add("physics", NewPhysicsSystem()).
		Add("behavior", NewBehaviorSystem()).
		Add("animation", NewAnimationSystem()).
		Add("camera", NewCameraSystem())
}

func TestNoKeysGlidesUnderGravity(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(tick)
	e := newTestPlayer(t, w, component.Vec2{X: 0, Y: 20}, component.Bird{State: component.BirdFlapping})
	input := NewInputSystem()
	sched := newKinematicScheduler(input)

	sched.Update(w)

	kin := mustGet(t, w, e, component.KinematicComponent.Kind())
	if kin.Position != (component.Vec2{X: 0, Y: 20}) {
		t.Fatalf("position = %+v, want {0 20}", kin.Position)
	}
	if kin.Velocity != (component.Vec2{X: 0, Y: 14}) {
		t.Fatalf("velocity = %+v, want {0 14}", kin.Velocity)
	}
	bird := mustGet(t, w, e, component.BirdComponent.Kind())
	if bird.State != component.BirdGliding {
		t.Fatalf("state = %s, want gliding", bird.State)
	}
	transform := mustGet(t, w, e, component.TransformComponent.Kind())
	if want := 20.0 / 15; math.Abs(transform.Y-want) > 1e-9 {
		t.Fatalf("transform.y = %v, want %v", transform.Y, want)
	}
}

func TestHoldingUpAddsFourPerTick(t *testing.T) {
	for _, n := range []int{1, 5, 30} {
		w := ecs.NewWorld()
		w.SetDelta(tick)
		e := newTestPlayer(t, w, component.Vec2{X: 0, Y: 20}, component.Bird{State: component.BirdGliding})
		input := NewInputSystem()
		input.Set(component.Input{Up: true})
		sched := newKinematicScheduler(input)

		for range n {
			sched.Update(w)
		}

		kin := mustGet(t, w, e, component.KinematicComponent.Kind())
		if want := int64(20 + 4*n); kin.Velocity.Y != want {
			t.Fatalf("after %d ticks vy = %d, want %d", n, kin.Velocity.Y, want)
		}
		bird := mustGet(t, w, e, component.BirdComponent.Kind())
		if bird.State != component.BirdFlapping {
			t.Fatalf("state = %s, want flapping", bird.State)
		}
	}
}

func TestResistanceStopsAtZero(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(tick)
	e := newTestPlayer(t, w, component.Vec2{X: 1, Y: 0}, component.Bird{State: component.BirdGliding})
	sched := newKinematicScheduler(NewInputSystem())

	for range 3 {
		sched.Update(w)
		kin := mustGet(t, w, e, component.KinematicComponent.Kind())
		if kin.Velocity.X != 0 {
			t.Fatalf("vx = %d, want 0", kin.Velocity.X)
		}
	}
	kin := mustGet(t, w, e, component.KinematicComponent.Kind())
	if kin.Position.X != 1 {
		t.Fatalf("position.x = %d, want 1", kin.Position.X)
	}
}

func TestNextBird(t *testing.T) {
	cases := []struct {
		name string
		from component.Bird
		in   component.Input
		want component.Bird
	}{
		{
			name: "up flaps keeping direction",
			from: component.Bird{State: component.BirdGliding, Direction: component.DirectionLeft},
			in:   component.Input{Up: true},
			want: component.Bird{State: component.BirdFlapping, Direction: component.DirectionLeft},
		},
		{
			name: "left turns left",
			from: component.Bird{State: component.BirdGliding, Direction: component.DirectionRight},
			in:   component.Input{Left: true},
			want: component.Bird{State: component.BirdFlapping, Direction: component.DirectionLeft},
		},
		{
			name: "right turns right",
			from: component.Bird{State: component.BirdFlapping, Direction: component.DirectionLeft},
			in:   component.Input{Right: true},
			want: component.Bird{State: component.BirdFlapping, Direction: component.DirectionRight},
		},
		{
			name: "both faces right",
			from: component.Bird{State: component.BirdGliding, Direction: component.DirectionLeft},
			in:   component.Input{Left: true, Right: true},
			want: component.Bird{State: component.BirdFlapping, Direction: component.DirectionRight},
		},
		{
			name: "release glides",
			from: component.Bird{State: component.BirdFlapping, Direction: component.DirectionLeft},
			want: component.Bird{State: component.BirdGliding, Direction: component.DirectionLeft},
		},
		{name: "idle kept", from: component.Bird{State: component.BirdIdle}, want: component.Bird{State: component.BirdIdle}},
		{name: "walking kept", from: component.Bird{State: component.BirdWalking}, want: component.Bird{State: component.BirdWalking}},
		{name: "pecking kept", from: component.Bird{State: component.BirdPecking}, want: component.Bird{State: component.BirdPecking}},
		{
			name: "idle flaps on input",
			from: component.Bird{State: component.BirdIdle},
			in:   component.Input{Up: true},
			want: component.Bird{State: component.BirdFlapping},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextBird(tc.from, tc.in); got != tc.want {
				t.Fatalf("NextBird = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNextFrame(t *testing.T) {
	cases := []struct {
		name    string
		state   component.BirdState
		current int
		want    int
	}{
		{name: "glide from anywhere", state: component.BirdGliding, current: 7, want: 3},
		{name: "flap advances", state: component.BirdFlapping, current: 3, want: 4},
		{name: "flap wraps", state: component.BirdFlapping, current: 8, want: 3},
		{name: "flap clamps up", state: component.BirdFlapping, current: 0, want: 3},
		{name: "idle", state: component.BirdIdle, current: 5, want: 0},
		{name: "walk advances", state: component.BirdWalking, current: 1, want: 2},
		{name: "walk wraps", state: component.BirdWalking, current: 2, want: 0},
		{name: "walk from flap tiles", state: component.BirdWalking, current: 6, want: 0},
		{name: "peck", state: component.BirdPecking, current: 4, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextFrame(tc.state, tc.current, 9); got != tc.want {
				t.Fatalf("NextFrame(%s, %d) = %d, want %d", tc.state, tc.current, got, tc.want)
			}
		})
	}
}

func TestFlappingFramesStayInFlapRange(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(50 * time.Millisecond)
	e := newTestPlayer(t, w, component.Vec2{}, component.Bird{State: component.BirdGliding})
	input := NewInputSystem()
	input.Set(component.Input{Up: true, Right: true})
	sched := newKinematicScheduler(input)

	seen := make(map[int]bool)
	for range 100 {
		sched.Update(w)
		sprite := mustGet(t, w, e, component.SpriteComponent.Kind())
		if sprite.Index < 3 || sprite.Index >= 9 {
			t.Fatalf("flapping frame %d outside [3, 9)", sprite.Index)
		}
		seen[sprite.Index] = true
	}
	if !mustGet(t, w, e, component.SpriteComponent.Kind()).FlipX {
		t.Fatalf("facing right should mirror the sheet")
	}
	if len(seen) != 6 {
		t.Fatalf("expected to cycle all 6 flap frames, saw %v", seen)
	}

	input.Set(component.Input{Left: true})
	for range 2 {
		sched.Update(w)
	}
	sprite := mustGet(t, w, e, component.SpriteComponent.Kind())
	if sprite.FlipX {
		t.Fatalf("facing left should not mirror the sheet")
	}

	input.Set(component.Input{})
	for range 10 {
		sched.Update(w)
	}
	sprite = mustGet(t, w, e, component.SpriteComponent.Kind())
	if sprite.Index != 3 {
		t.Fatalf("gliding frame = %d, want 3", sprite.Index)
	}
}

func TestAnimationOnlyChangesWhenTimerFires(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDelta(tick)
	e := newTestPlayer(t, w, component.Vec2{}, component.Bird{State: component.BirdFlapping})
	anim := NewAnimationSystem()

	// 100ms at 60 TPS fires on the seventh tick.
	for i := 1; i <= 6; i++ {
		anim.Update(w)
		if got := mustGet(t, w, e, component.SpriteComponent.Kind()).Index; got != 3 {
			t.Fatalf("tick %d: frame changed to %d before the timer fired", i, got)
		}
	}
	anim.Update(w)
	if got := mustGet(t, w, e, component.SpriteComponent.Kind()).Index; got != 4 {
		t.Fatalf("frame = %d after timer fired, want 4", got)
	}
}

func TestInputSystemEndPushesEvent(t *testing.T) {
	w := ecs.NewWorld()
	input := NewInputSystem()
	input.Set(component.Input{End: true})
	input.Update(w)

	events := w.Events().Drain()
	if len(events) != 1 || events[0].Kind != ecs.EventEndGame {
		t.Fatalf("expected one end game event, got %+v", events)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := newTestPlayer(t, w, component.Vec2{}, component.Bird{})
	mustGet(t, w, player, component.TransformComponent.Kind()).X = 100

	cam := w.CreateEntity()
	mustAdd(t, w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1, Smoothness: 0.5})
	mustAdd(t, w, cam, component.TransformComponent.Kind(), &component.Transform{})

	cs := NewCameraSystem()
	cs.Update(w)
	if got := mustGet(t, w, cam, component.TransformComponent.Kind()).X; got != 50 {
		t.Fatalf("camera x = %v, want 50", got)
	}
	cs.Update(w)
	if got := mustGet(t, w, cam, component.TransformComponent.Kind()).X; got != 75 {
		t.Fatalf("camera x = %v, want 75", got)
	}
	if got := mustGet(t, w, cam, component.TransformComponent.Kind()).Y; got != 0 {
		t.Fatalf("camera y moved to %v without FollowY", got)
	}
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], value *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, value); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		t.Fatalf("entity %s missing component", e)
	}
	return v
}
