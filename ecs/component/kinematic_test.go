package component

import (
	"testing"
	"time"
)

var defaultMotion = Motion{FlapX: 2, FlapY: 10, Gravity: 6, Resistance: 1, TranslationFactor: 1.0 / 15}

func TestKinematicSteer(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want Vec2
	}{
		{name: "none", in: Input{}, want: Vec2{X: 0, Y: 20}},
		{name: "up", in: Input{Up: true}, want: Vec2{X: 0, Y: 30}},
		{name: "left", in: Input{Left: true}, want: Vec2{X: -2, Y: 20}},
		{name: "right", in: Input{Right: true}, want: Vec2{X: 2, Y: 20}},
		{name: "left and right cancel", in: Input{Left: true, Right: true}, want: Vec2{X: 0, Y: 20}},
		{name: "all", in: Input{Up: true, Left: true, Right: true}, want: Vec2{X: 0, Y: 30}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := Kinematic{Velocity: Vec2{X: 0, Y: 20}}
			k.Steer(tc.in, defaultMotion)
			if k.Velocity != tc.want {
				t.Fatalf("velocity = %+v, want %+v", k.Velocity, tc.want)
			}
		})
	}
}

func TestKinematicSettle(t *testing.T) {
	cases := []struct {
		name string
		vel  Vec2
		want Vec2
	}{
		{name: "at rest", vel: Vec2{}, want: Vec2{X: 0, Y: -6}},
		{name: "one right stops", vel: Vec2{X: 1, Y: 0}, want: Vec2{X: 0, Y: -6}},
		{name: "one left stops", vel: Vec2{X: -1, Y: 0}, want: Vec2{X: 0, Y: -6}},
		{name: "right slows", vel: Vec2{X: 5, Y: 20}, want: Vec2{X: 4, Y: 14}},
		{name: "left slows", vel: Vec2{X: -5, Y: 20}, want: Vec2{X: -4, Y: 14}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k := Kinematic{Velocity: tc.vel}
			k.Settle(defaultMotion)
			if k.Velocity != tc.want {
				t.Fatalf("velocity = %+v, want %+v", k.Velocity, tc.want)
			}
		})
	}
}

func TestKinematicSettleNoOvershoot(t *testing.T) {
	m := defaultMotion
	m.Resistance = 3
	k := Kinematic{Velocity: Vec2{X: 2}}
	k.Settle(m)
	if k.Velocity.X != 0 {
		t.Fatalf("vx = %d, want 0", k.Velocity.X)
	}
}

func TestKinematicIntegrate(t *testing.T) {
	k := Kinematic{Position: Vec2{X: 3, Y: -4}, Velocity: Vec2{X: -20, Y: 20}}
	k.Integrate()
	if k.Position != (Vec2{X: -17, Y: 16}) {
		t.Fatalf("position = %+v", k.Position)
	}
}

func TestTimerRepeating(t *testing.T) {
	timer := NewRepeatingTimer(100 * time.Millisecond)
	fired := 0
	for range 10 {
		if timer.Tick(time.Second / 60) {
			fired++
		}
	}
	// 10 ticks of ~16.7ms is ~166.7ms: one wrap.
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	if timer.Elapsed >= timer.Duration {
		t.Fatalf("elapsed %v not wrapped below %v", timer.Elapsed, timer.Duration)
	}
}
