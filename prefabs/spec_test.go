package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadPlayerSpecDefaults(t *testing.T) {
	withDir(t, t.TempDir())

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}

	if spec.Kinematic.Velocity != (VecSpec{X: 0, Y: 20}) {
		t.Fatalf("initial velocity = %+v, want {0 20}", spec.Kinematic.Velocity)
	}
	m := spec.Motion
	if m.FlapX != 2 || m.FlapY != 10 || m.Gravity != 6 || m.Resistance != 1 || m.TranslationDivisor != 15 {
		t.Fatalf("unexpected motion tuning %+v", m)
	}
	if spec.Animation.Period != 100*time.Millisecond {
		t.Fatalf("animation period = %v, want 100ms", spec.Animation.Period)
	}
	if spec.Sprite.FrameCount != 9 {
		t.Fatalf("frame count = %d, want 9", spec.Sprite.FrameCount)
	}
	if spec.Bird.State != "gliding" || spec.Bird.Direction != "right" {
		t.Fatalf("initial bird = %+v", spec.Bird)
	}
	if spec.RigidBody.FlapXForce != 1.5 || spec.RigidBody.FlapYForce != 3.5 || spec.RigidBody.LinearDamping != 0.5 {
		t.Fatalf("unexpected rigid body tuning %+v", spec.RigidBody)
	}
}

func TestLoadPrefersDiskCopy(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)

	override := []byte("name: camera\nzoom: 3\n")
	if err := os.WriteFile(filepath.Join(dir, CameraFile), override, 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("LoadCameraSpec: %v", err)
	}
	if spec.Zoom != 3 {
		t.Fatalf("zoom = %v, want disk override 3", spec.Zoom)
	}
	if _, ok := ModTime("prefabs/" + CameraFile); !ok {
		t.Fatalf("expected ModTime for disk copy")
	}
}

func TestPlayerSpecValidate(t *testing.T) {
	base := func() PlayerSpec {
		return PlayerSpec{
			Name:      "player",
			Motion:    MotionSpec{TranslationDivisor: 15},
			Sprite:    SpriteSpec{FrameCount: 9},
			Animation: AnimationSpec{Period: 100 * time.Millisecond},
			RigidBody: RigidBodySpec{PixelsPerUnit: 48},
		}
	}

	cases := []struct {
		name    string
		mutate  func(*PlayerSpec)
		wantErr bool
	}{
		{name: "valid", mutate: func(*PlayerSpec) {}},
		{name: "zero divisor", mutate: func(s *PlayerSpec) { s.Motion.TranslationDivisor = 0 }, wantErr: true},
		{name: "no flap frames", mutate: func(s *PlayerSpec) { s.Sprite.FrameCount = 3 }, wantErr: true},
		{name: "zero period", mutate: func(s *PlayerSpec) { s.Animation.Period = 0 }, wantErr: true},
		{name: "zero ppu", mutate: func(s *PlayerSpec) { s.RigidBody.PixelsPerUnit = 0 }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := base()
			tc.mutate(&spec)
			err := spec.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidSpec) {
					t.Fatalf("expected ErrInvalidSpec, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	withDir(t, t.TempDir())

	for _, name := range []string{"cruise", "cruise.tengo", "scripts/cruise.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("LoadScript(%q) returned empty script", name)
		}
	}

	if _, err := LoadScript("missing"); err == nil {
		t.Fatalf("expected error for missing script")
	}
}

func TestWatcherReportsBaseName(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlayerFile), []byte("name: player\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != PlayerFile {
			t.Fatalf("event name = %q, want %q", name, PlayerFile)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}
