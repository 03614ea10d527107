package entity

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flapper/ecs"
	"github.com/milk9111/flapper/ecs/component"
	"github.com/milk9111/flapper/prefabs"
	"github.com/milk9111/flapper/session"
)

// Controller selects how the player body is simulated.
type Controller string

const (
	ControllerKinematic Controller = "kinematic"
	ControllerRigid     Controller = "rigid"
)

func ParseController(s string) (Controller, error) {
	switch c := Controller(strings.ToLower(strings.TrimSpace(s))); c {
	case "", ControllerKinematic:
		return ControllerKinematic, nil
	case ControllerRigid:
		return ControllerRigid, nil
	default:
		return "", fmt.Errorf("entity: unknown controller %q", s)
	}
}

// ImageLoader resolves a sprite sheet by asset name.
type ImageLoader func(name string) (*ebiten.Image, error)

// Options configures the builders. A nil Images loader leaves sprites
// without pixels, which is how the headless simulation runs.
type Options struct {
	Images     ImageLoader
	Controller Controller
	Scope      session.Mode
}

func addTransform(w *ecs.World, e ecs.Entity, spec prefabs.TransformSpec) error {
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, spec prefabs.SpriteSpec, images ImageLoader) error {
	sprite := component.Sprite{
		FrameW: spec.FrameW,
		FrameH: spec.FrameH,
		Index:  spec.Index,
		FlipX:  spec.FlipX,
	}
	if spec.Image != "" && images != nil {
		img, err := images(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	if spec.Centered {
		fw, fh := float64(spec.FrameW), float64(spec.FrameH)
		if (fw == 0 || fh == 0) && sprite.Image != nil {
			b := sprite.Image.Bounds()
			fw, fh = float64(b.Dx()), float64(b.Dy())
		}
		sprite.OriginX = fw / 2
		sprite.OriginY = fh / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

func addRenderLayer(w *ecs.World, e ecs.Entity, spec prefabs.RenderLayerSpec) error {
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addRigidBody(w *ecs.World, e ecs.Entity, spec prefabs.RigidBodySpec) error {
	if err := ecs.Add(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{
		Width:         spec.Width,
		Height:        spec.Height,
		Density:       spec.Density,
		Friction:      spec.Friction,
		LinearDamping: spec.LinearDamping,
		FlapXForce:    spec.FlapXForce,
		FlapYForce:    spec.FlapYForce,
		PixelsPerUnit: spec.PixelsPerUnit,
		Static:        spec.Static,
	}); err != nil {
		return err
	}
	if spec.GravityScale == 0 || spec.Static {
		return nil
	}
	return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: spec.GravityScale})
}

func addScope(w *ecs.World, e ecs.Entity, mode session.Mode) error {
	return ecs.Add(w, e, component.ScopedComponent.Kind(), &component.Scoped{Mode: mode})
}

// DespawnScoped destroys every entity scoped to mode and reports how many
// were removed.
func DespawnScoped(w *ecs.World, mode session.Mode) int {
	removed := 0
	ecs.ForEach(w, component.ScopedComponent.Kind(), func(e ecs.Entity, scoped *component.Scoped) {
		if scoped.Mode != mode {
			return
		}
		if w.DestroyEntity(e) {
			removed++
		}
	})
	return removed
}
