package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/flapper/assets"
	"github.com/milk9111/flapper/common"
	"github.com/milk9111/flapper/ecs/component"
	"github.com/milk9111/flapper/ecs/system"
	"github.com/milk9111/flapper/prefabs"
)

const viewSize = 256

var stateKeys = []struct {
	key   ebiten.Key
	state component.BirdState
}{
	{ebiten.Key1, component.BirdIdle},
	{ebiten.Key2, component.BirdFlapping},
	{ebiten.Key3, component.BirdGliding},
	{ebiten.Key4, component.BirdWalking},
	{ebiten.Key5, component.BirdPecking},
}

// sheetView plays the player sheet with the in-game frame rules so the
// tile layout can be checked without flying. 1-5 pick a state, arrows turn.
type sheetView struct {
	sprite component.Sprite
	anim   component.Animation
	bird   component.Bird
}

func (v *sheetView) Update() error {
	for _, sk := range stateKeys {
		if inpututil.IsKeyJustPressed(sk.key) {
			v.bird.State = sk.state
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.bird.Direction = component.DirectionLeft
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.bird.Direction = component.DirectionRight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if v.anim.Timer.Tick(common.TickDuration) {
		v.sprite.FlipX = v.bird.Direction == component.DirectionRight
		v.sprite.Index = system.NextFrame(v.bird.State, v.sprite.Index, v.anim.FrameCount)
	}
	return nil
}

func (v *sheetView) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if v.sprite.Image == nil {
		return
	}
	frame, ok := v.sprite.Image.SubImage(v.sprite.Source()).(*ebiten.Image)
	if !ok {
		return
	}

	const scale = 8.0
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-v.sprite.OriginX, -v.sprite.OriginY)
	if v.sprite.FlipX {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(viewSize/2, viewSize/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s %s frame %d", v.bird.State, v.bird.Direction, v.sprite.Index))
}

func (v *sheetView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	img, err := assets.LoadImage(spec.Sprite.Image)
	if err != nil {
		log.Fatal(err)
	}

	v := &sheetView{
		sprite: component.Sprite{
			Image:   img,
			FrameW:  spec.Sprite.FrameW,
			FrameH:  spec.Sprite.FrameH,
			Index:   spec.Sprite.Index,
			OriginX: float64(spec.Sprite.FrameW) / 2,
			OriginY: float64(spec.Sprite.FrameH) / 2,
		},
		anim: component.Animation{
			Timer:      component.NewRepeatingTimer(spec.Animation.Period),
			FrameCount: spec.Sprite.FrameCount,
		},
		bird: component.Bird{State: component.BirdFlapping},
	}

	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("bird sheet")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
