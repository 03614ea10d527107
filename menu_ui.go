package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/flapper/common"
	"github.com/milk9111/flapper/session"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	startLabel   = "START"
	readyLabel   = "READY?"
	pressedLabel = "GO!!"
)

var (
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	idleColor  = color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff}
	hoverColor = color.NRGBA{R: 0x40, G: 0xbf, B: 0x40, A: 0xff}
	pressColor = color.NRGBA{R: 0x59, G: 0xd9, B: 0x59, A: 0xff}
)

// NewMenuUI builds the main menu: the last and best distance and a START
// button that asks for a new run.
func NewMenuUI(board session.Scoreboard, start func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	highScore := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("high score: %d", board.HighScore), &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	score := widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("score: %d", board.Score), &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	var startBtn *widget.Button
	startBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(idleColor),
			Hover:   imageui.NewNineSliceColor(hoverColor),
			Pressed: imageui.NewNineSliceColor(pressColor),
		}),
		widget.ButtonOpts.Text(startLabel, &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(96, 28)),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			startBtn.Text().Label = readyLabel
		}),
		widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
			startBtn.Text().Label = startLabel
		}),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			startBtn.Text().Label = pressedLabel
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if start != nil {
				start()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(highScore)
	panel.AddChild(score)
	panel.AddChild(startBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
