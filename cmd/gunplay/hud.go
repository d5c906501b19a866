package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HUD shows the pickup prompt while playing and the pause menu while paused.
type HUD struct {
	game   *Game
	play   *ebitenui.UI
	pause  *ebitenui.UI
	prompt *widget.Text

	// shown holds the items whose prompt is visible, with their labels.
	shown map[ecs.Entity]string
	last  ecs.Entity
}

func NewHUD(g *Game, width, height int) *HUD {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	h := &HUD{game: g, shown: make(map[ecs.Entity]string)}

	h.prompt = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	playRoot := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Bottom: 80}),
	)))
	playRoot.AddChild(h.prompt)
	h.play = &ebitenui.UI{Container: playRoot}

	h.pause = newPauseUI(g, &face, width, height)
	return h
}

// SetPrompt records a pickup prompt shown or hidden for an item.
func (h *HUD) SetPrompt(w *ecs.World, e ecs.Entity, visible bool) {
	if !visible {
		delete(h.shown, e)
		if h.last == e {
			h.last = 0
		}
		return
	}

	name := "item"
	if item, ok := ecs.Get(w, e, component.ItemComponent.Kind()); ok && item.Name != "" {
		name = item.Name
	}
	h.shown[e] = fmt.Sprintf("[E] pick up %s", name)
	h.last = e
}

func (h *HUD) Update() {
	if h.game.paused {
		h.pause.Update()
		return
	}

	label := ""
	if text, ok := h.shown[h.last]; ok {
		label = text
	} else {
		for _, text := range h.shown {
			label = text
			break
		}
	}
	h.prompt.Label = label
	h.play.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h.game.paused {
		h.pause.Draw(screen)
		return
	}
	h.play.Draw(screen)
}

// newPauseUI builds a centered pause menu with Resume and Quit buttons.
func newPauseUI(g *Game, face *ebtext.Face, width, height int) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.setPaused(false)
		}),
	)

	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Quit", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.quit = true
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
			widget.WidgetOpts.MinSize(width/3, height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
