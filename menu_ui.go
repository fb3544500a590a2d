package main

import (
	"image/color"
	"slices"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/limitless/game"
	"github.com/milk9111/limitless/input"
)

const menuPanelWidth = 240

// menuUI shows the active menu as clickable ebitenui buttons. Clicks are
// fed back as choices through the input state, so the mouse goes through
// the same path as the keyboard.
type menuUI struct {
	state *input.State
	face  ebtext.Face
	ui    *ebitenui.UI
	shown game.MenuView
}

func newMenuUI(state *input.State) *menuUI {
	return &menuUI{
		state: state,
		face:  ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Update rebuilds the widgets when the menu changes and lets ebitenui
// process the mouse. A nil view hides the menu.
func (m *menuUI) Update(v *game.MenuView) {
	if v == nil {
		m.ui = nil
		return
	}
	if m.ui == nil || !sameMenu(m.shown, *v) {
		m.ui = m.build(*v)
		m.shown = game.MenuView{Title: v.Title, Items: slices.Clone(v.Items), Cursor: v.Cursor}
	}
	m.ui.Update()
}

func (m *menuUI) Draw(screen *ebiten.Image) {
	if m.ui == nil {
		return
	}
	m.ui.Draw(screen)
}

func sameMenu(a, b game.MenuView) bool {
	return a.Title == b.Title && a.Cursor == b.Cursor && slices.Equal(a.Items, b.Items)
}

func (m *menuUI) build(v game.MenuView) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff})

	face := m.face
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(menuPanelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(v.Title, &face, white),
		widget.TextOpts.WidgetOpts(center),
	))

	for i, item := range v.Items {
		label := "  " + item
		if i == v.Cursor {
			label = "> " + item
		}
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: hoverImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.state.Choose(i)
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
