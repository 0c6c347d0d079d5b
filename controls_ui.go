package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/pathrig/ecs/entity"
	"github.com/milk9111/pathrig/route"
)

// NewControlsUI builds the trigger panel on the right edge of the preview.
// Every button goes through the same entry points as the keyboard.
func NewControlsUI(g *Game, rt *route.Route) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x22, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Triggers", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	))

	button := func(label string, fire func() error) {
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if err := fire(); err != nil {
					g.logger.Warn("trigger", "button", label, "err", err)
				}
			}),
		))
	}

	button("Next group", func() error { return entity.SwitchToNext(g.world, g.follower) })
	button("Previous group", func() error { return entity.SwitchToPrevious(g.world, g.follower) })
	for i, grp := range rt.Groups {
		button(fmt.Sprintf("%d: %s", i+1, grp.Name), func() error { return entity.SwitchToName(g.world, g.follower, grp.Name) })
	}
	button("Shake", func() error { return entity.PlayShake(g.world, g.follower) })
	for _, preset := range []string{"short", "medium", "long"} {
		button("Shake "+preset, func() error { return entity.PlayShakePreset(g.world, g.follower, preset) })
	}
	button("Toggle bob", g.toggleOscillation)
	button("Toggle enabled", g.toggleEnabled)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
