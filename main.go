package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/gadget/geom"
	"github.com/OpticalFlyer/gadget/palette"
	"github.com/OpticalFlyer/gadget/render"
	"github.com/OpticalFlyer/gadget/ui"
)

const (
	screenWidth  = 400
	screenHeight = 700
)

// Showcase implements ebiten.Game interface.
type Showcase struct {
	ui        *ui.Controller
	debugMode bool
	status    string

	// Single-pointer touch state
	touchID     ebiten.TouchID
	touchActive bool
}

func (s *Showcase) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.debugMode = !s.debugMode
	}

	x, y, pressed := s.pointer()
	s.ui.HandleInput(x, y, pressed)
	return nil
}

// pointer returns the mouse position and button state, or the first active
// touch when there is one.
func (s *Showcase) pointer() (x, y float64, pressed bool) {
	if tx, ty, ok := s.handleTouch(); ok {
		return tx, ty, true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (s *Showcase) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	s.ui.Draw(screen)

	if s.debugMode {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\n%s", fps, tps, s.status))
	}
}

func (s *Showcase) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// colorOr looks name up in the palette, falling back to c.
func colorOr(name string, c color.NRGBA) color.NRGBA {
	if v, ok := palette.Lookup(name); ok {
		return v
	}
	return c
}

func (s *Showcase) build(r ui.Renderer) error {
	root := ui.NewBackground(r, geom.R(0, 0, screenWidth, screenHeight),
		colorOr("background", color.NRGBA{R: 240, G: 240, B: 240}), 255)

	title := ui.NewLabel(r, geom.R(20, 10, 360, 40), "Widget showcase", ui.DefaultLabelStyle())

	volume, err := ui.NewSlider(r, geom.R(100, 100, 100, 5), "Volume",
		ui.SliderRange{Min: 0, Max: 100, Jump: 2, Value: 50}, nil)
	if err != nil {
		return err
	}
	volume.SetOnChange(func() { s.status = fmt.Sprintf("volume %s", ui.FormatValue(volume.Value())) })

	fine, err := ui.NewSlider(r, geom.R(100, 160, 200, 5), "Fine",
		ui.SliderRange{Min: 10, Max: 30, Jump: 0.1, Value: 20}, nil)
	if err != nil {
		return err
	}
	fine.SetOnChange(func() { s.status = fmt.Sprintf("fine %s", ui.FormatValue(fine.Value())) })

	muted := ui.NewCheckbox(r, geom.R(100, 230, 200, 20), "Muted", nil)
	muted.SetOnClick(func() { s.status = fmt.Sprintf("muted %t", muted.Checked()) })

	group := ui.NewPlaceholder(r, geom.R(10, 300, 300, 380))
	overlay := ui.NewBackground(r, geom.R(20, 20, 260, 200),
		colorOr("overlay", palette.Grey), 128)

	clicks := 0
	button := ui.NewButton(r, geom.R(50, 300, 150, 50), "Click Me!", nil)
	style := button.Style()
	style.Color = colorOr("accent", palette.Orange)
	button.SetStyle(style)
	button.SetOnClick(func() {
		clicks++
		button.SetText(fmt.Sprintf("Clicked %d", clicks))
	})

	nested := ui.NewButton(r, geom.R(30, 30, 200, 40), "Reset", func() {
		volume.SetValue(50)
		fine.SetValue(20)
		muted.SetChecked(false)
		clicks = 0
		button.SetText("Click Me!")
	})

	for _, e := range []struct {
		parent ui.Container
		child  ui.Element
	}{
		{root, title},
		{root, volume},
		{root, fine},
		{root, muted},
		{root, group},
		{group, overlay},
		{overlay, nested},
		{group, button},
	} {
		if err := e.parent.AddChild(e.child); err != nil {
			return err
		}
	}

	s.ui.Add(root)
	return nil
}

func main() {
	palettePath := flag.String("palette", "palette.toml", "path to the TOML color palette")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	palette.Init(*palettePath)
	slog.Info("palette loaded", "path", *palettePath, "colors", palette.Default().Len())

	r, err := render.New(render.WithFallbackFont(render.FontSans))
	if err != nil {
		log.Fatal(err)
	}

	app := &Showcase{
		ui:        ui.NewController(),
		debugMode: *debug,
	}
	if err := app.build(r); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Gadget")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
