package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font/basicfont"

	"github.com/whosawme/solar-sim/pkg/physics"
	"github.com/whosawme/solar-sim/pkg/simulation"
	"github.com/whosawme/solar-sim/pkg/stream"
)

const (
	screenWidth  = 1600
	screenHeight = 1200

	// UI
	uiBtnW   = 100
	uiBtnH   = 30
	uiBtnPad = 10

	// suwaki
	sliderX    = 150
	sliderW    = 200
	sliderH    = 20
	sliderTop  = 50
	sliderStep = 40

	// obszar UI w lewym górnym rogu; kliknięcia poniżej trafiają do świata
	uiAreaH = sliderTop + 7*sliderStep
)

// Slider --- suwak parametru związany z nazwą z pkg/simulation
type Slider struct {
	Label string
	Name  string
	Min   float64
	Max   float64
	Y     int
}

func uiSliders() []Slider {
	return []Slider{
		{"Time Speed", simulation.ParamTimeSpeed, 0.1, 10.0, sliderTop},
		{"Particles", simulation.ParamParticleCount, 10, 1000, sliderTop + sliderStep},
		{"Velocity", simulation.ParamVelocityMultiplier, 0.1, 5.0, sliderTop + 2*sliderStep},
		{"Mass", simulation.ParamBaseMass, 0.1, 100.0, sliderTop + 3*sliderStep},
		{"Softening", simulation.ParamSoftening, 0.1, 10.0, sliderTop + 4*sliderStep},
		{"Time Step", simulation.ParamTimeStep, 0.001, 0.1, sliderTop + 5*sliderStep},
		{"Central Mass", simulation.ParamCentralMass, 100, 5000, sliderTop + 6*sliderStep},
	}
}

func (s Slider) hit(mx, my int) bool {
	return my >= s.Y && my <= s.Y+sliderH && mx >= sliderX && mx <= sliderX+sliderW
}

func (s Slider) valueAt(mx int) float64 {
	t := float64(mx-sliderX) / float64(sliderW)
	return s.Min + (s.Max-s.Min)*t
}

func (s Slider) draw(screen *ebiten.Image, value float64) {
	text.Draw(screen, s.Label, basicfont.Face7x13, 10, s.Y+14, color.RGBA{255, 255, 255, 255})

	bg := ebiten.NewImage(sliderW, sliderH)
	bg.Fill(color.RGBA{50, 50, 50, 255})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sliderX, float64(s.Y))
	screen.DrawImage(bg, op)

	t := (value - s.Min) / (s.Max - s.Min)
	handleX := float64(sliderX) + float64(sliderW)*t
	drawCircle(screen, handleX, float64(s.Y)+sliderH/2, 9, color.RGBA{255, 255, 255, 255})

	// odczyt wartości obok suwaka
	var label string
	if value >= 1000 {
		label = fmt.Sprintf("%.1e", value)
	} else {
		label = fmt.Sprintf("%.2f", value)
	}
	text.Draw(screen, label, basicfont.Face7x13, sliderX+sliderW+10, s.Y+14, color.RGBA{255, 255, 255, 255})
}

// Game ---
type Game struct {
	sim *simulation.Simulator

	zoom float64
	pan  physics.Vec2

	sliders      []Slider
	activeSlider int // indeks ciągniętego suwaka, -1 gdy żaden
	addMode      bool
	panning      bool
	lastMousePos physics.Vec2
}

// pozycje przycisków (górny rząd, jak w oryginale)
const (
	btnRunX    = 10
	btnResetX  = btnRunX + uiBtnW + uiBtnPad
	btnReinitX = btnResetX + uiBtnW + uiBtnPad
	btnAddX    = btnReinitX + uiBtnW + uiBtnPad
	btnY       = 10
)

// worldAt przelicza pozycję ekranu na współrzędne świata (środek ekranu to
// początek układu, w którym siedzi masa centralna).
func (g *Game) worldAt(mx, my int) physics.Vec2 {
	return physics.Vec2{
		X: (float64(mx)-screenWidth/2)/g.zoom - g.pan.X,
		Y: (float64(my)-screenHeight/2)/g.zoom - g.pan.Y,
	}
}

// screenAt przelicza współrzędne świata na pozycję na ekranie.
func (g *Game) screenAt(p physics.Vec2) (float64, float64) {
	return (p.X+g.pan.X)*g.zoom + screenWidth/2,
		(p.Y+g.pan.Y)*g.zoom + screenHeight/2
}

// Update ---
func (g *Game) Update() error {
	// klawisze
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.sim.Reinit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.sim.Paused() {
		g.sim.Step()
	}

	// panning klawiaturą
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.pan.Y += 10 / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.pan.Y -= 10 / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.pan.X += 10 / g.zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.pan.X -= 10 / g.zoom
	}

	// zoom kółkiem
	if _, wy := ebiten.Wheel(); wy != 0 {
		if wy > 0 {
			g.zoom *= 1.1
		} else {
			g.zoom *= 0.9
		}
	}

	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(mx, my)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		// ciągnięcie suwaka albo panning
		if g.activeSlider != -1 {
			s := g.sliders[g.activeSlider]
			g.sim.SetParameter(s.Name, s.valueAt(mx))
		} else if g.panning {
			cur := physics.Vec2{X: float64(mx), Y: float64(my)}
			delta := cur.Sub(g.lastMousePos).Mul(1 / g.zoom)
			g.pan = g.pan.Add(delta)
			g.lastMousePos = cur
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.activeSlider = -1
		g.panning = false
	}

	g.sim.Tick()
	return nil
}

func (g *Game) handleClick(mx, my int) {
	// przyciski
	if pointInRect(mx, my, btnRunX, btnY, uiBtnW, uiBtnH) {
		g.sim.TogglePause()
		return
	}
	if pointInRect(mx, my, btnResetX, btnY, uiBtnW, uiBtnH) {
		g.sim.Reset()
		return
	}
	if pointInRect(mx, my, btnReinitX, btnY, uiBtnW, uiBtnH) {
		g.sim.Reinit()
		return
	}
	if pointInRect(mx, my, btnAddX, btnY, uiBtnW, uiBtnH) {
		g.addMode = !g.addMode
		return
	}

	// suwaki
	for i, s := range g.sliders {
		if s.hit(mx, my) {
			g.activeSlider = i
			g.sim.SetParameter(s.Name, s.valueAt(mx))
			return
		}
	}

	// kliknięcie w świat
	if my <= uiAreaH && mx <= sliderX+sliderW+80 {
		return // martwa strefa UI
	}
	if g.addMode {
		// zerowa podpowiedź prędkości: symulator dobierze orbitę kołową
		g.sim.AddBody(g.worldAt(mx, my), physics.Vec2{})
		g.addMode = false
		return
	}
	g.panning = true
	g.lastMousePos = physics.Vec2{X: float64(mx), Y: float64(my)}
}

// Draw ---
func (g *Game) Draw(screen *ebiten.Image) {
	// ciała
	c := g.sim.Central()
	cx, cy := g.screenAt(c.Pos)
	drawCircle(screen, cx, cy, math.Max(c.Radius*g.zoom, 3), c.ColorC)

	for _, b := range g.sim.Bodies() {
		x, y := g.screenAt(b.Pos)
		drawCircle(screen, x, y, math.Max(b.Radius*g.zoom, 1), b.ColorC)
	}

	// podgląd dodawanego ciała
	if g.addMode {
		mx, my := ebiten.CursorPosition()
		r := math.Max(g.sim.Parameters().BaseMass*0.3, 2)
		drawCircle(screen, float64(mx), float64(my), r, color.RGBA{255, 255, 0, 120})
	}

	// HUD
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Env: %s\nPaused: %v\nBodies: %d\nEnergy: %.3e",
		g.sim.Name, g.sim.Paused(), g.sim.BodyCount(), g.sim.Energy()))

	mx, my := ebiten.CursorPosition()
	runLabel := "Pause"
	if g.sim.Paused() {
		runLabel = "Resume"
	}
	drawButton(screen, btnRunX, btnY, uiBtnW, uiBtnH, runLabel, g.sim.Paused(), false,
		pointInRect(mx, my, btnRunX, btnY, uiBtnW, uiBtnH))
	drawButton(screen, btnResetX, btnY, uiBtnW, uiBtnH, "Reset", false, false,
		pointInRect(mx, my, btnResetX, btnY, uiBtnW, uiBtnH))
	drawButton(screen, btnReinitX, btnY, uiBtnW, uiBtnH, "Reinit", false, false,
		pointInRect(mx, my, btnReinitX, btnY, uiBtnW, uiBtnH))
	drawButton(screen, btnAddX, btnY, uiBtnW, uiBtnH, "Add Mass", g.addMode, false,
		pointInRect(mx, my, btnAddX, btnY, uiBtnW, uiBtnH))

	params := g.sim.Parameters()
	for _, s := range g.sliders {
		v, _ := params.Get(s.Name)
		s.draw(screen, v)
	}

	// wskazówka trybu
	mode := "Click and drag to pan, wheel to zoom"
	if g.addMode {
		mode = "Click to place mass"
	}
	text.Draw(screen, mode, basicfont.Face7x13, 500, 22, color.RGBA{255, 255, 255, 255})
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func pointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px <= rx+rw && py >= ry && py <= ry+rh
}

// drawCircle - wypełnione koło, wystarczające dla małych promieni
func drawCircle(screen *ebiten.Image, cx, cy, r float64, clr color.RGBA) {
	ir := int(math.Ceil(r))
	rr := r * r
	for dy := -ir; dy <= ir; dy++ {
		y := int(math.Round(cy)) + dy
		if y < 0 || y >= screenHeight {
			continue
		}
		xspan := math.Sqrt(math.Max(0, rr-float64(dy*dy)))
		xmin := int(math.Round(cx - xspan))
		xmax := int(math.Round(cx + xspan))
		if xmin < 0 {
			xmin = 0
		}
		if xmax >= screenWidth {
			xmax = screenWidth - 1
		}
		for x := xmin; x <= xmax; x++ {
			screen.Set(x, y, clr)
		}
	}
}

func drawButton(screen *ebiten.Image, x, y, w, h int, label string, active bool, disabled bool, hover bool) {
	btn := ebiten.NewImage(w, h)
	bg := color.RGBA{20, 20, 20, 200}
	textColor := color.RGBA{240, 240, 240, 255}
	if disabled {
		bg = color.RGBA{60, 60, 60, 160}
		textColor = color.RGBA{160, 160, 160, 200}
	} else {
		if active {
			bg = color.RGBA{60, 120, 60, 220}
		}
		if hover {
			if active {
				bg = color.RGBA{100, 190, 100, 240}
			} else {
				bg = color.RGBA{90, 90, 90, 230}
			}
		}
	}
	btn.Fill(bg)
	inner := ebiten.NewImage(w-2, h-2)
	inner.Fill(color.RGBA{40, 40, 40, 120})
	opInner := &ebiten.DrawImageOptions{}
	opInner.GeoM.Translate(1, 1)
	btn.DrawImage(inner, opInner)
	charW := 7
	cw := len(label) * charW
	xText := (w - cw) / 2
	yText := (h + 8) / 2
	text.Draw(btn, label, basicfont.Face7x13, xText, yText, textColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(btn, op)
}

func main() {
	envName := flag.String("env", "", "preset środowiska z pkg/assets (np. solar, binary)")
	paramsPath := flag.String("params", "", "plik parametrów gcfg")
	serveAddr := flag.String("serve", "", "tryb headless: adres serwera WebSocket (np. :8080)")
	flag.Parse()

	var sim *simulation.Simulator
	switch {
	case *envName != "":
		configPath := filepath.Join("pkg/assets", fmt.Sprintf("%s.json", *envName))
		var err error
		sim, err = simulation.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Błąd wczytywania środowiska: %v", err)
		}
	case *paramsPath != "":
		params, err := simulation.LoadParams(*paramsPath)
		if err != nil {
			log.Fatalf("Błąd wczytywania parametrów: %v", err)
		}
		sim = simulation.New("sandbox", params)
	default:
		sim = simulation.New("sandbox", simulation.DefaultParams())
	}

	if *serveAddr != "" {
		log.Fatal(stream.New(sim, 60).ListenAndServe(*serveAddr))
	}

	game := &Game{
		sim:          sim,
		zoom:         1.0,
		sliders:      uiSliders(),
		activeSlider: -1,
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Solar System Formation Simulator - " + sim.Name)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
