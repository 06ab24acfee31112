package simulation

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/whosawme/solar-sim/pkg/physics"
)

// --- Główna struktura symulatora ---
// Simulator jest właścicielem kolekcji ciał, masy centralnej, parametrów,
// flagi pauzy i migawki warunków początkowych. Wszystkie operacje wołane są
// z jednej osi czasu: jeden Tick na klatkę, komendy pomiędzy tickami.
type Simulator struct {
	Name string

	params  Params
	central physics.Body
	bodies  []physics.Body
	paused  bool
	rng     *rand.Rand

	initial snapshot
}

// migawka warunków początkowych do Reset
type snapshot struct {
	params  Params
	central physics.Body
	bodies  []physics.Body
}

// New tworzy symulator z rozsianymi ciałami i wykonuje migawkę początkową.
func New(name string, p Params) *Simulator {
	return NewWithSource(name, p, rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource pozwala na deterministyczny rozsiew (testy, powtarzalne runy).
func NewWithSource(name string, p Params, src rand.Source) *Simulator {
	p.Clamp()
	s := &Simulator{
		Name:   name,
		params: p,
		rng:    rand.New(src),
	}
	s.central = newCentral(p.CentralMass)
	s.bodies = spawnBodies(s.rng, s.params)
	s.takeSnapshot()
	return s
}

// newCentral buduje ciało centralne: nieruchome, w początku układu.
func newCentral(mass float64) physics.Body {
	c := physics.NewBody(physics.Vec2{}, physics.Vec2{}, mass)
	c.Locked = true
	c.ColorC = color.RGBA{255, 220, 120, 255}
	return c
}

func (s *Simulator) takeSnapshot() {
	s.initial = snapshot{
		params:  s.params,
		central: s.central,
		bodies:  append([]physics.Body(nil), s.bodies...),
	}
}

// Tick wykonuje jeden krok całkowania, o ile symulacja nie jest wstrzymana.
// Krok na klatkę przesuwa układ o dt = TimeStep*TimeSpeed.
func (s *Simulator) Tick() {
	if s.paused {
		return
	}
	s.Step()
}

// Step wykonuje krok niezależnie od pauzy (ręczne krokowanie przy pauzie).
func (s *Simulator) Step() {
	if len(s.bodies) == 0 {
		return
	}
	dt := s.params.TimeStep * s.params.TimeSpeed
	physics.IntegrateEulerSymplectic(s.bodies, s.central, dt, s.params.Softening)
}

// Pause i Resume są idempotentne; Reset nie zmienia stanu pauzy.
func (s *Simulator) Pause()       { s.paused = true }
func (s *Simulator) Resume()      { s.paused = false }
func (s *Simulator) TogglePause() { s.paused = !s.paused }
func (s *Simulator) Paused() bool { return s.paused }

// Reset przywraca ciała, masę centralną i parametry z migawki.
func (s *Simulator) Reset() {
	s.params = s.initial.params
	s.central = s.initial.central
	s.bodies = append([]physics.Body(nil), s.initial.bodies...)
}

// Reinit rozsiewa ciała od nowa według bieżących parametrów i wymienia
// migawkę w całości.
func (s *Simulator) Reinit() {
	s.central = newCentral(s.params.CentralMass)
	s.bodies = spawnBodies(s.rng, s.params)
	s.takeSnapshot()
}

// AddBody dokłada ciało o masie BaseMass. Zerowa podpowiedź prędkości
// oznacza orbitę kołową wokół masy centralnej; w przeciwnym razie
// podpowiedź jest skalowana przez VelocityMultiplier. Migawka pozostaje
// nietknięta, więc Reset odrzuca ciała dodane po jej wykonaniu.
func (s *Simulator) AddBody(pos, velHint physics.Vec2) {
	vel := velHint.Mul(s.params.VelocityMultiplier)
	if velHint == (physics.Vec2{}) {
		vel = orbitalVelocity(pos, s.params.CentralMass).Mul(s.params.VelocityMultiplier)
	}
	s.bodies = append(s.bodies, physics.NewBody(pos, vel, s.params.BaseMass))
}

// SetParameter przycina wartość do zakresu i zapisuje; działa od następnego
// ticka. Zmiana particleCount przebudowuje kolekcję ciał (regeneracja
// strukturalna, bez zmiany migawki), zmiana centralMass aktualizuje też
// masę ciała centralnego. Nieznane nazwy są ignorowane.
func (s *Simulator) SetParameter(name string, value float64) bool {
	prevCount := s.params.ParticleCount
	if !s.params.Set(name, value) {
		return false
	}
	switch name {
	case ParamParticleCount:
		if s.params.ParticleCount != prevCount {
			s.bodies = spawnBodies(s.rng, s.params)
		}
	case ParamCentralMass:
		s.central.Mass = s.params.CentralMass
	}
	return true
}

// Bodies zwraca kopię kolekcji ciał - warstwa prezentacji nigdy nie widzi
// bufora, który integrator modyfikuje w miejscu.
func (s *Simulator) Bodies() []physics.Body {
	return append([]physics.Body(nil), s.bodies...)
}

// Central zwraca ciało centralne.
func (s *Simulator) Central() physics.Body { return s.central }

// Parameters zwraca bieżące wartości parametrów.
func (s *Simulator) Parameters() Params { return s.params }

// BodyCount zwraca liczbę ciał orbitujących (bez centralnego).
func (s *Simulator) BodyCount() int { return len(s.bodies) }

// Energy zwraca energię całkowitą układu (diagnostyka dla HUD i testów).
func (s *Simulator) Energy() float64 {
	return physics.TotalEnergy(s.bodies, s.central, s.params.Softening)
}
