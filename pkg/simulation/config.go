package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"image/color"

	"github.com/whosawme/solar-sim/pkg/physics"
)

// --- Struktura konfiguracji środowiska ---
// Preset JSON: nadpisania parametrów plus opcjonalna jawna lista ciał.
// Pusta lista ciał oznacza rozsiew proceduralny według parametrów.
type EnvironmentConfig struct {
	Name      string        `json:"name"`
	Params    *ParamsConfig `json:"params,omitempty"`
	Bodies    []BodyConfig  `json:"bodies,omitempty"`
	AutoOrbit bool          `json:"auto_orbit,omitempty"`
}

// ParamsConfig nadpisuje wybrane parametry; pola zerowe zostawiają domyślne.
type ParamsConfig struct {
	TimeSpeed          float64 `json:"time_speed,omitempty"`
	ParticleCount      int     `json:"particles,omitempty"`
	VelocityMultiplier float64 `json:"velocity,omitempty"`
	BaseMass           float64 `json:"mass,omitempty"`
	Softening          float64 `json:"softening,omitempty"`
	TimeStep           float64 `json:"dt,omitempty"`
	CentralMass        float64 `json:"central_mass,omitempty"`
}

type BodyConfig struct {
	Mass  float64    `json:"mass"`
	Pos   [2]float64 `json:"pos"`
	Vel   [2]float64 `json:"vel"`
	Color string     `json:"color"`
}

// merge nakłada niezerowe pola nadpisań na parametry bazowe.
func (c *ParamsConfig) merge(base Params) Params {
	if c == nil {
		return base
	}
	if c.TimeSpeed != 0 {
		base.TimeSpeed = c.TimeSpeed
	}
	if c.ParticleCount != 0 {
		base.ParticleCount = c.ParticleCount
	}
	if c.VelocityMultiplier != 0 {
		base.VelocityMultiplier = c.VelocityMultiplier
	}
	if c.BaseMass != 0 {
		base.BaseMass = c.BaseMass
	}
	if c.Softening != 0 {
		base.Softening = c.Softening
	}
	if c.TimeStep != 0 {
		base.TimeStep = c.TimeStep
	}
	if c.CentralMass != 0 {
		base.CentralMass = c.CentralMass
	}
	return base
}

// --- Wczytanie pliku konfiguracyjnego ---
func LoadConfig(path string) (*Simulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("błąd odczytu pliku: %v", err)
	}

	var env EnvironmentConfig
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("błąd parsowania JSON: %v", err)
	}

	return NewFromEnvironment(env), nil
}

// NewFromEnvironment buduje symulator z presetu: parametry po scaleniu i
// przycięciu, ciała jawne (jeśli podane) zamiast rozsiewu proceduralnego.
func NewFromEnvironment(env EnvironmentConfig) *Simulator {
	p := env.Params.merge(DefaultParams())
	sim := New(env.Name, p)

	if len(env.Bodies) == 0 {
		return sim
	}

	bodies := make([]physics.Body, len(env.Bodies))
	for i, b := range env.Bodies {
		pos := physics.Vec2{X: b.Pos[0], Y: b.Pos[1]}
		vel := physics.Vec2{X: b.Vel[0], Y: b.Vel[1]}
		if env.AutoOrbit && vel == (physics.Vec2{}) {
			// prędkość orbity kołowej wokół masy centralnej
			vel = orbitalVelocity(pos, sim.params.CentralMass)
		}
		bodies[i] = physics.NewBody(pos, vel, b.Mass)
		bodies[i].ColorC = parseColor(b.Color)
	}
	sim.bodies = bodies
	sim.takeSnapshot()
	return sim
}

// --- Parser koloru HEX ---
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{200, 200, 255, 255}
}
