package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whosawme/solar-sim/pkg/physics"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigProcedural(t *testing.T) {
	path := writeTempFile(t, "env.json", `{
		"name": "ring",
		"params": {"particles": 25, "central_mass": 2000, "dt": 0.5}
	}`)

	sim, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "ring", sim.Name)
	assert.Len(t, sim.Bodies(), 25)
	assert.Equal(t, 2000.0, sim.Parameters().CentralMass)
	// dt spoza zakresu zostaje przycięte, nie odrzucone
	assert.Equal(t, 0.1, sim.Parameters().TimeStep)
}

func TestLoadConfigExplicitBodies(t *testing.T) {
	path := writeTempFile(t, "env.json", `{
		"name": "binary",
		"auto_orbit": true,
		"bodies": [
			{"mass": 50, "pos": [200, 0], "vel": [0, 0], "color": "#ff8800"},
			{"mass": 50, "pos": [-200, 0], "vel": [1, -1], "color": "#0088ff"}
		]
	}`)

	sim, err := LoadConfig(path)
	assert.NoError(t, err)
	bodies := sim.Bodies()
	assert.Len(t, bodies, 2)
	assert.Equal(t, 50.0, bodies[0].Mass)

	// auto_orbit wypełnia tylko zerowe prędkości
	assert.NotEqual(t, physics.Vec2{}, bodies[0].Vel)
	assert.Equal(t, physics.Vec2{X: 1, Y: -1}, bodies[1].Vel)

	// jawne ciała wchodzą do migawki
	sim.Tick()
	sim.Reset()
	assert.Equal(t, bodies, sim.Bodies())
}

func TestLoadConfigBadFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	path := writeTempFile(t, "bad.json", `{nie-json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadParamsGcfg(t *testing.T) {
	path := writeTempFile(t, "sim.gcfg", `[simulation]
timespeed = 2.5
particlecount = 5000
softening = 0.5
`)

	p, err := LoadParams(path)
	assert.NoError(t, err)
	assert.Equal(t, 2.5, p.TimeSpeed)
	assert.Equal(t, 1000, p.ParticleCount) // przycięte
	assert.Equal(t, 0.5, p.Softening)
	// pominięte klucze zachowują domyślne
	assert.Equal(t, DefaultParams().BaseMass, p.BaseMass)
}

func TestLoadParamsMissingFile(t *testing.T) {
	p, err := LoadParams(filepath.Join(t.TempDir(), "nope.gcfg"))
	assert.Error(t, err)
	assert.Equal(t, DefaultParams(), p)
}
