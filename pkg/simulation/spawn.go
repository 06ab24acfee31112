package simulation

import (
	"math"
	"math/rand"

	"github.com/whosawme/solar-sim/pkg/physics"
)

// pierścień rozsiewu wokół masy centralnej
const (
	spawnRMin = 100.0
	spawnRMax = 300.0
)

// spawnBodies rozsiewa ParticleCount ciał na pierścieniu wokół początku
// układu: losowy promień i kąt, masa z przedziału [0.5, 1.5)*BaseMass,
// prędkość styczna orbity kołowej przeskalowana przez VelocityMultiplier.
func spawnBodies(rng *rand.Rand, p Params) []physics.Body {
	bodies := make([]physics.Body, 0, p.ParticleCount)
	for i := 0; i < p.ParticleCount; i++ {
		dist := spawnRMin + rng.Float64()*(spawnRMax-spawnRMin)
		angle := rng.Float64() * 2 * math.Pi
		pos := physics.Vec2{X: dist * math.Cos(angle), Y: dist * math.Sin(angle)}
		mass := p.BaseMass * (0.5 + rng.Float64())
		vel := orbitalVelocity(pos, p.CentralMass).Mul(p.VelocityMultiplier)
		bodies = append(bodies, physics.NewBody(pos, vel, mass))
	}
	return bodies
}

// orbitalVelocity zwraca prędkość orbity kołowej wokół masy centralnej w
// początku układu, styczną do wektora pozycji.
func orbitalVelocity(pos physics.Vec2, centralMass float64) physics.Vec2 {
	r := pos.Len()
	if r == 0 {
		return physics.Vec2{}
	}
	v := math.Sqrt(physics.G * centralMass / r)
	return physics.Vec2{X: -pos.Y / r * v, Y: pos.X / r * v}
}
