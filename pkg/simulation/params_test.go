package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampAllFields(t *testing.T) {
	p := Params{
		TimeSpeed:          99,
		ParticleCount:      2000,
		VelocityMultiplier: 0,
		BaseMass:           -5,
		Softening:          0.001,
		TimeStep:           1,
		CentralMass:        1e9,
	}
	p.Clamp()

	assert.Equal(t, 10.0, p.TimeSpeed)
	assert.Equal(t, 1000, p.ParticleCount)
	assert.Equal(t, 0.1, p.VelocityMultiplier)
	assert.Equal(t, 0.1, p.BaseMass)
	assert.Equal(t, 0.1, p.Softening)
	assert.Equal(t, 0.1, p.TimeStep)
	assert.Equal(t, 5000.0, p.CentralMass)
}

func TestSetClampsByName(t *testing.T) {
	p := DefaultParams()

	assert.True(t, p.Set(ParamParticleCount, 2000))
	assert.Equal(t, 1000, p.ParticleCount)

	assert.True(t, p.Set(ParamParticleCount, 50))
	assert.Equal(t, 50, p.ParticleCount)

	assert.True(t, p.Set(ParamTimeStep, 0.0001))
	assert.Equal(t, 0.001, p.TimeStep)

	assert.True(t, p.Set(ParamCentralMass, 3))
	assert.Equal(t, 100.0, p.CentralMass)
}

func TestSetUnknownNameIgnored(t *testing.T) {
	p := DefaultParams()
	before := p
	assert.False(t, p.Set("gravityConstant", 42))
	assert.Equal(t, before, p)
}

func TestGetByName(t *testing.T) {
	p := DefaultParams()
	for _, name := range []string{
		ParamTimeSpeed, ParamParticleCount, ParamVelocityMultiplier,
		ParamBaseMass, ParamSoftening, ParamTimeStep, ParamCentralMass,
	} {
		_, ok := p.Get(name)
		assert.True(t, ok, name)
	}
	_, ok := p.Get("zoom")
	assert.False(t, ok)
}
