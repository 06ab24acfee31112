package simulation

// Nazwy parametrów przyjmowane przez SetParameter.
const (
	ParamTimeSpeed          = "timeSpeed"
	ParamParticleCount      = "particleCount"
	ParamVelocityMultiplier = "velocityMultiplier"
	ParamBaseMass           = "baseMass"
	ParamSoftening          = "softening"
	ParamTimeStep           = "timeStep"
	ParamCentralMass        = "centralMass"
)

// --- Parametry symulacji ---
// Każde pole ma zamknięty zakres; wartości spoza zakresu są przycinane,
// nigdy odrzucane z błędem.
type Params struct {
	TimeSpeed          float64 // [0.1, 10.0]
	ParticleCount      int     // [10, 1000]
	VelocityMultiplier float64 // [0.1, 5.0]
	BaseMass           float64 // [0.1, 100.0]
	Softening          float64 // [0.1, 10.0]
	TimeStep           float64 // [0.001, 0.1]
	CentralMass        float64 // [100, 5000]
}

// DefaultParams odpowiada początkowym ustawieniom suwaków.
func DefaultParams() Params {
	return Params{
		TimeSpeed:          1.0,
		ParticleCount:      100,
		VelocityMultiplier: 1.0,
		BaseMass:           3.0,
		Softening:          1.0,
		TimeStep:           0.016,
		CentralMass:        1000.0,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp przycina wszystkie pola do ich zakresów.
func (p *Params) Clamp() {
	p.TimeSpeed = clamp(p.TimeSpeed, 0.1, 10.0)
	p.ParticleCount = int(clamp(float64(p.ParticleCount), 10, 1000))
	p.VelocityMultiplier = clamp(p.VelocityMultiplier, 0.1, 5.0)
	p.BaseMass = clamp(p.BaseMass, 0.1, 100.0)
	p.Softening = clamp(p.Softening, 0.1, 10.0)
	p.TimeStep = clamp(p.TimeStep, 0.001, 0.1)
	p.CentralMass = clamp(p.CentralMass, 100.0, 5000.0)
}

// Set zapisuje parametr po nazwie, przycinając wartość do zakresu.
// Zwraca false dla nieznanej nazwy.
func (p *Params) Set(name string, value float64) bool {
	switch name {
	case ParamTimeSpeed:
		p.TimeSpeed = clamp(value, 0.1, 10.0)
	case ParamParticleCount:
		p.ParticleCount = int(clamp(value, 10, 1000))
	case ParamVelocityMultiplier:
		p.VelocityMultiplier = clamp(value, 0.1, 5.0)
	case ParamBaseMass:
		p.BaseMass = clamp(value, 0.1, 100.0)
	case ParamSoftening:
		p.Softening = clamp(value, 0.1, 10.0)
	case ParamTimeStep:
		p.TimeStep = clamp(value, 0.001, 0.1)
	case ParamCentralMass:
		p.CentralMass = clamp(value, 100.0, 5000.0)
	default:
		return false
	}
	return true
}

// Get odczytuje parametr po nazwie (dla warstwy prezentacji).
func (p Params) Get(name string) (float64, bool) {
	switch name {
	case ParamTimeSpeed:
		return p.TimeSpeed, true
	case ParamParticleCount:
		return float64(p.ParticleCount), true
	case ParamVelocityMultiplier:
		return p.VelocityMultiplier, true
	case ParamBaseMass:
		return p.BaseMass, true
	case ParamSoftening:
		return p.Softening, true
	case ParamTimeStep:
		return p.TimeStep, true
	case ParamCentralMass:
		return p.CentralMass, true
	}
	return 0, false
}
