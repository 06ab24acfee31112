package stream

import (
	"time"

	"github.com/whosawme/solar-sim/pkg/physics"
	"github.com/whosawme/solar-sim/pkg/simulation"
)

// Typy wiadomości protokołu.
const (
	MsgState = "state" // ramka stanu wysyłana co tick
	MsgPong  = "pong"  // odpowiedź na ping

	CmdSet    = "set"    // zmiana parametru (name + value)
	CmdAdd    = "add"    // dodanie ciała (x, y, opcjonalnie vx, vy)
	CmdPause  = "pause"  // wstrzymanie
	CmdResume = "resume" // wznowienie
	CmdReset  = "reset"  // powrót do migawki początkowej
	CmdReinit = "reinit" // nowy rozsiew wg bieżących parametrów
	CmdStep   = "step"   // pojedynczy krok (przy pauzie)
	CmdPing   = "ping"   // pomiar opóźnienia
)

// Command - komenda klienta; pola znaczące zależnie od Type.
type Command struct {
	Type       string  `json:"type"`
	Name       string  `json:"name,omitempty"`
	Value      float64 `json:"value,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	VX         float64 `json:"vx,omitempty"`
	VY         float64 `json:"vy,omitempty"`
	ClientTime float64 `json:"client_time,omitempty"`
}

// BodyState - migawka jednego ciała w ramce stanu.
type BodyState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Mass   float64 `json:"mass"`
	Radius float64 `json:"radius"`
}

// ParamsState - bieżące wartości parametrów w ramce stanu.
type ParamsState struct {
	TimeSpeed          float64 `json:"timeSpeed"`
	ParticleCount      int     `json:"particleCount"`
	VelocityMultiplier float64 `json:"velocityMultiplier"`
	BaseMass           float64 `json:"baseMass"`
	Softening          float64 `json:"softening"`
	TimeStep           float64 `json:"timeStep"`
	CentralMass        float64 `json:"centralMass"`
}

// StateFrame - pełna ramka stanu rozsyłana do wszystkich klientów.
type StateFrame struct {
	Type       string      `json:"type"`
	Tick       uint64      `json:"tick"`
	Paused     bool        `json:"paused"`
	Energy     float64     `json:"energy"`
	Params     ParamsState `json:"params"`
	Central    BodyState   `json:"central"`
	Bodies     []BodyState `json:"bodies"`
	ServerTime int64       `json:"server_time"`
}

// PongMessage - odpowiedź na ping z czasem klienta i serwera.
type PongMessage struct {
	Type       string  `json:"type"`
	ClientTime float64 `json:"client_time"`
	ServerTime int64   `json:"server_time"`
}

// serverTime zwraca czas serwera w milisekundach.
func serverTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func bodyState(b physics.Body) BodyState {
	return BodyState{
		X:      b.Pos.X,
		Y:      b.Pos.Y,
		VX:     b.Vel.X,
		VY:     b.Vel.Y,
		Mass:   b.Mass,
		Radius: b.Radius,
	}
}

func paramsState(p simulation.Params) ParamsState {
	return ParamsState{
		TimeSpeed:          p.TimeSpeed,
		ParticleCount:      p.ParticleCount,
		VelocityMultiplier: p.VelocityMultiplier,
		BaseMass:           p.BaseMass,
		Softening:          p.Softening,
		TimeStep:           p.TimeStep,
		CentralMass:        p.CentralMass,
	}
}
