package stream

import (
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/whosawme/solar-sim/pkg/simulation"
)

func newTestServer(t *testing.T, tps int) (*Server, *simulation.Simulator) {
	t.Helper()
	p := simulation.DefaultParams()
	p.ParticleCount = 10
	sim := simulation.NewWithSource("test", p, rand.NewSource(1))
	return New(sim, tps), sim
}

func TestApplyCommands(t *testing.T) {
	s, sim := newTestServer(t, 60)

	s.apply(Command{Type: CmdPause})
	assert.True(t, sim.Paused())

	frozen := sim.Bodies()
	s.apply(Command{Type: CmdStep})
	assert.NotEqual(t, frozen, sim.Bodies())

	s.apply(Command{Type: CmdResume})
	assert.False(t, sim.Paused())

	s.apply(Command{Type: CmdSet, Name: simulation.ParamTimeSpeed, Value: 99})
	assert.Equal(t, 10.0, sim.Parameters().TimeSpeed) // przycięte

	n := sim.BodyCount()
	s.apply(Command{Type: CmdAdd, X: 250, Y: 0})
	assert.Equal(t, n+1, sim.BodyCount())

	s.apply(Command{Type: CmdReset})
	assert.Equal(t, n, sim.BodyCount())
	assert.Equal(t, 1.0, sim.Parameters().TimeSpeed)

	s.apply(Command{Type: CmdSet, Name: simulation.ParamParticleCount, Value: 20})
	s.apply(Command{Type: CmdReinit})
	s.apply(Command{Type: CmdReset})
	assert.Equal(t, 20, sim.BodyCount())
}

func TestFrameSnapshotsState(t *testing.T) {
	s, sim := newTestServer(t, 60)
	f := s.frame()

	assert.Equal(t, MsgState, f.Type)
	assert.Len(t, f.Bodies, sim.BodyCount())
	assert.Equal(t, sim.Central().Mass, f.Central.Mass)
	assert.Equal(t, sim.Parameters().TimeStep, f.Params.TimeStep)
	assert.False(t, f.Paused)
}

// readFrames czyta wiadomości aż do spełnienia warunku albo wyczerpania limitu.
func readUntil(t *testing.T, conn *websocket.Conn, cond func(raw []byte) bool) bool {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	_ = conn.SetReadDeadline(deadline)
	for i := 0; i < 500 && time.Now().Before(deadline); i++ {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("odczyt nieudany: %v", err)
		}
		if cond(raw) {
			return true
		}
	}
	return false
}

func TestWebsocketRoundtrip(t *testing.T) {
	s, _ := newTestServer(t, 200)
	s.Start()
	defer s.Stop()

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	defer conn.Close()

	// ramki stanu płyną same z siebie
	ok := readUntil(t, conn, func(raw []byte) bool {
		var f StateFrame
		return json.Unmarshal(raw, &f) == nil && f.Type == MsgState
	})
	assert.True(t, ok, "brak ramki stanu")

	// komenda pause obowiązuje od następnego ticka
	assert.NoError(t, conn.WriteJSON(Command{Type: CmdPause}))
	ok = readUntil(t, conn, func(raw []byte) bool {
		var f StateFrame
		return json.Unmarshal(raw, &f) == nil && f.Type == MsgState && f.Paused
	})
	assert.True(t, ok, "pauza nie dotarła do ramki stanu")

	// zmiana parametru widoczna w kolejnych ramkach
	assert.NoError(t, conn.WriteJSON(Command{Type: CmdSet, Name: simulation.ParamCentralMass, Value: 3000}))
	ok = readUntil(t, conn, func(raw []byte) bool {
		var f StateFrame
		return json.Unmarshal(raw, &f) == nil && f.Type == MsgState && f.Params.CentralMass == 3000
	})
	assert.True(t, ok, "zmiana parametru nie dotarła do ramki stanu")

	// ping dostaje odpowiedź poza osią ticków
	assert.NoError(t, conn.WriteJSON(Command{Type: CmdPing, ClientTime: 123}))
	ok = readUntil(t, conn, func(raw []byte) bool {
		var p PongMessage
		return json.Unmarshal(raw, &p) == nil && p.Type == MsgPong && p.ClientTime == 123
	})
	assert.True(t, ok, "brak odpowiedzi pong")
}
