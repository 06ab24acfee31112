package stream

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/whosawme/solar-sim/pkg/physics"
	"github.com/whosawme/solar-sim/pkg/simulation"
)

// --- Serwer strumieniowy ---
// Server udostępnia symulację po WebSockecie: pętla ticków działa w jednej
// goroutine, komendy klientów trafiają do kanału i są aplikowane pomiędzy
// tickami - nigdy w trakcie kroku całkowania.
type Server struct {
	sim      *simulation.Simulator
	tps      int
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]bool

	commands chan Command
	quit     chan struct{}
	tick     uint64
}

// client serializuje zapisy do jednego połączenia.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// New tworzy serwer strumieniowy dla podanej symulacji.
func New(sim *simulation.Simulator, tps int) *Server {
	if tps <= 0 {
		tps = 60
	}
	return &Server{
		sim:      sim,
		tps:      tps,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  make(map[*client]bool),
		commands: make(chan Command, 256),
		quit:     make(chan struct{}),
	}
}

// Start uruchamia pętlę ticków w osobnej goroutine.
func (s *Server) Start() {
	go s.loop()
}

// Stop zatrzymuje pętlę ticków.
func (s *Server) Stop() {
	close(s.quit)
}

// Handler zwraca mux z endpointem /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe uruchamia pętlę ticków i serwer HTTP.
func (s *Server) ListenAndServe(addr string) error {
	s.Start()
	log.Printf("stream: nasłuch na %s (tps=%d)", addr, s.tps)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) loop() {
	t := time.NewTicker(time.Second / time.Duration(s.tps))
	defer t.Stop()
	for {
		select {
		case <-s.quit:
			return
		case <-t.C:
			s.drainCommands()
			s.sim.Tick()
			s.tick++
			s.broadcast(s.frame())
		}
	}
}

// drainCommands aplikuje wszystkie oczekujące komendy pomiędzy tickami.
func (s *Server) drainCommands() {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *Server) apply(cmd Command) {
	switch cmd.Type {
	case CmdSet:
		if !s.sim.SetParameter(cmd.Name, cmd.Value) {
			log.Printf("stream: nieznany parametr %q", cmd.Name)
		}
	case CmdAdd:
		s.sim.AddBody(
			physics.Vec2{X: cmd.X, Y: cmd.Y},
			physics.Vec2{X: cmd.VX, Y: cmd.VY},
		)
	case CmdPause:
		s.sim.Pause()
	case CmdResume:
		s.sim.Resume()
	case CmdReset:
		s.sim.Reset()
	case CmdReinit:
		s.sim.Reinit()
	case CmdStep:
		s.sim.Step()
	default:
		log.Printf("stream: nieznana komenda %q", cmd.Type)
	}
}

// frame buduje ramkę stanu z kopii ciał (copy-on-read).
func (s *Server) frame() StateFrame {
	bodies := s.sim.Bodies()
	states := make([]BodyState, len(bodies))
	for i, b := range bodies {
		states[i] = bodyState(b)
	}
	return StateFrame{
		Type:       MsgState,
		Tick:       s.tick,
		Paused:     s.sim.Paused(),
		Energy:     s.sim.Energy(),
		Params:     paramsState(s.sim.Parameters()),
		Central:    bodyState(s.sim.Central()),
		Bodies:     states,
		ServerTime: serverTime(),
	}
}

func (s *Server) broadcast(frame StateFrame) {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.writeJSON(frame); err != nil {
			s.unregister(c)
		}
	}
}

func (s *Server) register(c *client) {
	s.mu.Lock()
	s.clients[c] = true
	s.mu.Unlock()
}

func (s *Server) unregister(c *client) {
	s.mu.Lock()
	if s.clients[c] {
		delete(s.clients, c)
		c.conn.Close()
	}
	s.mu.Unlock()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade nieudany: %v", err)
		return
	}
	c := &client{conn: conn}
	s.register(c)
	defer s.unregister(c)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		if cmd.Type == CmdPing {
			// ping ma odpowiedź natychmiastową, poza osią ticków
			_ = c.writeJSON(PongMessage{
				Type:       MsgPong,
				ClientTime: cmd.ClientTime,
				ServerTime: serverTime(),
			})
			continue
		}
		select {
		case s.commands <- cmd:
		default:
			log.Printf("stream: kolejka komend pełna, odrzucono %q", cmd.Type)
		}
	}
}
