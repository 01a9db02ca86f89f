package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"photon-ca/internal/core"
	"photon-ca/internal/protocol"
	"photon-ca/internal/sims/emfield"
)

const maxStepsPerRequest = 10000

// Server exposes an engine to remote display shells. Mutations are
// serialized and every resulting generation is broadcast to all clients.
type Server struct {
	engine    *emfield.Engine
	log       *log.Logger
	validator *protocol.Validator

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	nextID  int
}

type client struct {
	id  string
	out chan []byte
}

func NewServer(e *emfield.Engine, logger *log.Logger) (*Server, error) {
	v, err := protocol.NewValidator()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		engine:    e,
		log:       logger,
		validator: v,
		clients:   map[*client]struct{}{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
	return s, nil
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		c := s.handshake(conn)
		if c == nil {
			return
		}
		s.log.Printf("ws: %s connected from %s", c.id, r.RemoteAddr)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		// Writer goroutine.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-c.out:
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			s.handle(c, msg)
		}

		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		s.log.Printf("ws: %s disconnected", c.id)
	}
}

func (s *Server) handshake(conn *websocket.Conn) *client {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return nil
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello || s.validator.Validate(protocol.TypeHello, msg) != nil {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected HELLO"), time.Now().Add(time.Second))
		return nil
	}
	if base.ProtocolVersion != protocol.Version {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "bad protocol_version"), time.Now().Add(time.Second))
		return nil
	}

	cfg := s.engine.Config()
	welcome := protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		Sim:             s.engine.Name(),
		GridSize:        cfg.GridSize,
		Spacing:         cfg.Spacing,
		CenterIndex:     s.engine.Grid().CenterIndex(),
		Params:          s.engine.Parameters(),
	}

	s.mu.Lock()
	s.nextID++
	c := &client{id: fmt.Sprintf("C%d", s.nextID), out: make(chan []byte, 16)}
	welcome.ClientID = c.id
	// Registered under the lock so the initial STATE is ordered before any broadcast.
	if err := writeJSON(conn, welcome); err != nil {
		s.mu.Unlock()
		return nil
	}
	if err := writeJSON(conn, StateFromSnapshot(s.engine.Snapshot())); err != nil {
		s.mu.Unlock()
		return nil
	}
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	return c
}

func (s *Server) handle(c *client, msg []byte) {
	base, err := protocol.DecodeBase(msg)
	if err != nil {
		s.sendTo(c, protocol.NewError(protocol.ErrProtoBadRequest, "malformed JSON"))
		return
	}
	if base.ProtocolVersion != protocol.Version {
		s.sendTo(c, protocol.NewError(protocol.ErrProtoBadRequest, "bad protocol_version"))
		return
	}
	if err := s.validator.Validate(base.Type, msg); err != nil {
		s.sendTo(c, protocol.NewError(protocol.ErrProtoBadRequest, err.Error()))
		return
	}

	switch base.Type {
	case protocol.TypeGet:
		s.sendTo(c, StateFromSnapshot(s.engine.Snapshot()))
	case protocol.TypeInject:
		var m protocol.InjectMsg
		if err := json.Unmarshal(msg, &m); err != nil {
			s.sendTo(c, protocol.NewError(protocol.ErrBadRequest, err.Error()))
			return
		}
		s.mutate(c, func() error { return s.inject(m) })
	case protocol.TypeStep:
		var m protocol.StepMsg
		if err := json.Unmarshal(msg, &m); err != nil {
			s.sendTo(c, protocol.NewError(protocol.ErrBadRequest, err.Error()))
			return
		}
		n := m.Count
		if n <= 0 {
			n = 1
		}
		if n > maxStepsPerRequest {
			n = maxStepsPerRequest
		}
		s.mutate(c, func() error { s.engine.StepN(n); return nil })
	case protocol.TypeReset:
		var m protocol.ResetMsg
		if err := json.Unmarshal(msg, &m); err != nil {
			s.sendTo(c, protocol.NewError(protocol.ErrBadRequest, err.Error()))
			return
		}
		s.mutate(c, func() error { s.engine.Reset(m.Seed); return nil })
	default:
		s.sendTo(c, protocol.NewError(protocol.ErrBadRequest, "unsupported message type "+base.Type))
	}
}

func (s *Server) inject(m protocol.InjectMsg) error {
	var (
		target int
		err    error
	)
	g := s.engine.Grid()
	switch {
	case m.Index != nil:
		target = *m.Index
	case m.Centered != nil:
		c := core.Coord{X: m.Centered[0], Y: m.Centered[1], Z: m.Centered[2]}
		i, ok := g.FromCentered(c)
		if !ok {
			return fmt.Errorf("%w: centered coordinate %v outside grid", emfield.ErrInvalidIndex, *m.Centered)
		}
		target = i
	case m.Point != nil:
		p := core.Point{X: m.Point[0], Y: m.Point[1], Z: m.Point[2]}
		target = g.Nearest(p, s.engine.Config().Spacing)
	default:
		return errors.New("inject needs index, centered or point")
	}

	switch m.Variant {
	case "stationary":
		err = s.engine.InjectStationary(target)
	case "directional":
		err = s.engine.InjectDirectional(target)
	default:
		err = s.engine.Inject(target)
	}
	return err
}

// mutate applies fn and broadcasts the resulting state. Failures are reported
// to the requesting client only and leave the engine untouched.
func (s *Server) mutate(c *client, fn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(); err != nil {
		code := protocol.ErrBadRequest
		if errors.Is(err, emfield.ErrInvalidIndex) {
			code = protocol.ErrInvalidIndex
		}
		s.log.Printf("ws: %s request rejected: %v", c.id, err)
		s.enqueue(c, protocol.NewError(code, err.Error()))
		return
	}
	state := StateFromSnapshot(s.engine.Snapshot())
	for other := range s.clients {
		s.enqueue(other, state)
	}
}

func (s *Server) sendTo(c *client, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enqueue(c, v)
}

// enqueue drops the message when the client's queue is full; the next STATE
// supersedes it.
func (s *Server) enqueue(c *client, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Printf("ws: marshal: %v", err)
		return
	}
	select {
	case c.out <- b:
	default:
		s.log.Printf("ws: %s queue full, dropping message", c.id)
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, b)
}
