// Package remote serves shell sessions over websockets. Each connection
// gets its own session (cwd, history, fallback) against a shared store and
// registry; messages are line-granular JSON, with editing handled by the
// remote client.
package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/sandfs/sandsh/internal/session"
	"github.com/sandfs/sandsh/internal/store"
	"github.com/sandfs/sandsh/internal/verb"
)

// Inbound is a client-to-server message.
type Inbound struct {
	Type string `json:"type"` // "input"
	Line string `json:"line,omitempty"`
}

// Outbound is a server-to-client message.
type Outbound struct {
	Type string `json:"type"` // "hello", "output", "error"
	Text string `json:"text,omitempty"`
	Cwd  string `json:"cwd,omitempty"`
}

// Server upgrades HTTP requests to websocket shell sessions.
type Server struct {
	store    store.FileStore
	reg      *verb.Registry
	upgrader websocket.Upgrader
	opts     []session.Option
}

// NewServer creates a server; opts apply to every session it spawns.
func NewServer(st store.FileStore, reg *verb.Registry, opts ...session.Option) *Server {
	return &Server{
		store: st,
		reg:   reg,
		opts:  opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// ServeHTTP handles one websocket connection for its whole lifetime.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return // Upgrade already wrote the HTTP error
	}
	defer conn.Close()

	sess := session.New(s.store, s.reg, s.opts...)
	if err := conn.WriteJSON(Outbound{Type: "hello", Cwd: sess.Cwd()}); err != nil {
		return
	}

	ctx := r.Context()
	for {
		var in Inbound
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		if in.Type != "input" {
			_ = conn.WriteJSON(Outbound{Type: "error", Text: fmt.Sprintf("unknown message type: %q", in.Type)})
			continue
		}

		out, err := sess.Submit(ctx, in.Line)
		msg := Outbound{Type: "output", Text: out, Cwd: sess.Cwd()}
		if err != nil {
			msg = Outbound{Type: "error", Text: err.Error(), Cwd: sess.Cwd()}
		}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// ListenAndServe blocks serving sessions at /session until ctx is done or
// the listener fails.
func ListenAndServe(ctx context.Context, addr string, srv *Server) error {
	mux := http.NewServeMux()
	mux.Handle("/session", srv)

	hs := &http.Server{Addr: addr, Handler: mux}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case <-ctx.Done():
		_ = hs.Close()
		return ctx.Err()
	case err := <-errc:
		return err
	}
}
