// Package bridge implements the TCP JSON command bridge that external
// clients drive terrain generation through. Each request is a single JSON
// object {"type": <command>, "params": {...}}; each response reports either
// {"status": "success", "result": ...} or {"status": "error", "error": ...}.
// Commands are dispatched through a Registry populated once at startup.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"runtime/debug"
	"sync"
	"time"
)

// Config holds the tunable parameters of a Bridge. The zero value is usable;
// defaults are applied by withDefaults.
type Config struct {
	// Addr is the TCP address the bridge listens on.
	Addr string
	// Log is the logger used for connection diagnostics. Defaults to
	// slog.Default().
	Log *slog.Logger
	// ReadTimeout bounds how long the bridge waits for the next request on
	// an open connection.
	ReadTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = ":55557"
	}
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 30 * time.Second
	}
	return c
}

// Start opens the listener and begins serving commands from the registry
// passed. The returned Bridge serves until Close is called.
func (c Config) Start(reg *Registry) (*Bridge, error) {
	c = c.withDefaults()
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return nil, fmt.Errorf("start bridge: %w", err)
	}
	b := &Bridge{conf: c, reg: reg, ln: ln, log: c.Log.With("subsystem", "bridge"), conns: map[net.Conn]struct{}{}}
	b.wg.Add(1)
	go b.accept()
	b.log.Info("bridge listening", "addr", ln.Addr().String())
	return b, nil
}

// Bridge accepts client connections and dispatches their commands.
type Bridge struct {
	conf Config
	reg  *Registry
	log  *slog.Logger
	ln   net.Listener
	wg   sync.WaitGroup

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

// Addr returns the address the bridge is listening on.
func (b *Bridge) Addr() net.Addr {
	return b.ln.Addr()
}

// Close stops accepting connections, closes open ones and waits for in-flight
// requests. Idle connections are released immediately rather than waiting out
// their read deadline.
func (b *Bridge) Close() error {
	err := b.ln.Close()
	b.mu.Lock()
	b.closed = true
	for conn := range b.conns {
		_ = conn.Close()
	}
	b.mu.Unlock()
	b.wg.Wait()
	return err
}

func (b *Bridge) accept() {
	defer b.wg.Done()
	for {
		conn, err := b.ln.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				b.log.Error("accept connection", "err", err)
			}
			return
		}
		if !b.track(conn) {
			return
		}
		b.wg.Add(1)
		go b.handleConn(conn)
	}
}

// track records a live connection. It reports false if the bridge is already
// closing, in which case the connection is closed instead of served.
func (b *Bridge) track(conn net.Conn) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		_ = conn.Close()
		return false
	}
	b.conns[conn] = struct{}{}
	return true
}

func (b *Bridge) untrack(conn net.Conn) {
	b.mu.Lock()
	delete(b.conns, conn)
	b.mu.Unlock()
}

type request struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params"`
}

type response struct {
	Status string `json:"status"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleConn serves requests from one connection until it is closed or a
// request cannot be decoded.
func (b *Bridge) handleConn(conn net.Conn) {
	defer b.wg.Done()
	defer b.untrack(conn)
	defer conn.Close()

	log := b.log.With("remote", conn.RemoteAddr().String())
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(b.conf.ReadTimeout))
		var req request
		if err := dec.Decode(&req); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.Debug("decode request", "err", err)
			}
			return
		}
		resp := b.dispatch(log, req)
		if err := enc.Encode(resp); err != nil {
			log.Debug("encode response", "err", err)
			return
		}
	}
}

// dispatch routes a request to its registered handler. Handler panics are
// contained and reported as command errors so one bad request cannot take
// the bridge down.
func (b *Bridge) dispatch(log *slog.Logger, req request) (resp response) {
	h, ok := b.reg.Lookup(req.Type)
	if !ok {
		return response{Status: "error", Error: fmt.Sprintf("unknown command: %v", req.Type)}
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("command panicked", "command", req.Type, "panic", r, "stack", string(debug.Stack()))
			resp = response{Status: "error", Error: fmt.Sprintf("command %v failed", req.Type)}
		}
	}()
	result, err := h.Handle(req.Params)
	if err != nil {
		log.Debug("command failed", "command", req.Type, "err", err)
		return response{Status: "error", Error: err.Error()}
	}
	return response{Status: "success", Result: result}
}
