package observer

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/lixenwraith/rollball/core"
	"github.com/lixenwraith/rollball/status"
	"github.com/lixenwraith/rollball/telemetry"
)

// Path is the websocket route frames are served on
const Path = "/frames"

const (
	clientBuffer = 64
	writeTimeout = 2 * time.Second
	readTimeout  = 60 * time.Second
)

type client struct {
	id   uint64
	out  chan []byte
	done chan struct{}
}

// Hub fans telemetry frames out to local websocket observers
// Publish never blocks the tick loop; a full client queue drops the frame
type Hub struct {
	log      *log.Logger
	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu      sync.Mutex
	clients map[uint64]*client
	closed  bool
	srv     *http.Server

	statClients *atomic.Int64
	statDropped *atomic.Int64
}

// NewHub creates a hub; reg may be nil
func NewHub(logger *log.Logger, reg *status.Registry) *Hub {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		log:     logger,
		clients: make(map[uint64]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			// Loopback is enforced on the remote address instead
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		statClients: reg.Ints.Get(status.KeyObservers),
		statDropped: reg.Ints.Get(status.KeyDropped),
	}
}

// Clients returns the number of connected observers
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns frames discarded for slow observers
func (h *Hub) Dropped() int64 {
	return h.statDropped.Load()
}

// Publish sends f to every observer without blocking
func (h *Hub) Publish(f *telemetry.Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 {
		return
	}
	b, err := json.Marshal(f)
	if err != nil {
		h.log.Printf("[observer] marshal tick %d: %v", f.Tick, err)
		return
	}
	for _, c := range h.clients {
		select {
		case c.out <- b:
		default:
			h.statDropped.Add(1)
		}
	}
}

// Handler serves Path only
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, h.WSHandler())
	return mux
}

// WSHandler upgrades loopback GET requests and streams frames until the peer leaves
func (h *Hub) WSHandler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !isLoopbackRemote(r.RemoteAddr) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		c := &client{
			id:   h.nextID.Add(1),
			out:  make(chan []byte, clientBuffer),
			done: make(chan struct{}),
		}
		if !h.add(c) {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
				time.Now().Add(time.Second))
			return
		}
		h.log.Printf("[observer] client %d connected from %s", c.id, r.RemoteAddr)
		defer h.log.Printf("[observer] client %d left", c.id)
		defer h.remove(c.id)

		writerDone := make(chan struct{})
		core.Go(func() {
			defer close(writerDone)
			h.writeLoop(conn, c)
		})

		// Observers send nothing; reading only detects the close
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		h.remove(c.id)
		select {
		case <-writerDone:
		case <-time.After(500 * time.Millisecond):
		}
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, c *client) {
	for {
		select {
		case <-c.done:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
				time.Now().Add(time.Second))
			return
		case b := <-c.out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				h.remove(c.id)
				return
			}
		}
	}
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	h.statClients.Store(int64(len(h.clients)))
	return true
}

// remove is idempotent; done is closed exactly once
func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[id]
	if !ok {
		return
	}
	delete(h.clients, id)
	close(c.done)
	h.statClients.Store(int64(len(h.clients)))
}

// Listen serves the hub on addr, which must be a loopback address
// Returns the bound address; port 0 picks a free one
func (h *Hub) Listen(addr string) (net.Addr, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "observer address %q", addr)
	}
	if !isLoopbackHost(host) {
		return nil, errors.Errorf("observer address %q is not loopback", addr)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", addr)
	}
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = ln.Close()
		return nil, errors.New("observer hub closed")
	}
	h.srv = srv
	h.mu.Unlock()

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.log.Printf("[observer] serve: %v", err)
		}
	})
	h.log.Printf("[observer] listening on ws://%s%s", ln.Addr(), Path)
	return ln.Addr(), nil
}

// Close disconnects every observer and stops the listener
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	srv := h.srv
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.done)
	}
	h.statClients.Store(0)
	h.mu.Unlock()

	if srv == nil {
		return nil
	}
	// Hijacked websocket conns are not tracked by Shutdown; the writers close them
	return errors.Wrap(srv.Shutdown(ctx), "observer shutdown")
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	return isLoopbackHost(host)
}

func isLoopbackHost(host string) bool {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
