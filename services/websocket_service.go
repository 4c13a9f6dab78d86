package services

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"stillpad-notes/stillpad/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// WebSocketServiceInterface defines the operations provided by the WebSocket
// service.
type WebSocketServiceInterface interface {
	Start()
	Stop()
	BroadcastEvent(event models.NoteEvent)
	HandleConnection(w http.ResponseWriter, r *http.Request)
}

// Client is one connected WebSocket listener.
type Client struct {
	hub  *WebSocketService
	conn *websocket.Conn
	send chan []byte
}

// WebSocketService fans note events out to all connected clients. Clients
// only listen; inbound messages are read and discarded to service control
// frames.
type WebSocketService struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	upgrader   websocket.Upgrader

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
}

var _ WebSocketServiceInterface = (*WebSocketService)(nil)

func NewWebSocketService() *WebSocketService {
	return &WebSocketService{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Cross-origin policy is handled by the CORS middleware;
				// the note stream carries nothing sensitive.
				return true
			},
		},
		stopChan: make(chan struct{}),
	}
}

// Start launches the hub loop. Safe to call more than once.
func (s *WebSocketService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.run()
}

func (s *WebSocketService) run() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = true
			log.Debugf("websocket client connected, %d total", len(s.clients))
		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
		case message := <-s.broadcast:
			for client := range s.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(s.clients, client)
					close(client.send)
				}
			}
		case <-s.stopChan:
			for client := range s.clients {
				close(client.send)
				delete(s.clients, client)
			}
			return
		}
	}
}

func (s *WebSocketService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopChan)
}

// BroadcastEvent queues the event for delivery to every connected client.
// Never blocks; under backpressure the event is dropped with a warning.
func (s *WebSocketService) BroadcastEvent(event models.NoteEvent) {
	payload, err := event.ToJSON()
	if err != nil {
		log.Errorf("failed to encode %s event: %v", event.Event, err)
		return
	}

	select {
	case s.broadcast <- payload:
	default:
		log.Warnf("websocket broadcast queue full, dropping %s event", event.Event)
	}
}

// HandleConnection upgrades the request and attaches the client to the hub.
func (s *WebSocketService) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{hub: s, conn: conn, send: make(chan []byte, 16)}

	// The hub loop is the only receiver; once it has stopped, hand the
	// connection back instead of blocking on a dead channel.
	select {
	case s.register <- client:
	case <-s.stopChan:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.stopChan:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
