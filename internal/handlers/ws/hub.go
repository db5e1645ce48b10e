package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// A validação de origem acontece no middleware de CORS
		return true
	},
}

// activityEvent é o payload enviado aos assinantes do feed
type activityEvent struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   int64     `json:"entity_id"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Hub distribui registros de atividade para clientes websocket conectados.
// Implementa ports.ActivityPublisher; Publish nunca bloqueia o chamador.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	logger     ports.Logger
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub cria um novo hub de atividade
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Run processa registros, desconexões e broadcasts até o hub ser encerrado
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("activity feed client connected", "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Debug("activity feed client disconnected", "clients", len(h.clients))
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Cliente lento: descartar a conexão em vez de segurar o hub
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish serializa o registro e o envia a todos os clientes conectados
func (h *Hub) Publish(log entities.ActivityLog) {
	event := activityEvent{
		ID:         log.ID,
		UserID:     log.UserID,
		UserName:   log.UserName,
		Action:     log.Action,
		EntityType: log.EntityType,
		EntityID:   log.EntityID,
		Details:    log.Details,
		Timestamp:  log.Timestamp,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal activity event", "error", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("activity feed broadcast buffer full, dropping event")
	}
}

// ServeActivityFeed faz o upgrade da conexão e registra o cliente no hub
//
//	@Summary		Feed de atividade em tempo real
//	@Description	Abre uma conexão websocket que recebe cada registro de atividade gravado
//	@Tags			activity
//	@Router			/ws/activity [get]
func (h *Hub) ServeActivityFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{hub: h, conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register <- cl

	go cl.writePump()
	go cl.readPump()
}

// readPump descarta mensagens do cliente e detecta desconexões
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump envia eventos e pings periódicos ao cliente
func (c *client) writePump() {
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
