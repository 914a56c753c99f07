package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"chickenpos/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans order events out to every connected display: the kitchen
// screen and the customer queue board both subscribe to the same stream.
type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

// OrderEvent is what displays receive: "order.created" or
// "order.status_changed" plus the full order.
type OrderEvent struct {
	Event string        `json:"event"`
	Order *entity.Order `json:"order"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run owns the client set; start it once with `go hub.Run()`.
func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}

		case ev := <-h.broadcast:
			payload, err := json.Marshal(ev)
			if err != nil {
				log.Println("ws: marshal event:", err)
				continue
			}
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
		}
	}
}

// PublishOrder implements services.EventPublisher.
func (h *OrderHub) PublishOrder(event string, order *entity.Order) {
	h.broadcast <- OrderEvent{Event: event, Order: order}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // LAN displays
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. Displays never send anything meaningful; reads only
// detect disconnects.
func (h *OrderHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws: upgrade:", err)
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
