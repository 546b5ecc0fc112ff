package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeSeatAssigned MessageType = "seat_assigned"
	MessageTypeBagCheckedIn MessageType = "bag_checked_in"
)

// Message represents a WebSocket message pushed to kiosk displays
type Message struct {
	Type          MessageType `json:"type"`
	FlightNo      string      `json:"flightNo"`
	SeatID        string      `json:"seatId,omitempty"`
	BookingRef    string      `json:"bookingRef,omitempty"`
	BagTag        string      `json:"bagTag,omitempty"`
	TotalBags     int         `json:"totalBags,omitempty"`
	TotalWeightKg float64     `json:"totalWeightKg,omitempty"`
	Timestamp     int64       `json:"timestamp"`
}

// Client represents a WebSocket client connection
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	flightNo string
}

// Hub manages WebSocket connections per flight
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.flightNo] == nil {
				h.clients[client.flightNo] = make(map[*Client]bool)
			}
			h.clients[client.flightNo][client] = true
			log.Printf("WebSocket: Client registered for flight %s (total: %d)", client.flightNo, len(h.clients[client.flightNo]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.flightNo]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					log.Printf("WebSocket: Client unregistered from flight %s (remaining: %d)", client.flightNo, len(clients))
					if len(clients) == 0 {
						delete(h.clients, client.flightNo)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("WebSocket: Failed to marshal message: %v", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.FlightNo]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.FlightNo], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastSeatAssigned notifies displays watching a flight that a seat was
// claimed.
func (h *Hub) BroadcastSeatAssigned(flightNo, seatID, bookingRef string) {
	h.broadcast <- &Message{
		Type:       MessageTypeSeatAssigned,
		FlightNo:   flightNo,
		SeatID:     seatID,
		BookingRef: bookingRef,
		Timestamp:  time.Now().UnixMilli(),
	}
}

// BroadcastBagCheckedIn notifies displays of a newly accepted bag and the
// flight's running baggage totals.
func (h *Hub) BroadcastBagCheckedIn(flightNo, bagTag string, totalBags int, totalWeightKg float64) {
	h.broadcast <- &Message{
		Type:          MessageTypeBagCheckedIn,
		FlightNo:      flightNo,
		BagTag:        bagTag,
		TotalBags:     totalBags,
		TotalWeightKg: totalWeightKg,
		Timestamp:     time.Now().UnixMilli(),
	}
}

// GetClientCount returns the number of clients watching a flight
func (h *Hub) GetClientCount(flightNo string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[flightNo])
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades GET /api/flights/{flightNo}/ws connections and
// registers them for that flight's event feed.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	flightNo := mux.Vars(r)["flightNo"]

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket: Upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 64),
		flightNo: flightNo,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
