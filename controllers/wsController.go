package controllers

import (
	"log"
	"net/http"
	"sync"

	"go-resto-manager/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	clients = make(map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// Message is the envelope pushed to staff clients.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

// NotifyNewOrder tells connected staff a customer just ordered.
func NotifyNewOrder(order *models.Order) {
	broadcast(Message{Event: "newOrder", Payload: order})
}

// NotifyOrderStatus pushes kitchen status changes so table-side clients
// polling the menu are not the only consumers.
func NotifyOrderStatus(order *models.Order) {
	broadcast(Message{Event: "orderStatus", Payload: order})
}

func broadcast(message Message) {
	mu.Lock()
	defer mu.Unlock()
	for client := range clients {
		if err := client.WriteJSON(message); err != nil {
			log.Println("websocket write failed:", err)
			client.Close()
			delete(clients, client)
		}
	}
}
