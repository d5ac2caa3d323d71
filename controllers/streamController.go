package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	streamClients = make(map[*websocket.Conn]bool)
	streamMu      sync.Mutex
)

type streamMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// StreamTables upgrades the connection and keeps it registered until the
// client goes away. Subscribers receive a "tables" event after every
// committed mutation.
func StreamTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		streamMu.Lock()
		streamClients[conn] = true
		streamMu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				streamMu.Lock()
				delete(streamClients, conn)
				streamMu.Unlock()
				break
			}
		}
	}
}

// notifyTables pushes the current table view to every stream subscriber.
// Dead connections are dropped as they fail.
func notifyTables(tables []gin.H) {
	streamMu.Lock()
	defer streamMu.Unlock()
	if len(streamClients) == 0 {
		return
	}

	message, err := json.Marshal(streamMessage{Event: "tables", Payload: tables})
	if err != nil {
		log.Println("error marshaling stream message:", err)
		return
	}
	for client := range streamClients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Println("error writing stream message:", err)
			client.Close()
			delete(streamClients, client)
		}
	}
}
