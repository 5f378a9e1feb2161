package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers the connection with the hub and starts its pumps.
func ServeWs(hub *Hub, c *websocket.Conn, employeeID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, EmployeeID: employeeID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs in the handler goroutine
}
