package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"tenderdesk-be/internal/model"
	"tenderdesk-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub fans board updates and notifications out to connected employees.
type Hub struct {
	// EmployeeID -> open connections (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance delivery
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.EmployeeID] = append(h.clients[client.EmployeeID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"employee_id": client.EmployeeID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.EmployeeID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.EmployeeID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.EmployeeID]) == 0 {
					delete(h.clients, client.EmployeeID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"employee_id": client.EmployeeID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastEvent pushes an arbitrary typed payload to every connected client.
// The board feed uses this for stage moves and tracking changes.
func (h *Hub) BroadcastEvent(eventType string, payload interface{}) {
	data, err := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to serialize event payload", map[string]interface{}{"type": eventType, "error": err.Error()})
		return
	}
	h.broadcastLocal(data)
	h.publishToCluster("*", data)
}

// Broadcast sends a notification to ALL connected clients.
func (h *Hub) Broadcast(notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})
	h.broadcastLocal(data)
	h.publishToCluster("*", data)
}

// Send delivers a notification to one employee's open connections.
// Implements the service.NotificationDelivery interface.
func (h *Hub) Send(employeeID uuid.UUID, notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.mu.RLock()
	clients, localFound := h.clients[employeeID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"employee_id": employeeID})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	// Other instances may hold more devices for the same employee.
	h.publishToCluster(employeeID.String(), data)
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				close(client.Send)
				h.unregister <- client
			}
		}
	}
}

func (h *Hub) publishToCluster(target string, data []byte) {
	if h.rdb == nil {
		return
	}
	payload := map[string]interface{}{
		"target_employee_id": target,
		"message":            json.RawMessage(data),
	}
	jsonPayload, _ := json.Marshal(payload)
	h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to one channel and filter on the target id;
	// "*" means broadcast.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetEmployeeID string          `json:"target_employee_id"`
			Message          json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetEmployeeID == "*" {
			h.broadcastLocal(payload.Message)
			continue
		}

		uid, err := uuid.Parse(payload.TargetEmployeeID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[uid]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}
