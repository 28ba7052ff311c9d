// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gorilla/websocket"
)

// Hub quản lý tất cả các client WebSocket và phát mọi sự kiện audit của
// ledger tới từng client. Hub implement ledger.EventSink.
type Hub struct {
	// clients là một map để lưu trữ các kết nối, key là actorID của user.
	clients map[string]*websocket.Conn
	// mu là một Mutex để đảm bảo an toàn khi truy cập map clients từ nhiều goroutine.
	mu sync.RWMutex
}

// NewHub tạo một Hub mới.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

// Register thêm một client mới vào Hub.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = conn
	log.Printf("WebSocket client registered: %s", userID)
}

// Unregister xóa một client khỏi Hub.
func (h *Hub) Unregister(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; ok {
		delete(h.clients, userID)
		log.Printf("WebSocket client unregistered: %s", userID)
	}
}

// Publish phát một sự kiện ledger (dạng JSON) đến mọi client đang kết nối.
// Lỗi gửi cho từng client chỉ được log; sự kiện đã commit nên không propagate.
func (h *Hub) Publish(evt ledger.Event) {
	message, err := json.Marshal(evt)
	if err != nil {
		log.Printf("Failed to marshal event %s: %v", evt.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for userID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Failed to send event to %s: %v", userID, err)
		}
	}
}
