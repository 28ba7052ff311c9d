package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Các loại sự kiện phát ra sau mỗi mutation thành công.
const (
	EventFarmRegistered        = "FarmRegistered"
	EventFarmUpdated           = "FarmUpdated"
	EventProductAdded          = "ProductAdded"
	EventProductUpdated        = "ProductUpdated"
	EventProductStatusChanged  = "ProductStatusChanged"
	EventCategoryAdded         = "CategoryAdded"
	EventFarmingProcessAdded   = "FarmingProcessAdded"
	EventFarmingProcessUpdated = "FarmingProcessUpdated"
	EventMedicineAdded         = "MedicineAdded"
	EventMedicineUpdated       = "MedicineUpdated"
	EventFertilizerAdded       = "FertilizerAdded"
	EventFertilizerUpdated     = "FertilizerUpdated"
	EventHarvestAdded          = "HarvestAdded"
	EventHarvestUpdated        = "HarvestUpdated"
	EventDistributionAdded     = "DistributionAdded"
	EventDistributionUpdated   = "DistributionUpdated"
)

// Event là một bản ghi audit bất biến. Ledger chỉ ghi thêm (append-only),
// không bao giờ đọc lại; các observer bên ngoài tiêu thụ qua EventSink.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Key       string    `json:"key"` // farmCode / productCode / tên category
	Actor     string    `json:"actor"`
	Payload   any       `json:"payload"`
	EmittedAt time.Time `json:"emittedAt"`
}

// EventSink nhận các sự kiện do ledger phát ra (hub WebSocket, publisher AMQP...).
// Sink không được trả lỗi ngược về ledger: mutation đã commit xong trước khi phát.
type EventSink interface {
	Publish(Event)
}

// ProductStatusChange là payload của sự kiện ProductStatusChanged.
type ProductStatusChange struct {
	ProductCode string        `json:"productCode"`
	OldStatus   ProductStatus `json:"oldStatus"`
	NewStatus   ProductStatus `json:"newStatus"`
}

// emit ghi sự kiện vào log và fan-out cho các sink. Gọi khi đang giữ l.mu.
func (l *Ledger) emit(eventType, key, actor string, payload any) {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Key:       key,
		Actor:     actor,
		Payload:   payload,
		EmittedAt: time.Now(),
	}
	l.events = append(l.events, evt)
	for _, sink := range l.sinks {
		sink.Publish(evt)
	}
}

// Events trả về bản sao của toàn bộ event log theo thứ tự phát sinh.
func (l *Ledger) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}
