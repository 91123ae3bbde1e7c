// Package notify delivers order-created events to courier sessions. The
// hub keeps one sink per courier, keyed by user id; a courier logging in
// again from another connection replaces the previous sink.
package notify

import (
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/andreeabea/FoodDeliveryAppServer/models"
)

// Sink is one line of outbound push capacity, usually a courier's session
// socket behind its write lock.
type Sink interface {
	Push(message models.Message) error
}

type Hub struct {
	Logger *zap.SugaredLogger

	mu        sync.Mutex
	sinks     map[int]Sink
	published []models.OrderDTO
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		Logger: logger,
		sinks:  make(map[int]Sink),
	}
}

// Subscribe registers sink for the courier, replacing any previous one.
func (h *Hub) Subscribe(courierID int, sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sinks[courierID] = sink
}

// Unsubscribe removes the courier's sink, but only if it still is the
// given one: a session tearing down must not drop a newer login's sink.
func (h *Hub) Unsubscribe(courierID int, sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sinks[courierID] == sink {
		delete(h.sinks, courierID)
	}
}

// Publish records the order and pushes one courierNotification line to the
// assigned courier, if that courier currently has a live session. Delivery
// failure is logged and never propagates to the publishing session.
func (h *Hub) Publish(order models.OrderDTO) {
	h.mu.Lock()
	h.published = append(h.published, order)
	sink := h.sinks[order.Courier.ID]
	h.mu.Unlock()

	if sink == nil {
		return
	}

	message := models.Message{
		Header: "courierNotification",
		ObjectsJSON: []string{
			"Order with id " + strconv.Itoa(order.ID) + " was added at " + order.Datetime,
		},
	}
	if err := sink.Push(message); err != nil {
		h.Logger.Warnw("failed to push courier notification", "order", order.ID,
			"courier", order.Courier.ID, "error", err)
	}
}

// Published returns a snapshot of every order announced so far.
func (h *Hub) Published() []models.OrderDTO {
	h.mu.Lock()
	defer h.mu.Unlock()

	orders := make([]models.OrderDTO, len(h.published))
	copy(orders, h.published)
	return orders
}
