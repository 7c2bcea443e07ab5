// Package notify fans transient user messages out to connected clients.
package notify

import (
	"sync"

	"golang.org/x/net/websocket"

	"github.com/imgfetch/logger"
)

const (
	// MsgSuccess is shown after an image was downloaded and stored.
	MsgSuccess = "Image downloaded successfully"
	// MsgFailure is shown for any failed download.
	MsgFailure = "Failed to download image"
	// MsgInvalidURL is shown when no URL was entered.
	MsgInvalidURL = "Please enter a valid URL"
)

const subscriberBuffer = 16

// Notification is a single message for the user.
type Notification struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Hub broadcasts notifications to all current subscribers.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Notification]struct{}
}

// NewHub returns empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan Notification]struct{})}
}

// Subscribe registers a listener. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	ch := make(chan Notification, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers n to every subscriber without blocking; full subscribers miss it.
func (h *Hub) Publish(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- n:
		default:
			logger.Debugf("dropping notification %q for slow subscriber", n.Message)
		}
	}
}

// Handler streams notifications to a websocket client as JSON frames.
func (h *Hub) Handler() websocket.Handler {
	return func(ws *websocket.Conn) {
		defer ws.Close()
		ch, unsubscribe := h.Subscribe()
		defer unsubscribe()

		// the client never sends anything meaningful; a failed read means it went away
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			var discard string
			for websocket.Message.Receive(ws, &discard) == nil {
			}
		}()

		for {
			select {
			case n := <-ch:
				if err := websocket.JSON.Send(ws, n); err != nil {
					logger.Debugf("notification stream closed: %v", err)
					return
				}
			case <-gone:
				return
			}
		}
	}
}
