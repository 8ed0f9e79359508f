// Package stream pushes fresh snapshots of publicly shared trips to
// websocket viewers. The repository broadcasts after each mutation of a
// shared trip; redis pub/sub bridges hubs across processes.
package stream

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Hub struct {
	id      string
	redis   *redis.Client
	viewers map[string]map[*Viewer]struct{}
	mu      sync.RWMutex
}

// envelope wraps payloads republished over redis so a hub can recognise
// and drop its own messages; Broadcast already delivered those locally.
type envelope struct {
	Origin  string          `json:"origin"`
	Payload json.RawMessage `json:"payload"`
}

// Viewer is one websocket subscriber to a share link.
type Viewer struct {
	ShareID string
	Send    chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		id:      uuid.NewString(),
		redis:   redisClient,
		viewers: map[string]map[*Viewer]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(shareID string) *Viewer {
	viewer := &Viewer{
		ShareID: shareID,
		Send:    make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.viewers[shareID] == nil {
		h.viewers[shareID] = map[*Viewer]struct{}{}
	}
	h.viewers[shareID][viewer] = struct{}{}
	return viewer
}

func (h *Hub) Unregister(viewer *Viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if shareViewers, ok := h.viewers[viewer.ShareID]; ok {
		delete(shareViewers, viewer)
		if len(shareViewers) == 0 {
			delete(h.viewers, viewer.ShareID)
		}
	}
	close(viewer.Send)
}

// Broadcast delivers the payload to local viewers of the share link and
// republishes it for hubs on other instances. Slow viewers are skipped,
// never blocked on.
func (h *Hub) Broadcast(shareID string, payload []byte) {
	h.deliver(shareID, payload)

	if h.redis != nil {
		msg, err := json.Marshal(envelope{Origin: h.id, Payload: payload})
		if err != nil {
			log.Printf("redis publish marshal error: %v", err)
			return
		}
		if err := h.redis.Publish(context.Background(), redisChannel(shareID), msg).Err(); err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) deliver(shareID string, payload []byte) {
	// The read lock excludes Unregister's close, and sends never block, so
	// holding it across the loop is safe.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for viewer := range h.viewers[shareID] {
		select {
		case viewer.Send <- payload:
		default:
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "share:*:updates")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		shareID := shareIDFromChannel(msg.Channel)
		if shareID == "" {
			continue
		}
		var env envelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err == nil && env.Origin != "" {
			if env.Origin == h.id {
				continue
			}
			h.deliver(shareID, env.Payload)
			continue
		}
		// Bare payloads published by other tooling pass through as-is.
		h.deliver(shareID, []byte(msg.Payload))
	}
}

func redisChannel(shareID string) string {
	return "share:" + shareID + ":updates"
}

func shareIDFromChannel(ch string) string {
	// share:{shareID}:updates
	const prefix = "share:"
	const suffix = ":updates"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
