package websocket

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const subscriberBuffer = 16

// Subscription receives the encoded updates of one game. C is closed when the subscription ends.
type Subscription struct {
	C <-chan []byte

	gameID string
	send   chan []byte
	hub    *Hub
}

// Close ends the subscription. It is safe to call more than once.
func (that *Subscription) Close() {
	that.hub.remove(that)
}

// Hub fans game updates out to the watchers of each game.
type Hub struct {
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[string]map[*Subscription]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("component", "hub"),
		subscribers: make(map[string]map[*Subscription]struct{}),
	}
}

func (that *Hub) Subscribe(gameID string) *Subscription {
	send := make(chan []byte, subscriberBuffer)
	sub := &Subscription{
		C:      send,
		gameID: gameID,
		send:   send,
		hub:    that,
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	subs, ok := that.subscribers[gameID]
	if !ok {
		subs = make(map[*Subscription]struct{})
		that.subscribers[gameID] = subs
	}
	subs[sub] = struct{}{}

	return sub
}

// Publish sends the game to its watchers without blocking. A watcher whose buffer is full is dropped.
func (that *Hub) Publish(game *entity.Game) {
	message, err := gameUpdate(game)
	if err != nil {
		that.logger.Error("failed to encode game update", "gameID", game.ID, "error", err)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for sub := range that.subscribers[game.ID] {
		select {
		case sub.send <- message:
		default:
			that.logger.Warn("dropping slow watcher", "gameID", game.ID)
			that.removeLocked(sub)
		}
	}
}

func (that *Hub) remove(sub *Subscription) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.removeLocked(sub)
}

func (that *Hub) removeLocked(sub *Subscription) {
	subs, ok := that.subscribers[sub.gameID]
	if !ok {
		return
	}

	if _, ok = subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.send)

	if len(subs) == 0 {
		delete(that.subscribers, sub.gameID)
	}
}

func (that *Hub) watchers(gameID string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.subscribers[gameID])
}
