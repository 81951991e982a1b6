package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

const actionGameUpdate = "game:update"

// Message is the envelope of everything sent to a watcher.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Game *entity.View `json:"game,omitempty"`
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: payloadJSON})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return message, nil
}

func gameUpdate(game *entity.Game) ([]byte, error) {
	view := game.View()
	return encodeMessage(actionGameUpdate, ResponsePayload{Game: &view})
}
