package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Mark is the content of a board cell and also names the side to move.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

const (
	emptyToken = "-"
	xToken     = "x"
	oToken     = "o"
	drawToken  = "Draw"
)

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return xToken
	case PlayerO:
		return oToken
	default:
		return emptyToken
	}
}

// Opponent returns the other side. EmptyCell has no opponent and is returned unchanged.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mark) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case xToken:
		*m = PlayerX
	case oToken:
		*m = PlayerO
	case emptyToken, "":
		*m = EmptyCell
	default:
		return fmt.Errorf("%w: mark %q", ErrUnknownToken, text)
	}

	return nil
}

// Status is the lifecycle stage of a game.
type Status uint8

const (
	StatusNew Status = iota
	StatusWaiting
	StatusInProgress
	StatusFinished
)

var statusTokens = map[Status]string{
	StatusNew:        "NEW",
	StatusWaiting:    "WAITING",
	StatusInProgress: "IN_PROGRESS",
	StatusFinished:   "FINISHED",
}

func (s Status) String() string {
	if token, ok := statusTokens[s]; ok {
		return token
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

func (s Status) MarshalText() ([]byte, error) {
	token, ok := statusTokens[s]
	if !ok {
		return nil, fmt.Errorf("%w: status %d", ErrUnknownToken, uint8(s))
	}
	return []byte(token), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, token := range statusTokens {
		if strings.EqualFold(token, string(text)) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("%w: status %q", ErrUnknownToken, text)
}

// Result is the recorded end of a game. NoResult means the game has not been decided.
type Result uint8

const (
	NoResult Result = iota
	ResultX
	ResultO
	ResultDraw
)

// ResultFor converts a winning mark into its result.
func ResultFor(m Mark) Result {
	switch m {
	case PlayerX:
		return ResultX
	case PlayerO:
		return ResultO
	default:
		return NoResult
	}
}

// Mark returns the winning mark, or EmptyCell for a draw or an undecided game.
func (r Result) Mark() Mark {
	switch r {
	case ResultX:
		return PlayerX
	case ResultO:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (r Result) String() string {
	switch r {
	case ResultX:
		return xToken
	case ResultO:
		return oToken
	case ResultDraw:
		return drawToken
	default:
		return ""
	}
}

// MarshalJSON emits null for an undecided game.
func (r Result) MarshalJSON() ([]byte, error) {
	if r == NoResult {
		return []byte("null"), nil
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts the winner tokens in any letter case.
func (r *Result) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*r = NoResult
		return nil
	}

	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("failed to decode winner: %w", err)
	}

	switch {
	case token == "":
		*r = NoResult
	case strings.EqualFold(token, xToken):
		*r = ResultX
	case strings.EqualFold(token, oToken):
		*r = ResultO
	case strings.EqualFold(token, drawToken):
		*r = ResultDraw
	default:
		return fmt.Errorf("%w: winner %q", ErrUnknownToken, token)
	}

	return nil
}

// Difficulty selects how the computer opponent picks its moves. The zero value is DifficultyHarder.
type Difficulty uint8

const (
	DifficultyHarder Difficulty = iota
	DifficultyEasy
	DifficultyImpossible
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "EASY"
	case DifficultyImpossible:
		return "IMPOSSIBLE"
	default:
		return "HARDER"
	}
}

// ParseDifficulty never fails: absent or unknown names fall back to DifficultyHarder.
func ParseDifficulty(name string) Difficulty {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "EASY":
		return DifficultyEasy
	case "IMPOSSIBLE":
		return DifficultyImpossible
	default:
		return DifficultyHarder
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	*d = ParseDifficulty(string(text))
	return nil
}
