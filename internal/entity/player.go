package entity

// Player holds the lifetime counters of one identity.
type Player struct {
	ID          PlayerID `json:"username"`
	Wins        int      `json:"wins"`
	Losses      int      `json:"losses"`
	Ties        int      `json:"ties"`
	GamesPlayed int      `json:"gamesPlayed"`
}
