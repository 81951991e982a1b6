package entity

// View is the public rendering of a game for clients: the snapshot plus the game's identity and settings.
type View struct {
	ID string `json:"id"`
	Snapshot
	VsComputer bool       `json:"vsComputer"`
	Difficulty Difficulty `json:"difficulty"`
	PlayerX    PlayerID   `json:"playerX,omitempty"`
	PlayerO    PlayerID   `json:"playerO,omitempty"`
}

func (that *Game) View() View {
	return View{
		ID:         that.ID,
		Snapshot:   that.Snapshot(),
		VsComputer: that.VsComputer,
		Difficulty: that.Difficulty,
		PlayerX:    that.PlayerX,
		PlayerO:    that.PlayerO,
	}
}
