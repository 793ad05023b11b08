package game

type GameRequest struct {
	Game string       `json:"game" validate:"required"`
	Bets []BetRequest `json:"bets" validate:"required,dive"`
}

type BetRequest struct {
	PlayerID string  `json:"playerId" validate:"required"`
	Bet      string  `json:"bet" validate:"required"`
	ChipsIn  uint64  `json:"chipsIn"`
	ChipsOut *uint64 `json:"chipsOut,omitempty"` // ignored, resolved server side
}

type PlayedGameResponse struct {
	UUID      string        `json:"uuid"`
	Game      string        `json:"game"`
	Bets      []BetResponse `json:"bets"`
	ServiceID string        `json:"serviceId"`
	Occurred  uint64        `json:"occurred"`
	Result    string        `json:"result"`
}

type BetResponse struct {
	PlayerID string `json:"playerId"`
	Bet      string `json:"bet"`
	ChipsIn  uint64 `json:"chipsIn"`
	ChipsOut uint64 `json:"chipsOut"`
}
