package converter

import (
	"roulette_backend/internal/api/dto/game"
	"roulette_backend/internal/model"
)

func ToWagerRequest(req game.GameRequest) model.WagerRequest {
	bets := make([]model.Wager, len(req.Bets))
	for i, b := range req.Bets {
		bets[i] = model.Wager{
			PlayerID: b.PlayerID,
			Bet:      b.Bet,
			ChipsIn:  b.ChipsIn,
		}
	}
	return model.WagerRequest{
		Game: model.GameVariant(req.Game),
		Bets: bets,
	}
}

func ToPlayedGameResponse(record model.ResultRecord) game.PlayedGameResponse {
	return game.PlayedGameResponse{
		UUID:      record.ID.String(),
		Game:      string(record.Game),
		Bets:      toBetResponses(record.Bets),
		ServiceID: record.ServiceID,
		Occurred:  record.Occurred,
		Result:    record.Result,
	}
}

func toBetResponses(bets []model.Wager) []game.BetResponse {
	result := make([]game.BetResponse, len(bets))
	for i, b := range bets {
		result[i] = game.BetResponse{
			PlayerID: b.PlayerID,
			Bet:      b.Bet,
			ChipsIn:  b.ChipsIn,
		}
		if b.ChipsOut != nil {
			result[i].ChipsOut = *b.ChipsOut
		}
	}
	return result
}
