package model

import (


	"github.com/google/uuid"
)

// GameVariant identifies the odds table and draw range a request is played with.
type GameVariant string

const (
	EuropeanRoulette GameVariant = "EuropeanRoulette"
)

// Wager is a single bet placed by a player within a request.
// ChipsOut stays nil until the wager is resolved.
type Wager struct {
	PlayerID string
	Bet      string
	ChipsIn  uint64
	ChipsOut *uint64
}

// WagerRequest is the transient input of a validation or a play.
type WagerRequest struct {
	Game GameVariant
	Bets []Wager
}

// ResultRecord is a resolved wager request. It is never changed once created.
type ResultRecord struct {
	ID        uuid.UUID
	Game      GameVariant
	Bets      []Wager
	ServiceID string
	Occurred  uint64
	Result    string
}

// Clone returns a deep copy, so stored records can't be changed through a returned pointer.
func (r *ResultRecord) Clone() *ResultRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Bets = make([]Wager, len(r.Bets))
	for i, b := range r.Bets {
		out.Bets[i] = b
		if b.ChipsOut != nil {
			v := *b.ChipsOut
			out.Bets[i].ChipsOut = &v
		}
	}
	return &out
}
