package bet

import (
	"math/bits"
	"roulette_backend/internal/model"
	"roulette_backend/internal/odds"
)

// Validate - checks that a single wager can be played under the variant and that
// its largest possible payout fits in uint64. No side effects.
func Validate(w model.Wager, variant model.GameVariant) error {
	if _, ok := odds.For(variant); !ok {
		return &model.ValidationError{Kind: model.UnsupportedGame, Index: -1}
	}
	multiplier, ok := odds.Multiplier(variant, w.Bet)
	if !ok {
		return &model.ValidationError{Kind: model.UnrecognizedSelector, Index: -1, Selector: w.Bet}
	}
	if w.ChipsIn == 0 {
		return &model.ValidationError{Kind: model.ZeroStake, Index: -1, Selector: w.Bet}
	}
	if _, ok := payout(w.ChipsIn, multiplier); !ok {
		return &model.ValidationError{Kind: model.StakeTooLarge, Index: -1, Selector: w.Bet}
	}
	return nil
}

// Resolve - returns a copy of the wager with ChipsOut set for the drawn outcome.
// Pure: the same wager, variant and outcome always give the same result.
// The wager must have passed Validate.
func Resolve(w model.Wager, variant model.GameVariant, outcome string) model.Wager {
	var chipsOut uint64
	if odds.Covers(variant, w.Bet, outcome) {
		multiplier, _ := odds.Multiplier(variant, w.Bet)
		p, ok := payout(w.ChipsIn, multiplier)
		if !ok {
			panic("bet: payout overflow on a validated wager")
		}
		chipsOut = p
	}
	w.ChipsOut = &chipsOut
	return w
}

// payout multiplies the stake, ok is false on overflow
func payout(chipsIn, multiplier uint64) (uint64, bool) {
	hi, lo := bits.Mul64(chipsIn, multiplier)
	return lo, hi == 0
}
