package game

import (
	"math/rand/v2"
	"roulette_backend/internal/model"
	"roulette_backend/internal/odds"
	"roulette_backend/internal/service/bet"
	"time"

	"github.com/google/uuid"
)

// Default limit of wagers in a single request
const defaultMaxBets = 100

// Drawer picks one outcome of the variant's outcome space.
type Drawer interface {
	Draw(variant model.GameVariant) string
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(variant model.GameVariant) string

func (f DrawerFunc) Draw(variant model.GameVariant) string {
	return f(variant)
}

// UniformDrawer draws every outcome with equal probability. The top level
// math/rand/v2 source is safe for concurrent use.
type UniformDrawer struct{}

func (UniformDrawer) Draw(variant model.GameVariant) string {
	outcomes := odds.Outcomes(variant)
	if len(outcomes) == 0 {
		panic("game: draw for unsupported variant " + string(variant))
	}
	return outcomes[rand.IntN(len(outcomes))]
}

// Engine validates and resolves wager requests. It holds no mutable state.
type Engine struct {
	drawer  Drawer
	now     func() time.Time
	newID   func() uuid.UUID
	maxBets int
	games   map[model.GameVariant]struct{}
}

type Option func(*Engine)

// WithDrawer replaces the random draw, tests use it to fix the outcome.
func WithDrawer(d Drawer) Option {
	return func(e *Engine) { e.drawer = d }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithMaxBets limits the number of wagers per request, values below 1 keep the default.
func WithMaxBets(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxBets = n
		}
	}
}

// WithGames restricts play to the listed variants. Variants without an odds table stay unsupported.
func WithGames(variants ...model.GameVariant) Option {
	return func(e *Engine) {
		e.games = make(map[model.GameVariant]struct{}, len(variants))
		for _, v := range variants {
			e.games[v] = struct{}{}
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		drawer:  UniformDrawer{},
		now:     time.Now,
		newID:   uuid.New,
		maxBets: defaultMaxBets,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate - checks every wager of the request, the first failing wager wins.
func (e *Engine) Validate(req model.WagerRequest) error {
	if !e.enabled(req.Game) {
		return &model.ValidationError{Kind: model.UnsupportedGame, Index: -1}
	}
	if len(req.Bets) == 0 {
		return &model.ValidationError{Kind: model.NoBets, Index: -1}
	}
	if len(req.Bets) > e.maxBets {
		return &model.ValidationError{Kind: model.TooManyBets, Index: -1}
	}
	for i, w := range req.Bets {
		if err := bet.Validate(w, req.Game); err != nil {
			if vErr, ok := err.(*model.ValidationError); ok {
				vErr.Index = i
			}
			return err
		}
	}
	return nil
}

func (e *Engine) enabled(variant model.GameVariant) bool {
	if _, ok := odds.For(variant); !ok {
		return false
	}
	if e.games == nil {
		return true
	}
	_, ok := e.games[variant]
	return ok
}

// Play - validates the request, draws the outcome and resolves every wager.
// The returned record is not stored.
func (e *Engine) Play(req model.WagerRequest, serviceID string) (*model.ResultRecord, error) {
	if err := e.Validate(req); err != nil {
		return nil, err
	}

	id := e.newID()
	outcome := e.drawer.Draw(req.Game)

	bets := make([]model.Wager, len(req.Bets))
	for i, w := range req.Bets {
		bets[i] = bet.Resolve(w, req.Game, outcome)
	}

	return &model.ResultRecord{
		ID:        id,
		Game:      req.Game,
		Bets:      bets,
		ServiceID: serviceID,
		Occurred:  uint64(e.now().Unix()),
		Result:    outcome,
	}, nil
}
