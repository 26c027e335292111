// Package play runs a set of dice together for a number of rolls and keeps
// the most recent session's results.
package play

import (
	"cmp"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/montecarlo/internal/game/dice"
	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
	"github.com/cory-johannsen/montecarlo/internal/game/table"
)

// Game rolls an ordered collection of dice together.
//
// The dice are shared references: weight changes made by the caller after
// NewGame are observed on the next Play. Dice need not share a face set.
//
// A Game is not safe for concurrent use.
type Game[F cmp.Ordered] struct {
	dice      []*dice.Die[F]
	roller    *dice.Roller[F]
	logger    *zap.Logger
	results   *table.Wide[F]
	sessionID string
}

// NewGame creates a Game over the given dice.
//
// Precondition: no element of ds may be nil. A nil logger disables logging.
// Postcondition: Returns an unplayed Game or an error wrapping
// simerr.ErrInvalidArgument.
func NewGame[F cmp.Ordered](ds []*dice.Die[F], logger *zap.Logger) (*Game[F], error) {
	for i, d := range ds {
		if d == nil {
			return nil, fmt.Errorf("%w: play: die %d is nil", simerr.ErrInvalidArgument, i)
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game[F]{
		dice:   append([]*dice.Die[F](nil), ds...),
		roller: dice.NewLoggedRoller[F](logger),
		logger: logger,
	}, nil
}

// Dice returns the game's dice in position order.
func (g *Game[F]) Dice() []*dice.Die[F] {
	return append([]*dice.Die[F](nil), g.dice...)
}

// Played reports whether Play has completed at least once.
func (g *Game[F]) Played() bool { return g.results != nil }

// SessionID returns the identifier minted by the most recent Play, or ""
// before the first Play.
func (g *Game[F]) SessionID() string { return g.sessionID }

// Play rolls every die n times and replaces the stored results.
//
// Precondition: n >= 0; every die's weights must sum to a positive value.
// Postcondition: On success the results are an n × len(Dice()) table with a
// new session id. On error the previous results and session id are kept and
// the error wraps simerr.ErrInvalidArgument.
func (g *Game[F]) Play(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: play: roll count must be >= 0, got %d", simerr.ErrInvalidArgument, n)
	}
	start := time.Now()

	columns := make([][]F, len(g.dice))
	for i, d := range g.dice {
		col, err := g.roller.Roll(i, d, n)
		if err != nil {
			return fmt.Errorf("play: rolling die %d: %w", i, err)
		}
		columns[i] = col
	}
	results, err := table.FromColumns(n, columns)
	if err != nil {
		return fmt.Errorf("play: assembling results: %w", err)
	}

	g.results = &results
	g.sessionID = uuid.New().String()

	g.logger.Debug("game played",
		zap.String("session", g.sessionID),
		zap.Int("rolls", n),
		zap.Int("dice", len(g.dice)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Wide returns a deep copy of the most recent results grid.
//
// Postcondition: Returns an error wrapping simerr.ErrInvalidState before the
// first Play.
func (g *Game[F]) Wide() (table.Wide[F], error) {
	if g.results == nil {
		return table.Wide[F]{}, fmt.Errorf("%w: play: no results available, play the game first", simerr.ErrInvalidState)
	}
	return g.results.Clone(), nil
}

// Narrow returns the most recent results in long form.
func (g *Game[F]) Narrow() (table.Narrow[F], error) {
	w, err := g.Wide()
	if err != nil {
		return nil, err
	}
	return table.Melt(w), nil
}
