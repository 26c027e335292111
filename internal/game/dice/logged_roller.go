package dice

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
)

// Roller rolls dice and logs each batch at debug level with the die
// position, roll count, total weight, and the distinct faces drawn.
type Roller[F cmp.Ordered] struct {
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that logs to logger.
//
// Precondition: logger must be non-nil.
func NewLoggedRoller[F cmp.Ordered](logger *zap.Logger) *Roller[F] {
	return &Roller[F]{logger: logger}
}

// Roll rolls d n times and logs the result.
//
// Postcondition: Returns d.Roll(n) unchanged; a failed roll is logged at
// debug level and its error returned.
func (r *Roller[F]) Roll(position int, d *Die[F], n int) ([]F, error) {
	out, err := d.Roll(n)
	if err != nil {
		r.logger.Debug("dice roll rejected",
			zap.Int("die", position),
			zap.Int("rolls", n),
			zap.Error(err),
		)
		return nil, err
	}
	if ce := r.logger.Check(zap.DebugLevel, "dice roll"); ce != nil {
		ce.Write(
			zap.Int("die", position),
			zap.Int("rolls", n),
			zap.Float64("total_weight", d.TotalWeight()),
			zap.Int("distinct_faces", distinct(out)),
			zap.String("first", preview(out)),
		)
	}
	return out, nil
}

func distinct[F cmp.Ordered](vals []F) int {
	seen := make(map[F]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// preview renders at most the first eight outcomes.
func preview[F cmp.Ordered](vals []F) string {
	if len(vals) > 8 {
		return fmt.Sprintf("%v...", vals[:8])
	}
	return fmt.Sprintf("%v", vals)
}
