package draft

import (
	"errors"
	"fmt"
	"sort"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/player"
)

var ErrInvalidRounds = errors.New("rounds must be a positive integer")

// Pick is one selection of the historical draft.
type Pick struct {
	Round     int
	RoundPick int
	Overall   int
	TeamID    int64
	TeamName  string
	Player    player.Player
}

func (p Pick) Validate() error {
	if p.Overall <= 0 {
		return fmt.Errorf("overall pick must be greater than zero")
	}
	if p.Round <= 0 {
		return fmt.Errorf("round must be greater than zero: pick=%d", p.Overall)
	}
	if err := p.Player.Validate(); err != nil {
		return fmt.Errorf("pick %d: %w", p.Overall, err)
	}

	return nil
}

// SortByOverall orders picks by overall pick number, keeping input order on ties.
func SortByOverall(picks []Pick) {
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Overall < picks[j].Overall
	})
}

// Truncate keeps the picks of the first rounds rounds, never more than
// rounds*leagueSize of them. rounds == 0 keeps everything. picks must already be
// ordered by overall pick.
func Truncate(picks []Pick, rounds, leagueSize int) ([]Pick, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRounds, rounds)
	}
	if rounds == 0 {
		return picks, nil
	}

	limit := len(picks)
	if leagueSize > 0 && rounds*leagueSize < limit {
		limit = rounds * leagueSize
	}

	out := make([]Pick, 0, limit)
	for _, pick := range picks {
		if len(out) == limit {
			break
		}
		if pick.Round > rounds {
			continue
		}
		out = append(out, pick)
	}

	return out, nil
}
