package ranking

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/draft"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/player"
)

// Ranked is a drafted player placed in the redraft order.
type Ranked struct {
	Pick        draft.Pick
	Score       float64
	RedraftPick int
}

// Comparison pairs an original pick with the slot the player earned.
type Comparison struct {
	Pick        draft.Pick
	RedraftPick int
	Score       float64
}

// Difference is positive when the player outperformed the draft slot (a steal)
// and negative when the player was taken too early (a bust).
func (c Comparison) Difference() int {
	return c.Pick.Overall - c.RedraftPick
}

// Slot lines up the pick actually made at a draft position with the player the
// ranking puts there.
type Slot struct {
	Actual      Comparison
	Recommended Ranked
}

// Result is the transient redraft output handed to the presentation layer.
type Result struct {
	Strategy    Strategy
	Name        string
	Description string
	Rounds      int
	Ranked      []Ranked
	Comparisons []Comparison
	Slots       []Slot
}

// Rank scores every pick under strategy and returns them best first. Equal
// scores keep original draft order.
func Rank(picks []draft.Pick, strategy Strategy, opts Options) ([]Ranked, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrInvalidStrategy, strategy, StrategyNames())
	}

	ordered := make([]draft.Pick, len(picks))
	copy(ordered, picks)
	draft.SortByOverall(ordered)

	seen := make(map[int64]int, len(ordered))
	for _, pick := range ordered {
		if prev, ok := seen[pick.Player.ID]; ok {
			return nil, fmt.Errorf("%w: player=%d picks=%d,%d", ErrDuplicatePlayer, pick.Player.ID, prev, pick.Overall)
		}
		seen[pick.Player.ID] = pick.Overall

		if err := checkComplete(pick, strategy, opts.Missing); err != nil {
			return nil, err
		}
	}

	var baselines map[player.Group]float64
	if strategy == StrategyVOR {
		baselines = replacementLevels(ordered)
	}

	out := make([]Ranked, 0, len(ordered))
	for _, pick := range ordered {
		out = append(out, Ranked{
			Pick:  pick,
			Score: score(pick.Player, strategy, opts, baselines),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	for i := range out {
		out[i].RedraftPick = i + 1
	}

	return out, nil
}

// Redraft ranks the whole draft and builds the comparison views for the first
// opts.Rounds rounds.
func Redraft(picks []draft.Pick, strategy Strategy, opts Options) (Result, error) {
	if opts.Rounds < 0 {
		return Result{}, fmt.Errorf("%w: got %d", draft.ErrInvalidRounds, opts.Rounds)
	}

	ranked, err := Rank(picks, strategy, opts)
	if err != nil {
		return Result{}, err
	}

	ordered := make([]draft.Pick, len(picks))
	copy(ordered, picks)
	draft.SortByOverall(ordered)

	display, err := draft.Truncate(ordered, opts.Rounds, opts.LeagueSize)
	if err != nil {
		return Result{}, err
	}

	byPlayer := make(map[int64]Ranked, len(ranked))
	for _, item := range ranked {
		byPlayer[item.Pick.Player.ID] = item
	}

	comparisons := make([]Comparison, 0, len(display))
	slots := make([]Slot, 0, len(display))
	for i, pick := range display {
		item := byPlayer[pick.Player.ID]
		comparison := Comparison{
			Pick:        pick,
			RedraftPick: item.RedraftPick,
			Score:       item.Score,
		}
		comparisons = append(comparisons, comparison)
		slots = append(slots, Slot{
			Actual:      comparison,
			Recommended: ranked[i],
		})
	}

	return Result{
		Strategy:    strategy,
		Name:        strategy.Name(opts),
		Description: strategy.Description(opts),
		Rounds:      opts.Rounds,
		Ranked:      ranked,
		Comparisons: comparisons,
		Slots:       slots,
	}, nil
}

// Steals returns up to n displayed picks that outperformed their slot, biggest
// gain first.
func (r Result) Steals(n int) []Comparison {
	return topDifferences(r.Comparisons, n, func(d int) bool { return d > 0 }, func(a, b int) bool { return a > b })
}

// Busts returns up to n displayed picks that underperformed their slot, biggest
// drop first.
func (r Result) Busts(n int) []Comparison {
	return topDifferences(r.Comparisons, n, func(d int) bool { return d < 0 }, func(a, b int) bool { return a < b })
}

func topDifferences(items []Comparison, n int, keep func(int) bool, less func(a, b int) bool) []Comparison {
	out := make([]Comparison, 0, len(items))
	for _, item := range items {
		if keep(item.Difference()) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Difference(), out[j].Difference())
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func checkComplete(pick draft.Pick, strategy Strategy, policy MissingDataPolicy) error {
	if policy != MissingFails {
		return nil
	}
	if !pick.Player.HasPoints() {
		return fmt.Errorf("%w: player %q (pick %d) has no season points", ErrIncompleteData, pick.Player.Name, pick.Overall)
	}
	if strategy.needsPosition() && !pick.Player.Position.Known() {
		return fmt.Errorf("%w: player %q (pick %d) has no position", ErrIncompleteData, pick.Player.Name, pick.Overall)
	}
	return nil
}

func score(p player.Player, strategy Strategy, opts Options, baselines map[player.Group]float64) float64 {
	points := p.PointsOrZero()
	switch strategy {
	case StrategyAdjusted:
		if p.Position == player.PositionGoalie {
			return points * opts.goalieMultiplier()
		}
		return points
	case StrategyVOR:
		return points - baselines[p.Position.Group()]
	default:
		return points
	}
}

// replacementLevels computes the median points of each position group across
// the full drafted pool.
func replacementLevels(picks []draft.Pick) map[player.Group]float64 {
	byGroup := make(map[player.Group][]float64, 4)
	for _, pick := range picks {
		group := pick.Player.Position.Group()
		byGroup[group] = append(byGroup[group], pick.Player.PointsOrZero())
	}

	out := make(map[player.Group]float64, len(byGroup))
	for group, points := range byGroup {
		sort.Float64s(points)
		out[group] = stat.Quantile(0.5, stat.Empirical, points, nil)
	}
	return out
}
