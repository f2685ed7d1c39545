package ranking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStrategy = errors.New("invalid ranking strategy")
	ErrIncompleteData  = errors.New("incomplete player data")
	ErrDuplicatePlayer = errors.New("duplicate player in draft")
)

// DefaultGoalieMultiplier de-prioritizes goalies, who naturally score more points.
const DefaultGoalieMultiplier = 0.75

// Strategy selects how a player's season maps to a redraft score.
type Strategy string

const (
	StrategyVOR      Strategy = "vor"
	StrategyTotal    Strategy = "total"
	StrategyAdjusted Strategy = "adjusted"
)

// DefaultStrategy is used when the caller does not pick one.
const DefaultStrategy = StrategyVOR

var AllStrategies = []Strategy{StrategyVOR, StrategyTotal, StrategyAdjusted}

var strategyAliases = map[string]Strategy{
	"vor":                    StrategyVOR,
	"value-over-replacement": StrategyVOR,
	"total":                  StrategyTotal,
	"total-points":           StrategyTotal,
	"adjusted":               StrategyAdjusted,
	"adjusted-value":         StrategyAdjusted,
}

func ParseStrategy(raw string) (Strategy, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DefaultStrategy, nil
	}
	strategy, ok := strategyAliases[value]
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrInvalidStrategy, raw, StrategyNames())
	}
	return strategy, nil
}

// StrategyNames lists the accepted short names, comma separated.
func StrategyNames() string {
	names := make([]string, 0, len(AllStrategies))
	for _, s := range AllStrategies {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func (s Strategy) Valid() bool {
	switch s {
	case StrategyVOR, StrategyTotal, StrategyAdjusted:
		return true
	default:
		return false
	}
}

// Name is the human readable label printed above redraft output.
func (s Strategy) Name(opts Options) string {
	switch s {
	case StrategyVOR:
		return "Value Over Replacement"
	case StrategyTotal:
		return "Total Points"
	case StrategyAdjusted:
		return fmt.Sprintf("Position Adjusted (G x%g)", opts.goalieMultiplier())
	default:
		return string(s)
	}
}

func (s Strategy) Description(opts Options) string {
	switch s {
	case StrategyVOR:
		return "Points above the median drafted player in the same position group (F, D, G); rewards scarcity."
	case StrategyTotal:
		return "Total fantasy points scored this season; ignores position scarcity."
	case StrategyAdjusted:
		return fmt.Sprintf("Total fantasy points with goalie points scaled by %g so goalies and skaters compare fairly.", opts.goalieMultiplier())
	default:
		return ""
	}
}

// MissingDataPolicy decides what happens when a player lacks an attribute the
// strategy needs.
type MissingDataPolicy int

const (
	// MissingAsZero scores a player without a season stat line as 0 points and
	// treats an unknown position as its own group with multiplier 1.
	MissingAsZero MissingDataPolicy = iota
	// MissingFails rejects the whole ranking with ErrIncompleteData.
	MissingFails
)

func (p MissingDataPolicy) String() string {
	if p == MissingFails {
		return "fail"
	}
	return "zero"
}

// Options tunes a ranking run. The zero value ranks every pick with default
// multipliers and the zero-default missing data policy.
type Options struct {
	// Rounds limits the displayed views to the first N rounds; 0 shows all.
	Rounds int
	// LeagueSize is the number of teams, used to cap the displayed views.
	LeagueSize       int
	GoalieMultiplier float64
	Missing          MissingDataPolicy
}

func (o Options) goalieMultiplier() float64 {
	if o.GoalieMultiplier <= 0 {
		return DefaultGoalieMultiplier
	}
	return o.GoalieMultiplier
}

func (s Strategy) needsPosition() bool {
	return s == StrategyVOR || s == StrategyAdjusted
}
