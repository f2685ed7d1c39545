package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
)

type RedraftService struct {
	provider LeagueProvider
	logger   *logging.Logger
}

func NewRedraftService(provider LeagueProvider, logger *logging.Logger) *RedraftService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedraftService{
		provider: provider,
		logger:   logger,
	}
}

type RedraftInput struct {
	Strategy string
	// Rounds limits the comparison to the first N rounds; 0 compares every pick.
	Rounds int
	// Strict fails on players missing season data instead of scoring them as 0.
	Strict           bool
	GoalieMultiplier float64
}

type RedraftView struct {
	Board  DraftBoard
	Result ranking.Result
}

// Compare ranks every drafted player under the chosen strategy and lines the
// ranking up against the original draft. Arguments are validated before the
// provider is called.
func (s *RedraftService) Compare(ctx context.Context, input RedraftInput) (RedraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RedraftService.Compare")
	defer span.End()

	strategy, err := ranking.ParseStrategy(input.Strategy)
	if err != nil {
		return RedraftView{}, crerr.Mark(err, ErrInvalidInput)
	}
	if err := validateRounds(input.Rounds); err != nil {
		return RedraftView{}, err
	}

	board, err := s.provider.FetchDraft(ctx)
	if err != nil {
		return RedraftView{}, crerr.Wrap(err, "fetch draft")
	}

	opts := ranking.Options{
		Rounds:           input.Rounds,
		LeagueSize:       board.LeagueSize,
		GoalieMultiplier: input.GoalieMultiplier,
		Missing:          ranking.MissingAsZero,
	}
	if input.Strict {
		opts.Missing = ranking.MissingFails
	}

	result, err := ranking.Redraft(board.Picks, strategy, opts)
	if err != nil {
		return RedraftView{}, crerr.Wrapf(err, "redraft with strategy %s", strategy)
	}

	s.logger.DebugContext(ctx, "redraft computed",
		"strategy", string(strategy),
		"missing_policy", opts.Missing.String(),
		"ranked", len(result.Ranked),
		"displayed", len(result.Comparisons),
	)
	return RedraftView{Board: board, Result: result}, nil
}
