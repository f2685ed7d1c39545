package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/draft"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
)

type DraftService struct {
	provider LeagueProvider
	logger   *logging.Logger
}

func NewDraftService(provider LeagueProvider, logger *logging.Logger) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftService{
		provider: provider,
		logger:   logger,
	}
}

// DraftView is the original draft order, limited to the requested rounds.
type DraftView struct {
	Board  DraftBoard
	Rounds int
}

// List returns the historical draft in pick order. rounds == 0 returns every
// round.
func (s *DraftService) List(ctx context.Context, rounds int) (DraftView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.List")
	defer span.End()

	if err := validateRounds(rounds); err != nil {
		return DraftView{}, err
	}

	board, err := s.provider.FetchDraft(ctx)
	if err != nil {
		return DraftView{}, crerr.Wrap(err, "fetch draft")
	}

	picks := make([]draft.Pick, len(board.Picks))
	copy(picks, board.Picks)
	draft.SortByOverall(picks)

	picks, err = draft.Truncate(picks, rounds, board.LeagueSize)
	if err != nil {
		return DraftView{}, crerr.Mark(err, ErrInvalidInput)
	}
	board.Picks = picks

	s.logger.DebugContext(ctx, "draft loaded", "picks", len(picks), "league_size", board.LeagueSize, "rounds", rounds)
	return DraftView{Board: board, Rounds: rounds}, nil
}

func validateRounds(rounds int) error {
	if rounds < 0 {
		return crerr.Mark(crerr.Wrapf(draft.ErrInvalidRounds, "got %d", rounds), ErrInvalidInput)
	}
	return nil
}
