package usecase

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/standing"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
)

type StandingsService struct {
	provider LeagueProvider
	logger   *logging.Logger
}

func NewStandingsService(provider LeagueProvider, logger *logging.Logger) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StandingsService{
		provider: provider,
		logger:   logger,
	}
}

// List returns the league table ordered by rank.
func (s *StandingsService) List(ctx context.Context) ([]standing.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.List")
	defer span.End()

	items, err := s.provider.FetchStandings(ctx)
	if err != nil {
		return nil, crerr.Wrap(err, "fetch standings")
	}

	out := make([]standing.TeamStanding, len(items))
	copy(out, items)
	standing.SortByRank(out)

	s.logger.DebugContext(ctx, "standings loaded", "teams", len(out))
	return out, nil
}
