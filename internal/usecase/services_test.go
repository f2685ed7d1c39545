package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/draft"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/player"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/standing"
	providermock "github.com/riskibarqy/fantasy-hockey/internal/mocks/provider"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hockey/internal/usecase"
)

func sampleBoard(rounds, teams int) usecase.DraftBoard {
	picks := make([]draft.Pick, 0, rounds*teams)
	for round := 1; round <= rounds; round++ {
		for slot := 1; slot <= teams; slot++ {
			overall := (round-1)*teams + slot
			picks = append(picks, draft.Pick{
				Round:     round,
				RoundPick: slot,
				Overall:   overall,
				TeamID:    int64(slot),
				TeamName:  fmt.Sprintf("Team %d", slot),
				Player: player.Player{
					ID:       int64(100 + overall),
					Name:     fmt.Sprintf("Player %d", overall),
					Position: player.PositionCenter,
					Points:   player.PointsOf(float64(overall * 3)),
				},
			})
		}
	}
	return usecase.DraftBoard{LeagueID: 1234, Season: 2026, LeagueSize: teams, Picks: picks}
}

func TestStandingsService_List_SortsByRank(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := providermock.NewLeagueProvider(t)
	provider.
		On("FetchStandings", mock.Anything).
		Return([]standing.TeamStanding{
			{TeamID: 1, TeamName: "Third", Rank: 3},
			{TeamID: 2, TeamName: "First", Rank: 1},
			{TeamID: 3, TeamName: "Second", Rank: 2},
		}, nil).
		Once()

	service := usecase.NewStandingsService(provider, logging.NewNop())
	got, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got[0].TeamName != "First" || got[1].TeamName != "Second" || got[2].TeamName != "Third" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestStandingsService_List_PropagatesFetchError(t *testing.T) {
	t.Parallel()

	provider := providermock.NewLeagueProvider(t)
	provider.
		On("FetchStandings", mock.Anything).
		Return(nil, crerr.Wrap(usecase.ErrUnauthorized, "provider status=401")).
		Once()

	service := usecase.NewStandingsService(provider, nil)
	_, err := service.List(context.Background())
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDraftService_List_TruncatesRounds(t *testing.T) {
	t.Parallel()

	provider := providermock.NewLeagueProvider(t)
	provider.On("FetchDraft", mock.Anything).Return(sampleBoard(3, 4), nil).Once()

	service := usecase.NewDraftService(provider, logging.NewNop())
	view, err := service.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(view.Board.Picks) != 4 {
		t.Fatalf("expected 4 picks, got=%d", len(view.Board.Picks))
	}
	if view.Board.Picks[3].Overall != 4 {
		t.Fatalf("unexpected last pick: %+v", view.Board.Picks[3])
	}
}

func TestDraftService_List_AllRoundsByDefault(t *testing.T) {
	t.Parallel()

	provider := providermock.NewLeagueProvider(t)
	provider.On("FetchDraft", mock.Anything).Return(sampleBoard(3, 4), nil).Once()

	service := usecase.NewDraftService(provider, logging.NewNop())
	view, err := service.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(view.Board.Picks) != 12 {
		t.Fatalf("expected 12 picks, got=%d", len(view.Board.Picks))
	}
}

func TestDraftService_List_RejectsNegativeRoundsBeforeFetch(t *testing.T) {
	t.Parallel()

	provider := providermock.NewLeagueProvider(t)
	service := usecase.NewDraftService(provider, logging.NewNop())

	_, err := service.List(context.Background(), -2)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, draft.ErrInvalidRounds) {
		t.Fatalf("expected ErrInvalidRounds, got %v", err)
	}
	provider.AssertNotCalled(t, "FetchDraft", mock.Anything)
}

func TestRedraftService_Compare_RejectsUnknownStrategyBeforeFetch(t *testing.T) {
	t.Parallel()

	provider := providermock.NewLeagueProvider(t)
	service := usecase.NewRedraftService(provider, logging.NewNop())

	_, err := service.Compare(context.Background(), usecase.RedraftInput{Strategy: "hunch", Rounds: 1})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, ranking.ErrInvalidStrategy) {
		t.Fatalf("expected ErrInvalidStrategy, got %v", err)
	}
	provider.AssertNotCalled(t, "FetchDraft", mock.Anything)
}

func TestRedraftService_Compare_OneRound(t *testing.T) {
	t.Parallel()

	provider := providermock.NewLeagueProvider(t)
	provider.On("FetchDraft", mock.Anything).Return(sampleBoard(3, 4), nil).Once()

	service := usecase.NewRedraftService(provider, logging.NewNop())
	view, err := service.Compare(context.Background(), usecase.RedraftInput{Strategy: "total", Rounds: 1})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	result := view.Result
	if len(result.Comparisons) != 4 || len(result.Slots) != 4 {
		t.Fatalf("expected 4 entries per view, got comparisons=%d slots=%d", len(result.Comparisons), len(result.Slots))
	}
	if len(result.Ranked) != 12 {
		t.Fatalf("expected every drafted player ranked, got=%d", len(result.Ranked))
	}
	// Points grow with pick number, so the last pick redrafts first.
	if result.Slots[0].Recommended.Pick.Overall != 12 {
		t.Fatalf("unexpected first recommendation: %+v", result.Slots[0].Recommended)
	}
	if result.Strategy != ranking.StrategyTotal {
		t.Fatalf("unexpected strategy: %s", result.Strategy)
	}
}

func TestRedraftService_Compare_StrictFailsOnMissingPoints(t *testing.T) {
	t.Parallel()

	board := sampleBoard(1, 2)
	board.Picks[1].Player.Points = nil

	provider := providermock.NewLeagueProvider(t)
	provider.On("FetchDraft", mock.Anything).Return(board, nil).Twice()

	service := usecase.NewRedraftService(provider, logging.NewNop())
	_, err := service.Compare(context.Background(), usecase.RedraftInput{Strategy: "vor", Strict: true})
	if !errors.Is(err, ranking.ErrIncompleteData) {
		t.Fatalf("expected ErrIncompleteData, got %v", err)
	}
	if errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("incomplete data must not be reported as invalid input: %v", err)
	}

	view, err := service.Compare(context.Background(), usecase.RedraftInput{Strategy: "vor"})
	if err != nil {
		t.Fatalf("Compare with default policy error: %v", err)
	}
	if len(view.Result.Ranked) != 2 {
		t.Fatalf("expected both players ranked, got=%d", len(view.Result.Ranked))
	}
}
