package usecase

import (
	"context"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/draft"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/standing"
)

// LeagueProvider is the fantasy data source the commands read from.
type LeagueProvider interface {
	FetchStandings(ctx context.Context) ([]standing.TeamStanding, error)
	FetchDraft(ctx context.Context) (DraftBoard, error)
}

// DraftBoard is the historical draft of one league season.
type DraftBoard struct {
	LeagueID   int64
	Season     int
	LeagueName string
	LeagueSize int
	Picks      []draft.Pick
}
