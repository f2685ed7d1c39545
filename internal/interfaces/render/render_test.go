package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/draft"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/player"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/standing"
)

func testPick(round, overall int, team, name string, pos player.Position, points float64) draft.Pick {
	return draft.Pick{
		Round:    round,
		Overall:  overall,
		TeamName: team,
		Player: player.Player{
			ID:       int64(overall),
			Name:     name,
			Position: pos,
			Points:   player.PointsOf(points),
		},
	}
}

func sampleResult(t *testing.T) ranking.Result {
	t.Helper()

	picks := []draft.Pick{
		testPick(1, 1, "X", "A", player.PositionCenter, 10),
		testPick(1, 2, "Y", "B", player.PositionGoalie, 50),
		testPick(2, 3, "Y", "C", player.PositionDefense, 30),
		testPick(2, 4, "X", "D", player.PositionCenter, 5),
	}
	result, err := ranking.Redraft(picks, ranking.StrategyTotal, ranking.Options{Rounds: 1, LeagueSize: 2})
	require.NoError(t, err)
	return result
}

func TestStandings_TruncatesLongNames(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := Standings(&out, []standing.TeamStanding{
		{TeamName: "Short", Wins: 3, Losses: 1, Ties: 0, Rank: 1},
		{TeamName: strings.Repeat("L", 40), Wins: 1, Losses: 3, Ties: 0},
	})
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "Rank")
	require.Contains(t, text, "3-1-0")
	require.Contains(t, text, strings.Repeat("L", 28)+"…")
	require.NotContains(t, text, strings.Repeat("L", 29))
}

func TestDraft_TitleAndEmpty(t *testing.T) {
	t.Parallel()

	var empty bytes.Buffer
	require.NoError(t, Draft(&empty, nil, 0))
	require.Equal(t, "No draft data available.\n", empty.String())

	var out bytes.Buffer
	picks := []draft.Pick{testPick(1, 1, "X", "A", player.PositionGoalie, 12.34)}
	require.NoError(t, Draft(&out, picks, 3))
	require.True(t, strings.HasPrefix(out.String(), "Draft Order (Rounds 1-3)\n"))
	require.Contains(t, out.String(), "12.3")
}

func TestRoundLabel(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "All Rounds", 1: "Round 1", 4: "Rounds 1-4"}
	for rounds, want := range cases {
		if got := RoundLabel(rounds); got != want {
			t.Fatalf("RoundLabel(%d)=%q want %q", rounds, got, want)
		}
	}
}

func TestRedraft_WritesComparisonAndHighlights(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Redraft(&out, sampleResult(t)))

	text := out.String()
	require.Contains(t, text, "REDRAFT ANALYSIS (Round 1)")
	require.Contains(t, text, "Algorithm: Total Points")
	require.Contains(t, text, "BIGGEST STEALS")
	require.Contains(t, text, "B (Y): picked 2, should have been 1 (+1)")
	require.Contains(t, text, "BIGGEST BUSTS")
	require.Contains(t, text, "A (X): picked 1, should have been 3 (-2)")
	require.NotContains(t, text, "D (X)")
}

func TestRedraftCSV_Layout(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, RedraftCSV(&out, sampleResult(t)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Pick,Actual Player,Actual Pos,Actual Pts,Team,Redraft Pick,Score,Diff,Redraft Player,Redraft Pos,Redraft Pts", lines[0])
	require.Equal(t, "1,A,F,10.0,X,3,10.00,-2,B,G,50.0", lines[1])
	require.Equal(t, "2,B,G,50.0,Y,1,50.00,+1,C,D,30.0", lines[2])
}

func TestRedraftCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	result := sampleResult(t)
	var out bytes.Buffer
	require.NoError(t, RedraftCSV(&out, result))

	rows, err := ParseRedraftCSV(&out)
	require.NoError(t, err)
	require.Len(t, rows, len(result.Comparisons))
	for i, c := range result.Comparisons {
		require.Equal(t, c.Pick.Overall, rows[i].Pick)
		require.Equal(t, c.RedraftPick, rows[i].RedraftPick)
		require.InDelta(t, c.Score, float64(rows[i].Score), 0.005)
		require.Equal(t, c.Difference(), int(rows[i].Diff))
	}
}

func TestDiff_ZeroKeepsSign(t *testing.T) {
	t.Parallel()

	got, err := Diff(0).MarshalCSV()
	require.NoError(t, err)
	require.Equal(t, "+0", got)

	var d Diff
	require.NoError(t, d.UnmarshalCSV("+7"))
	require.Equal(t, Diff(7), d)
	require.Error(t, d.UnmarshalCSV("seven"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestBuffered_ReportsWriteFailure(t *testing.T) {
	t.Parallel()

	err := Standings(failingWriter{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "write output")
}
