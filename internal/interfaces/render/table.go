package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/draft"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/standing"
)

const (
	maxTeamNameWidth   = 29
	maxPlayerNameWidth = 26
	highlightCount     = 5
	emptyDraftMessage  = "No draft data available."
)

// Standings writes the league table ordered as given.
func Standings(w io.Writer, rows []standing.TeamStanding) error {
	return buffered(w, func(out io.Writer) error {
		fmt.Fprintln(out, "LEAGUE STANDINGS")
		fmt.Fprintln(out)

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Rank\tTeam\tRecord")
		for _, row := range rows {
			rank := "-"
			if row.Rank > 0 {
				rank = strconv.Itoa(row.Rank)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", rank, truncate(row.TeamName, maxTeamNameWidth), row.Record())
		}
		return tw.Flush()
	})
}

// Draft writes the original draft order. rounds is the requested limit and only
// affects the title; 0 means every round.
func Draft(w io.Writer, picks []draft.Pick, rounds int) error {
	return buffered(w, func(out io.Writer) error {
		if len(picks) == 0 {
			fmt.Fprintln(out, emptyDraftMessage)
			return nil
		}

		fmt.Fprintf(out, "Draft Order (%s)\n\n", RoundLabel(rounds))

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Pick\tPlayer\tPos\tPoints\tTeam")
		for _, p := range picks {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%s\n",
				p.Overall,
				truncate(p.Player.Name, maxPlayerNameWidth),
				p.Player.Position.Abbrev(),
				p.Player.PointsOrZero(),
				truncate(p.TeamName, maxTeamNameWidth),
			)
		}
		return tw.Flush()
	})
}

// Redraft writes the side-by-side comparison followed by the biggest steals and busts.
func Redraft(w io.Writer, result ranking.Result) error {
	return buffered(w, func(out io.Writer) error {
		if len(result.Slots) == 0 {
			fmt.Fprintln(out, emptyDraftMessage)
			return nil
		}

		fmt.Fprintf(out, "REDRAFT ANALYSIS (%s)\n", RoundLabel(result.Rounds))
		fmt.Fprintf(out, "Algorithm: %s\n", result.Name)
		if result.Description != "" {
			fmt.Fprintln(out, result.Description)
		}
		fmt.Fprintln(out)

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Pick\tActual Pick\tPos\tPts\tTeam\t|\tRedraft Pick\tPos\tPts\tScore")
		for _, slot := range result.Slots {
			actual := slot.Actual.Pick
			best := slot.Recommended.Pick
			fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%s\t|\t%s\t%s\t%.1f\t%.2f\n",
				actual.Overall,
				truncate(actual.Player.Name, maxPlayerNameWidth),
				actual.Player.Position.Abbrev(),
				actual.Player.PointsOrZero(),
				truncate(actual.TeamName, maxTeamNameWidth),
				truncate(best.Player.Name, maxPlayerNameWidth),
				best.Player.Position.Abbrev(),
				best.Player.PointsOrZero(),
				slot.Recommended.Score,
			)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		writeHighlights(out, "BIGGEST STEALS", result.Steals(highlightCount))
		writeHighlights(out, "BIGGEST BUSTS", result.Busts(highlightCount))
		return nil
	})
}

func writeHighlights(out io.Writer, title string, items []ranking.Comparison) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	if len(items) == 0 {
		fmt.Fprintln(out, "  none")
		return
	}
	for _, c := range items {
		fmt.Fprintf(out, "  %s (%s): picked %d, should have been %d (%+d)\n",
			c.Pick.Player.Name,
			c.Pick.TeamName,
			c.Pick.Overall,
			c.RedraftPick,
			c.Difference(),
		)
	}
}

// RoundLabel names the displayed round window.
func RoundLabel(rounds int) string {
	switch {
	case rounds <= 0:
		return "All Rounds"
	case rounds == 1:
		return "Round 1"
	default:
		return fmt.Sprintf("Rounds 1-%d", rounds)
	}
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return string(runes[:width-1]) + "…"
}

// buffered renders into a pooled buffer so w receives either the whole output
// or nothing.
func buffered(w io.Writer, fill func(out io.Writer) error) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := fill(buf); err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
