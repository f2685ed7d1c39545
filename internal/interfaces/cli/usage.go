package cli

import (
	"fmt"
	"io"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
)

// PrintUsage writes the command reference.
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fantasy-hockey standings")
	fmt.Fprintln(w, "  fantasy-hockey draft [--rounds N]")
	fmt.Fprintln(w, "  fantasy-hockey redraft [--rounds N] [--strategy NAME] [--format table|csv] [--strict] [--goalie-multiplier X]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  standings  league table ordered by rank")
	fmt.Fprintln(w, "  draft      original draft order (all rounds unless --rounds is set)")
	fmt.Fprintln(w, "  redraft    original draft vs. a re-ranking on season results (default command)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --rounds N        rounds to show, N >= 1 (redraft default: 1)")
	fmt.Fprintf(w, "  --strategy NAME   one of %s (default: %s)\n", ranking.StrategyNames(), ranking.DefaultStrategy)
	fmt.Fprintln(w, "  --format FORMAT   table or csv (default: table)")
	fmt.Fprintln(w, "  --strict          fail when a player has no season points or position")
	fmt.Fprintf(w, "  --goalie-multiplier X  goalie weight for the adjusted strategy, 0 < X <= 10 (default: %g)\n", ranking.DefaultGoalieMultiplier)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ESPN_LEAGUE_ID, ESPN_SWID, ESPN_S2 (required), ESPN_YEAR (default 2026)")
}

