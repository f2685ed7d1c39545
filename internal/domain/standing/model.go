package standing

import (
	"fmt"
	"sort"
)

// TeamStanding represents a fantasy league table row for one team.
type TeamStanding struct {
	TeamID        int64
	TeamName      string
	Abbrev        string
	Owner         string
	Wins          int
	Losses        int
	Ties          int
	Rank          int
	PointsFor     float64
	PointsAgainst float64
}

// Record formats the W-L-T line.
func (s TeamStanding) Record() string {
	return fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Ties)
}

// SortByRank orders rows by rank. Unranked rows (rank <= 0) go last, and equal
// ranks keep their input order.
func SortByRank(items []TeamStanding) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i].Rank, items[j].Rank
		if (left > 0) != (right > 0) {
			return left > 0
		}
		return left < right
	})
}
