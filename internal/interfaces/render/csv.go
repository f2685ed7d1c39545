package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
)

// RedraftRow is one displayed draft slot in the redraft CSV. Pick, RedraftPick
// and Score describe the player actually taken at the slot; the Redraft*
// columns describe the player the ranking puts there.
type RedraftRow struct {
	Pick          int    `csv:"Pick"`
	ActualPlayer  string `csv:"Actual Player"`
	ActualPos     string `csv:"Actual Pos"`
	ActualPoints  Points `csv:"Actual Pts"`
	Team          string `csv:"Team"`
	RedraftPick   int    `csv:"Redraft Pick"`
	Score         Score  `csv:"Score"`
	Diff          Diff   `csv:"Diff"`
	RedraftPlayer string `csv:"Redraft Player"`
	RedraftPos    string `csv:"Redraft Pos"`
	RedraftPoints Points `csv:"Redraft Pts"`
}

// Points is a fantasy point total written with one decimal.
type Points float64

func (p Points) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(p), 'f', 1, 64), nil
}

func (p *Points) UnmarshalCSV(value string) error {
	v, err := parseFloat(value)
	if err != nil {
		return fmt.Errorf("parse points %q: %w", value, err)
	}
	*p = Points(v)
	return nil
}

// Score is a strategy score written with two decimals.
type Score float64

func (s Score) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(s), 'f', 2, 64), nil
}

func (s *Score) UnmarshalCSV(value string) error {
	v, err := parseFloat(value)
	if err != nil {
		return fmt.Errorf("parse score %q: %w", value, err)
	}
	*s = Score(v)
	return nil
}

// Diff is a pick difference always written with its sign.
type Diff int

func (d Diff) MarshalCSV() (string, error) {
	return fmt.Sprintf("%+d", int(d)), nil
}

func (d *Diff) UnmarshalCSV(value string) error {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("parse diff %q: %w", value, err)
	}
	*d = Diff(v)
	return nil
}

// RedraftRows flattens the displayed slots of a result.
func RedraftRows(result ranking.Result) []*RedraftRow {
	rows := make([]*RedraftRow, 0, len(result.Slots))
	for _, slot := range result.Slots {
		actual := slot.Actual.Pick
		best := slot.Recommended.Pick
		rows = append(rows, &RedraftRow{
			Pick:          actual.Overall,
			ActualPlayer:  actual.Player.Name,
			ActualPos:     actual.Player.Position.Abbrev(),
			ActualPoints:  Points(actual.Player.PointsOrZero()),
			Team:          actual.TeamName,
			RedraftPick:   slot.Actual.RedraftPick,
			Score:         Score(slot.Actual.Score),
			Diff:          Diff(slot.Actual.Difference()),
			RedraftPlayer: best.Player.Name,
			RedraftPos:    best.Player.Position.Abbrev(),
			RedraftPoints: Points(best.Player.PointsOrZero()),
		})
	}
	return rows
}

// RedraftCSV writes the header and one row per displayed slot.
func RedraftCSV(w io.Writer, result ranking.Result) error {
	return buffered(w, func(out io.Writer) error {
		return gocsv.Marshal(RedraftRows(result), out)
	})
}

// ParseRedraftCSV reads rows written by RedraftCSV.
func ParseRedraftCSV(r io.Reader) ([]*RedraftRow, error) {
	rows := make([]*RedraftRow, 0)
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse redraft csv: %w", err)
	}
	return rows, nil
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}
