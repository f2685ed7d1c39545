package player

import (
	"fmt"
	"strings"
)

// Position represents hockey position categories reported by the provider.
type Position string

const (
	PositionCenter    Position = "C"
	PositionLeftWing  Position = "LW"
	PositionRightWing Position = "RW"
	PositionDefense   Position = "D"
	PositionGoalie    Position = "G"
	PositionUnknown   Position = ""
)

// Group buckets positions that compete for the same lineup slots.
type Group string

const (
	GroupForward Group = "F"
	GroupDefense Group = "D"
	GroupGoalie  Group = "G"
	GroupUnknown Group = "?"
)

var AllPositions = map[Position]struct{}{
	PositionCenter:    {},
	PositionLeftWing:  {},
	PositionRightWing: {},
	PositionDefense:   {},
	PositionGoalie:    {},
}

func (p Position) Known() bool {
	_, ok := AllPositions[p]
	return ok
}

func (p Position) Group() Group {
	switch p {
	case PositionCenter, PositionLeftWing, PositionRightWing:
		return GroupForward
	case PositionDefense:
		return GroupDefense
	case PositionGoalie:
		return GroupGoalie
	default:
		return GroupUnknown
	}
}

// Abbrev is the single-letter label shown in draft and redraft tables.
func (p Position) Abbrev() string {
	return string(p.Group())
}

// Player is a drafted athlete with the season totals needed for ranking.
// Points is nil when the provider returned no season stat line.
type Player struct {
	ID       int64
	Name     string
	Position Position
	Points   *float64
}

func (p Player) HasPoints() bool {
	return p.Points != nil
}

func (p Player) PointsOrZero() float64 {
	if p.Points == nil {
		return 0
	}
	return *p.Points
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required: id=%d", p.ID)
	}

	return nil
}

// PointsOf returns a pointer to v, convenient for building players in code and tests.
func PointsOf(v float64) *float64 {
	return &v
}
