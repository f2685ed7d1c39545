package espn

type leagueEnvelope struct {
	ID          int64       `json:"id"`
	SeasonID    int         `json:"seasonId"`
	Settings    settings    `json:"settings"`
	Teams       []team      `json:"teams"`
	Members     []member    `json:"members"`
	DraftDetail draftDetail `json:"draftDetail"`
}

type settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type team struct {
	ID                  int64    `json:"id"`
	Abbrev              string   `json:"abbrev"`
	Name                string   `json:"name"`
	Location            string   `json:"location"`
	Nickname            string   `json:"nickname"`
	PrimaryOwner        string   `json:"primaryOwner"`
	Owners              []string `json:"owners"`
	PlayoffSeed         int      `json:"playoffSeed"`
	RankCalculatedFinal int      `json:"rankCalculatedFinal"`
	Record              record   `json:"record"`
}

type record struct {
	Overall recordDetails `json:"overall"`
}

type recordDetails struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type draftDetail struct {
	Drafted    bool        `json:"drafted"`
	InProgress bool        `json:"inProgress"`
	Picks      []draftPick `json:"picks"`
}

type draftPick struct {
	ID                int64 `json:"id"`
	OverallPickNumber int   `json:"overallPickNumber"`
	RoundID           int   `json:"roundId"`
	RoundPickNumber   int   `json:"roundPickNumber"`
	TeamID            int64 `json:"teamId"`
	PlayerID          int64 `json:"playerId"`
}

type playerInfoEnvelope struct {
	Players []playerPoolEntry `json:"players"`
}

type playerPoolEntry struct {
	ID     int64        `json:"id"`
	Player playerRecord `json:"player"`
}

type playerRecord struct {
	ID                int64      `json:"id"`
	FullName          string     `json:"fullName"`
	DefaultPositionID int        `json:"defaultPositionId"`
	Stats             []statLine `json:"stats"`
}

type statLine struct {
	SeasonID        int     `json:"seasonId"`
	ScoringPeriodID int     `json:"scoringPeriodId"`
	StatSourceID    int     `json:"statSourceId"`
	StatSplitTypeID int     `json:"statSplitTypeId"`
	AppliedTotal    float64 `json:"appliedTotal"`
}

// playerFilter is sent as the X-Fantasy-Filter header of kona_player_info.
type playerFilter struct {
	Players playerFilterBody `json:"players"`
}

type playerFilterBody struct {
	FilterIDs filterValues `json:"filterIds"`
	Limit     int          `json:"limit"`
}

type filterValues struct {
	Value []int64 `json:"value"`
}
