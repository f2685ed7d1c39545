package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/draft"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/player"
	"github.com/riskibarqy/fantasy-hockey/internal/domain/standing"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hockey/internal/usecase"
)

const (
	defaultBaseURL  = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fhl"
	maxResponseSize = 6 << 20
	unknownTeamName = "Unknown"
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	LeagueID   int64
	Season     int
	SWID       string
	S2         string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client reads one league season from the ESPN fantasy hockey API. Every
// request is sent once; there is no retry or caching layer.
type Client struct {
	httpClient *http.Client
	baseURL    string
	leagueID   int64
	season     int
	swid       string
	s2         string
	logger     *logging.Logger
}

var _ usecase.LeagueProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		leagueID:   cfg.LeagueID,
		season:     cfg.Season,
		swid:       strings.TrimSpace(cfg.SWID),
		s2:         strings.TrimSpace(cfg.S2),
		logger:     logger,
	}
}

// FetchStandings returns every team of the league with its overall record.
func (c *Client) FetchStandings(ctx context.Context) ([]standing.TeamStanding, error) {
	var league leagueEnvelope
	if err := c.doJSON(ctx, []string{"mTeam", "mStandings"}, nil, &league); err != nil {
		return nil, fmt.Errorf("fetch standings league_id=%d season=%d: %w", c.leagueID, c.season, err)
	}

	return mapStandings(league), nil
}

// FetchDraft returns the league draft with season points for every drafted player.
func (c *Client) FetchDraft(ctx context.Context) (usecase.DraftBoard, error) {
	var league leagueEnvelope
	if err := c.doJSON(ctx, []string{"mDraftDetail", "mTeam", "mSettings"}, nil, &league); err != nil {
		return usecase.DraftBoard{}, fmt.Errorf("fetch draft league_id=%d season=%d: %w", c.leagueID, c.season, err)
	}

	playerIDs := draftedPlayerIDs(league.DraftDetail.Picks)
	var players playerInfoEnvelope
	if len(playerIDs) > 0 {
		filter, err := sonic.MarshalString(playerFilter{
			Players: playerFilterBody{
				FilterIDs: filterValues{Value: playerIDs},
				Limit:     len(playerIDs),
			},
		})
		if err != nil {
			return usecase.DraftBoard{}, fmt.Errorf("encode player filter: %w", err)
		}

		headers := map[string]string{"X-Fantasy-Filter": filter}
		if err := c.doJSON(ctx, []string{"kona_player_info"}, headers, &players); err != nil {
			return usecase.DraftBoard{}, fmt.Errorf("fetch drafted players league_id=%d count=%d: %w", c.leagueID, len(playerIDs), err)
		}
	}

	board, dropped := mapDraftBoard(league, players.Players, c.leagueID, c.season)
	if dropped > 0 {
		c.logger.WarnContext(ctx, "dropped malformed draft picks", "league_id", c.leagueID, "dropped", dropped, "kept", len(board.Picks))
	}
	return board, nil
}

func (c *Client) leagueURL(views []string) string {
	values := url.Values{}
	for _, view := range views {
		values.Add("view", view)
	}

	return fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d?%s", c.baseURL, c.season, c.leagueID, values.Encode())
}

func (c *Client) doJSON(ctx context.Context, views []string, headers map[string]string, target any) error {
	fullURL := c.leagueURL(views)
	raw, err := c.executeRequest(ctx, fullURL, headers)
	if err != nil {
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode provider payload: %v", usecase.ErrDependencyUnavailable, err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if c.s2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.s2})
	}
	if c.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, crerr.Wrap(ctxErr, "send request")
		}
		return nil, fmt.Errorf("%w: send request: %s", usecase.ErrDependencyUnavailable, c.sanitize(err.Error()))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %s", usecase.ErrDependencyUnavailable, c.sanitize(err.Error()))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	body := c.sanitize(abbreviateBody(raw))
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrUnauthorized, resp.StatusCode, body)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: league %d season %d: provider status=%d", usecase.ErrNotFound, c.leagueID, c.season, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrDependencyUnavailable, resp.StatusCode, body)
	}
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	for _, secret := range []string{c.s2, c.swid} {
		if secret != "" {
			value = strings.ReplaceAll(value, secret, "REDACTED")
		}
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func draftedPlayerIDs(picks []draftPick) []int64 {
	seen := make(map[int64]struct{}, len(picks))
	out := make([]int64, 0, len(picks))
	for _, item := range picks {
		if item.PlayerID <= 0 {
			continue
		}
		if _, ok := seen[item.PlayerID]; ok {
			continue
		}
		seen[item.PlayerID] = struct{}{}
		out = append(out, item.PlayerID)
	}
	return out
}

func mapStandings(league leagueEnvelope) []standing.TeamStanding {
	owners := make(map[string]string, len(league.Members))
	for _, m := range league.Members {
		owners[m.ID] = memberName(m)
	}

	out := make([]standing.TeamStanding, 0, len(league.Teams))
	for _, item := range league.Teams {
		rank := item.RankCalculatedFinal
		if rank <= 0 {
			rank = item.PlayoffSeed
		}
		out = append(out, standing.TeamStanding{
			TeamID:        item.ID,
			TeamName:      teamName(item),
			Abbrev:        item.Abbrev,
			Owner:         teamOwner(item, owners),
			Wins:          item.Record.Overall.Wins,
			Losses:        item.Record.Overall.Losses,
			Ties:          item.Record.Overall.Ties,
			Rank:          maxInt(rank, 0),
			PointsFor:     item.Record.Overall.PointsFor,
			PointsAgainst: item.Record.Overall.PointsAgainst,
		})
	}
	return out
}

// mapDraftBoard joins picks with player records. Picks without a player or
// round (keeper placeholders, autopick gaps) are dropped and counted.
func mapDraftBoard(league leagueEnvelope, entries []playerPoolEntry, leagueID int64, season int) (usecase.DraftBoard, int) {
	teamNames := make(map[int64]string, len(league.Teams))
	for _, item := range league.Teams {
		teamNames[item.ID] = teamName(item)
	}

	players := make(map[int64]player.Player, len(entries))
	for _, entry := range entries {
		mapped := mapPlayer(entry, season)
		if mapped.ID > 0 {
			players[mapped.ID] = mapped
		}
	}

	dropped := 0
	picks := make([]draft.Pick, 0, len(league.DraftDetail.Picks))
	for i, item := range league.DraftDetail.Picks {
		if item.PlayerID <= 0 {
			dropped++
			continue
		}
		overall := item.OverallPickNumber
		if overall <= 0 {
			overall = i + 1
		}
		name, ok := teamNames[item.TeamID]
		if !ok || name == "" {
			name = unknownTeamName
		}
		drafted, ok := players[item.PlayerID]
		if !ok {
			drafted = player.Player{ID: item.PlayerID, Name: "Player " + strconv.FormatInt(item.PlayerID, 10)}
		}
		pick := draft.Pick{
			Round:     item.RoundID,
			RoundPick: item.RoundPickNumber,
			Overall:   overall,
			TeamID:    item.TeamID,
			TeamName:  name,
			Player:    drafted,
		}
		if err := pick.Validate(); err != nil {
			dropped++
			continue
		}
		picks = append(picks, pick)
	}
	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Overall < picks[j].Overall })

	leagueSize := league.Settings.Size
	if leagueSize <= 0 {
		leagueSize = len(league.Teams)
	}
	if league.SeasonID > 0 {
		season = league.SeasonID
	}
	if league.ID > 0 {
		leagueID = league.ID
	}

	return usecase.DraftBoard{
		LeagueID:   leagueID,
		Season:     season,
		LeagueName: league.Settings.Name,
		LeagueSize: leagueSize,
		Picks:      picks,
	}, dropped
}

func mapPlayer(entry playerPoolEntry, season int) player.Player {
	id := entry.Player.ID
	if id <= 0 {
		id = entry.ID
	}

	out := player.Player{
		ID:       id,
		Name:     strings.TrimSpace(entry.Player.FullName),
		Position: mapPosition(entry.Player.DefaultPositionID),
	}
	if out.Name == "" {
		out.Name = "Player " + strconv.FormatInt(id, 10)
	}
	for _, line := range entry.Player.Stats {
		if line.SeasonID == season && line.StatSourceID == 0 && line.StatSplitTypeID == 0 {
			out.Points = player.PointsOf(line.AppliedTotal)
			break
		}
	}
	return out
}

func mapPosition(positionID int) player.Position {
	switch positionID {
	case 1:
		return player.PositionCenter
	case 2:
		return player.PositionLeftWing
	case 3:
		return player.PositionRightWing
	case 4:
		return player.PositionDefense
	case 5:
		return player.PositionGoalie
	default:
		return player.PositionUnknown
	}
}

func teamName(item team) string {
	if name := strings.TrimSpace(item.Name); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(item.Location) + " " + strings.TrimSpace(item.Nickname))
}

func teamOwner(item team, owners map[string]string) string {
	if name := owners[item.PrimaryOwner]; name != "" {
		return name
	}
	for _, id := range item.Owners {
		if name := owners[id]; name != "" {
			return name
		}
	}
	if len(item.Owners) > 0 {
		return item.Owners[0]
	}
	return ""
}

func memberName(m member) string {
	if name := strings.TrimSpace(m.DisplayName); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName))
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
