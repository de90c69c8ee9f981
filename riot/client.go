package riot

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"riftbook/riot/requests"
)

// API is the consumer facing surface of the Riot client, extracted so the
// profile aggregator can be tested against a mock.
type API interface {
	GetAccountByRiotID(ctx context.Context, gameName, tagLine, routing string) (*Account, error)
	GetSummonerByPuuid(ctx context.Context, puuid, platform string) (*Summoner, error)
	GetLeagueEntriesByPuuid(ctx context.Context, puuid, platform string) ([]LeagueEntry, error)
	GetMatchIds(ctx context.Context, puuid, routing string, count, start int) ([]string, error)
	GetMatch(ctx context.Context, matchId, routing string) (*Match, error)
	GetActiveGame(ctx context.Context, puuid, platform string) (*LiveGame, error)
	GetChampionMastery(ctx context.Context, puuid, platform string, count int) ([]MasteryEntry, error)
}

// Client is the typed Riot API client built on the retrying request core.
type Client struct {
	req *requests.Client
}

// NewClient creates a riot client.
func NewClient(req *requests.Client) *Client {
	return &Client{req: req}
}

// GetAccountByRiotID resolves the stable player identifier from a
// display name and tag pair on the routing region host.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine, routing string) (*Account, error) {
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		routing, url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.req.GetJSON(ctx, reqUrl, &account, requests.Options{}); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetSummonerByPuuid resolves the profile summary on the platform host.
func (c *Client) GetSummonerByPuuid(ctx context.Context, puuid, platform string) (*Summoner, error) {
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s",
		platform, puuid)

	var summoner Summoner
	if err := c.req.GetJSON(ctx, reqUrl, &summoner, requests.Options{}); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// GetLeagueEntriesByPuuid returns the ranked standings of a player.
// An empty list is a valid answer for unranked players.
func (c *Client) GetLeagueEntriesByPuuid(ctx context.Context, puuid, platform string) ([]LeagueEntry, error) {
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s",
		platform, puuid)

	var entries []LeagueEntry
	if err := c.req.GetJSON(ctx, reqUrl, &entries, requests.Options{}); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetMatchIds returns the most recent match identifiers of a player on the
// routing region host.
func (c *Client) GetMatchIds(ctx context.Context, puuid, routing string, count, start int) ([]string, error) {
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids",
		routing, puuid)

	var matches []string
	err := c.req.GetJSON(ctx, reqUrl, &matches, requests.Options{
		Query: map[string]string{
			"start": strconv.Itoa(start),
			"count": strconv.Itoa(count),
		},
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetMatch returns the full record of a completed match.
func (c *Client) GetMatch(ctx context.Context, matchId, routing string) (*Match, error) {
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s",
		routing, matchId)

	var match Match
	if err := c.req.GetJSON(ctx, reqUrl, &match, requests.Options{}); err != nil {
		return nil, err
	}
	return &match, nil
}

// GetActiveGame returns the live game snapshot of a player.
// A 404 answer means the player is not in game and propagates immediately
// without retries, callers map it with requests.IsNotFound.
func (c *Client) GetActiveGame(ctx context.Context, puuid, platform string) (*LiveGame, error) {
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/spectator/v5/active-games/by-summoner/%s",
		platform, puuid)

	var liveGame LiveGame
	err := c.req.GetJSON(ctx, reqUrl, &liveGame, requests.Options{
		SkipRetryOnNotFound: true,
		MaxRetries:          1,
	})
	if err != nil {
		return nil, err
	}
	return &liveGame, nil
}

// GetChampionMastery returns the top mastery entries of a player.
func (c *Client) GetChampionMastery(ctx context.Context, puuid, platform string, count int) ([]MasteryEntry, error) {
	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top",
		platform, puuid)

	var entries []MasteryEntry
	err := c.req.GetJSON(ctx, reqUrl, &entries, requests.Options{
		Query: map[string]string{"count": strconv.Itoa(count)},
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
