package dto

import (
	"time"

	"riftbook/riot"
)

// PlayerProfile is the composite aggregate of one profile load.
// Ranked, live game and mastery are optional enrichments: empty or nil
// values mean the stage degraded, not that the load failed.
type PlayerProfile struct {
	Account  riot.Account        `json:"account"`
	Summoner riot.Summoner       `json:"summoner"`
	Region   string              `json:"region"`
	Ranked   []riot.LeagueEntry  `json:"ranked"`
	Matches  []MatchPreview      `json:"matches"`
	Stats    *RecentStats        `json:"stats"`
	LiveGame *riot.LiveGame      `json:"liveGame"`
	Mastery  []riot.MasteryEntry `json:"mastery"`
}

// MatchPreview is the searched player's view of one completed match.
type MatchPreview struct {
	MatchId      string    `json:"matchId"`
	QueueId      int       `json:"queueId"`
	QueueName    string    `json:"queueName"`
	ChampionId   int       `json:"championId"`
	ChampionName string    `json:"championName"`
	Lane         string    `json:"lane"`
	Kills        int       `json:"kills"`
	Deaths       int       `json:"deaths"`
	Assists      int       `json:"assists"`
	KDA          float64   `json:"kda"`
	Items        []int     `json:"items"`
	Win          bool      `json:"win"`
	Duration     int       `json:"duration"`
	EndedAt      time.Time `json:"endedAt"`
}

// RecentStats are the aggregate facts of the recent match window.
type RecentStats struct {
	TotalGames       int                 `json:"totalGames"`
	Wins             int                 `json:"wins"`
	WinRate          float64             `json:"winRate"`
	TopChampions     []ChampionAggregate `json:"topChampions"`
	LaneDistribution []LaneAggregate     `json:"laneDistribution"`
}

// ChampionAggregate is the per champion slice of the recent window.
type ChampionAggregate struct {
	Name    string  `json:"name"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
	KDA     float64 `json:"kda"`
}

// LaneAggregate is the per lane slice of the recent window.
type LaneAggregate struct {
	Lane       string  `json:"lane"`
	Games      int     `json:"games"`
	Percentage float64 `json:"percentage"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"winRate"`
}

// SearchRecord is one recent search or favorite entry.
type SearchRecord struct {
	RiotId    string    `json:"riotId"`
	Region    string    `json:"region"`
	Timestamp time.Time `json:"timestamp"`
}
