package riot

import (
	"time"

	"github.com/goccy/go-json"
)

// Account is the return of an account search by Riot ID.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the return of the platform summoner endpoint.
type Summoner struct {
	Id            string `json:"id"`
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry is a single ranked standing for one queue.
// Tier, rank and queue type may be absent for provisional entries.
type LeagueEntry struct {
	Puuid        string  `json:"puuid"`
	QueueType    *string `json:"queueType,omitempty"`
	Tier         *string `json:"tier,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	HotStreak    bool    `json:"hotStreak"`
	FreshBlood   bool    `json:"freshBlood"`
}

// RiotTime handles the conversion of the millisecond timestamps from riot.
type RiotTime time.Time

func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

func (rt RiotTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(rt).UnixMilli())
}

// Time returns the underlying time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// Match is the return of the match_v5 endpoint.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata carries the globally unique match identifier.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata and the participant list.
type MatchInfo struct {
	GameCreation RiotTime      `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"`
	GameEndedAt  RiotTime      `json:"gameEndTimestamp"`
	GameMode     string        `json:"gameMode"`
	GameVersion  string        `json:"gameVersion"`
	PlatformId   string        `json:"platformId"`
	QueueId      int           `json:"queueId"`
	Participants []MatchPlayer `json:"participants"`
	Teams        []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats of a single participant.
type MatchPlayer struct {
	Puuid              string `json:"puuid"`
	RiotIdGameName     string `json:"riotIdGameName"`
	RiotIdTagline      string `json:"riotIdTagline"`
	ChampionId         int    `json:"championId"`
	ChampionName       string `json:"championName"`
	ChampionLevel      int    `json:"champLevel"`
	TeamId             int    `json:"teamId"`
	TeamPosition       string `json:"teamPosition"`
	IndividualPosition string `json:"individualPosition"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	GoldEarned         int    `json:"goldEarned"`
	TotalMinionsKilled int    `json:"totalMinionsKilled"`
	VisionScore        int    `json:"visionScore"`
	Item0              int    `json:"item0"`
	Item1              int    `json:"item1"`
	Item2              int    `json:"item2"`
	Item3              int    `json:"item3"`
	Item4              int    `json:"item4"`
	Item5              int    `json:"item5"`
	Item6              int    `json:"item6"`
	Summoner1Id        int    `json:"summoner1Id"`
	Summoner2Id        int    `json:"summoner2Id"`
	Win                bool   `json:"win"`
}

// Items returns the item loadout as a slice.
func (p MatchPlayer) Items() []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// TeamInfo contains the bans, id and outcome of one team.
type TeamInfo struct {
	TeamId int   `json:"teamId"`
	Win    bool  `json:"win"`
	Bans   []Ban `json:"bans"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// LiveGame is a snapshot of an in progress match from the spectator endpoint.
type LiveGame struct {
	GameId            int64                 `json:"gameId"`
	GameMode          string                `json:"gameMode"`
	GameQueueConfigId int                   `json:"gameQueueConfigId"`
	GameStartTime     RiotTime              `json:"gameStartTime"`
	GameLength        int                   `json:"gameLength"`
	PlatformId        string                `json:"platformId"`
	Participants      []LiveGameParticipant `json:"participants"`
	BannedChampions   []LiveGameBan         `json:"bannedChampions"`
}

// LiveGameParticipant is one player of an in progress match.
type LiveGameParticipant struct {
	Puuid      string `json:"puuid"`
	RiotId     string `json:"riotId"`
	ChampionId int64  `json:"championId"`
	TeamId     int64  `json:"teamId"`
	Spell1Id   int64  `json:"spell1Id"`
	Spell2Id   int64  `json:"spell2Id"`
	Bot        bool   `json:"bot"`
}

// LiveGameBan is one ban of an in progress match.
type LiveGameBan struct {
	ChampionId int64 `json:"championId"`
	TeamId     int64 `json:"teamId"`
	PickTurn   int   `json:"pickTurn"`
}

// MasteryEntry is a single champion mastery standing.
type MasteryEntry struct {
	Puuid                        string   `json:"puuid"`
	ChampionId                   int64    `json:"championId"`
	ChampionLevel                int      `json:"championLevel"`
	ChampionPoints               int      `json:"championPoints"`
	LastPlayTime                 RiotTime `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int      `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int      `json:"championPointsUntilNextLevel"`
}
