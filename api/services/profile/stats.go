package profile

import (
	"math"
	"sort"

	"riftbook/api/dto"
)

// Amount of champion aggregates kept in the recent stats.
const topChampionCount = 5

// KDA computes the kill participation ratio of one game. A deathless game
// scores the kill and assist sum boosted by 1.2 instead of dividing by zero.
func KDA(kills, deaths, assists int) float64 {
	var value float64
	if deaths == 0 {
		value = float64(kills+assists) * 1.2
	} else {
		value = float64(kills+assists) / float64(deaths)
	}
	return round2(value)
}

// WinRate is the win percentage of a window, zero for an empty window.
func WinRate(wins, games int) float64 {
	if games == 0 {
		return 0
	}
	return round1(float64(wins) / float64(games) * 100)
}

// ComputeRecentStats aggregates the recent match window. Returns nil for an
// empty window so callers can tell "no data" apart from all-zero stats.
func ComputeRecentStats(previews []dto.MatchPreview) *dto.RecentStats {
	if len(previews) == 0 {
		return nil
	}

	type championBucket struct {
		games   int
		wins    int
		kills   int
		deaths  int
		assists int
	}
	type laneBucket struct {
		games int
		wins  int
	}

	championOrder := make([]string, 0, len(previews))
	champions := make(map[string]*championBucket)
	laneOrder := make([]string, 0, 5)
	lanes := make(map[string]*laneBucket)

	wins := 0
	for _, preview := range previews {
		if preview.Win {
			wins++
		}

		bucket, seen := champions[preview.ChampionName]
		if !seen {
			bucket = &championBucket{}
			champions[preview.ChampionName] = bucket
			championOrder = append(championOrder, preview.ChampionName)
		}
		bucket.games++
		bucket.kills += preview.Kills
		bucket.deaths += preview.Deaths
		bucket.assists += preview.Assists
		if preview.Win {
			bucket.wins++
		}

		if preview.Lane == "" || preview.Lane == "Invalid" {
			continue
		}
		lb, seen := lanes[preview.Lane]
		if !seen {
			lb = &laneBucket{}
			lanes[preview.Lane] = lb
			laneOrder = append(laneOrder, preview.Lane)
		}
		lb.games++
		if preview.Win {
			lb.wins++
		}
	}

	topChampions := make([]dto.ChampionAggregate, 0, len(championOrder))
	for _, name := range championOrder {
		bucket := champions[name]

		// Aggregate KDA floors deaths at one so a deathless streak does
		// not dwarf every other entry.
		deaths := bucket.deaths
		if deaths == 0 {
			deaths = 1
		}

		topChampions = append(topChampions, dto.ChampionAggregate{
			Name:    name,
			Games:   bucket.games,
			Wins:    bucket.wins,
			WinRate: WinRate(bucket.wins, bucket.games),
			KDA:     round2(float64(bucket.kills+bucket.assists) / float64(deaths)),
		})
	}

	// Stable so champions tied on games keep first encountered order.
	sort.SliceStable(topChampions, func(i, j int) bool {
		return topChampions[i].Games > topChampions[j].Games
	})
	if len(topChampions) > topChampionCount {
		topChampions = topChampions[:topChampionCount]
	}

	laneDistribution := make([]dto.LaneAggregate, 0, len(laneOrder))
	for _, name := range laneOrder {
		bucket := lanes[name]
		laneDistribution = append(laneDistribution, dto.LaneAggregate{
			Lane:       name,
			Games:      bucket.games,
			Percentage: round1(float64(bucket.games) / float64(len(previews)) * 100),
			Wins:       bucket.wins,
			WinRate:    WinRate(bucket.wins, bucket.games),
		})
	}
	sort.SliceStable(laneDistribution, func(i, j int) bool {
		return laneDistribution[i].Games > laneDistribution[j].Games
	})

	return &dto.RecentStats{
		TotalGames:       len(previews),
		Wins:             wins,
		WinRate:          WinRate(wins, len(previews)),
		TopChampions:     topChampions,
		LaneDistribution: laneDistribution,
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
