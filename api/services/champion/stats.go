package champion

import (
	"math"

	"riftbook/api/dto"
	"riftbook/pkg/models/champion"
)

// RosterStats computes the aggregate facts of a roster.
// Ties on the extremal stats and the most common role keep the first
// encountered entry, so the output is stable for a stable roster order.
func RosterStats(roster []champion.Champion) *dto.RosterStats {
	stats := &dto.RosterStats{
		Total:     len(roster),
		RoleCount: make(map[string]int),
	}
	if len(roster) == 0 {
		return stats
	}

	difficultySum := 0
	roleOrder := make([]string, 0, 8)

	for i := range roster {
		entry := &roster[i]
		difficultySum += entry.Info.Difficulty

		for _, tag := range entry.Tags {
			if _, seen := stats.RoleCount[tag]; !seen {
				roleOrder = append(roleOrder, tag)
			}
			stats.RoleCount[tag]++
		}

		if entry.Stats.HP > stats.HighestHP.Value {
			stats.HighestHP = dto.ExtremalStat{Name: entry.Name, Value: entry.Stats.HP}
		}
		if entry.Stats.AttackDamage > stats.HighestAttackDamage.Value {
			stats.HighestAttackDamage = dto.ExtremalStat{
				Name:  entry.Name,
				Value: entry.Stats.AttackDamage,
			}
		}
	}

	average := float64(difficultySum) / float64(len(roster))
	stats.AverageDifficulty = math.Round(average*10) / 10

	for _, role := range roleOrder {
		if stats.RoleCount[role] > stats.MostCommonRole.Count {
			stats.MostCommonRole = dto.RoleCount{
				Name:  role,
				Count: stats.RoleCount[role],
			}
		}
	}

	return stats
}
