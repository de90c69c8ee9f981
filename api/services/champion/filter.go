package champion

import (
	"strings"

	"riftbook/api/filters"
	"riftbook/pkg/models/champion"
)

// ApplyFilters returns the champions matching every selected facet.
// Roster order is preserved.
func ApplyFilters(roster []champion.Champion, criteria *filters.ChampionCriteria) []champion.Champion {
	matched := make([]champion.Champion, 0, len(roster))

	for i := range roster {
		if matchesChampion(&roster[i], criteria) {
			matched = append(matched, roster[i])
		}
	}

	return matched
}

func matchesChampion(entry *champion.Champion, criteria *filters.ChampionCriteria) bool {
	if criteria.Search != "" {
		needle := strings.ToLower(criteria.Search)
		name := strings.ToLower(entry.Name)
		title := strings.ToLower(entry.Title)
		if !strings.Contains(name, needle) && !strings.Contains(title, needle) {
			return false
		}
	}

	if criteria.Role != filters.FacetAll && !hasTag(entry.Tags, criteria.Role) {
		return false
	}

	if criteria.Difficulty != filters.FacetAll &&
		!matchesDifficulty(entry.Info.Difficulty, criteria.Difficulty) {
		return false
	}

	if criteria.Resource != filters.FacetAll && entry.Partype != criteria.Resource {
		return false
	}

	if criteria.Range != filters.FacetAll &&
		!matchesRange(entry.Stats.AttackRange, criteria.Range) {
		return false
	}

	return true
}

func hasTag(tags []string, wanted string) bool {
	for _, tag := range tags {
		if tag == wanted {
			return true
		}
	}
	return false
}

// Unrecognized bucket values match everything, the facet never turns into a
// filter that silently hides the whole roster.
func matchesDifficulty(difficulty int, bucket string) bool {
	switch bucket {
	case "1-3":
		return difficulty >= 1 && difficulty <= 3
	case "4-6":
		return difficulty >= 4 && difficulty <= 6
	case "7-10":
		return difficulty >= 7 && difficulty <= 10
	default:
		return true
	}
}

func matchesRange(attackRange float64, bucket string) bool {
	switch bucket {
	case "melee", "short", "medium", "long":
		return rangeBucket(attackRange) == bucket
	default:
		return true
	}
}

// rangeBucket classifies an attack range into the shop facets.
func rangeBucket(attackRange float64) string {
	switch {
	case attackRange < 200:
		return "melee"
	case attackRange < 400:
		return "short"
	case attackRange <= 550:
		return "medium"
	default:
		return "long"
	}
}
