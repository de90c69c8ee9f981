package item

import (
	"sort"
	"strings"

	"riftbook/api/filters"
	"riftbook/pkg/models/item"
)

// statFacets maps the stat facet keys onto the stats block mods.
var statFacets = map[string]string{
	"hasAD":        item.StatAttackDamage,
	"hasAP":        item.StatAbilityPower,
	"hasArmor":     item.StatArmor,
	"hasMR":        item.StatMagicResist,
	"hasHealth":    item.StatHealth,
	"hasMana":      item.StatMana,
	"hasAS":        item.StatAttackSpeed,
	"hasCrit":      item.StatCritChance,
	"hasLifeSteal": item.StatLifeSteal,
}

// ApplyFilters returns the items matching every selected facet.
func ApplyFilters(items []item.Item, criteria *filters.ItemCriteria) []item.Item {
	matched := make([]item.Item, 0, len(items))

	for i := range items {
		if matchesItem(&items[i], criteria) {
			matched = append(matched, items[i])
		}
	}

	return matched
}

func matchesItem(entry *item.Item, criteria *filters.ItemCriteria) bool {
	if criteria.Search != "" {
		needle := strings.ToLower(criteria.Search)
		name := strings.ToLower(entry.Name)
		plaintext := strings.ToLower(entry.Plaintext)
		if !strings.Contains(name, needle) && !strings.Contains(plaintext, needle) {
			return false
		}
	}

	if criteria.Tag != filters.FacetAll && !hasTag(entry.Tags, criteria.Tag) {
		return false
	}

	if criteria.Price != filters.FacetAll &&
		priceBucket(entry.Gold.Total) != criteria.Price {
		return false
	}

	if criteria.Stat != filters.FacetAll {
		mod, known := statFacets[criteria.Stat]
		if !known || entry.Stat(mod) == 0 {
			return false
		}
	}

	if criteria.Map != filters.FacetAll && !entry.Maps[criteria.Map] {
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

// priceBucket classifies a total gold cost into the shop facets.
// The cheap bucket is strictly below 1000.
func priceBucket(total int) string {
	switch {
	case total < 1000:
		return "cheap"
	case total < 2500:
		return "medium"
	default:
		return "expensive"
	}
}

// SortItems orders the items in place by the selected comparator.
// Equal items keep their incoming relative order.
func SortItems(items []item.Item, sortKey string) {
	var less func(a, b *item.Item) bool

	switch sortKey {
	case filters.SortNameAsc:
		less = func(a, b *item.Item) bool { return a.Name < b.Name }
	case filters.SortNameDesc:
		less = func(a, b *item.Item) bool { return a.Name > b.Name }
	case filters.SortPriceDesc:
		less = func(a, b *item.Item) bool { return a.Gold.Total > b.Gold.Total }
	case filters.SortAdAsc:
		less = func(a, b *item.Item) bool {
			return a.Stat(item.StatAttackDamage) < b.Stat(item.StatAttackDamage)
		}
	case filters.SortAdDesc:
		less = func(a, b *item.Item) bool {
			return a.Stat(item.StatAttackDamage) > b.Stat(item.StatAttackDamage)
		}
	case filters.SortApAsc:
		less = func(a, b *item.Item) bool {
			return a.Stat(item.StatAbilityPower) < b.Stat(item.StatAbilityPower)
		}
	case filters.SortApDesc:
		less = func(a, b *item.Item) bool {
			return a.Stat(item.StatAbilityPower) > b.Stat(item.StatAbilityPower)
		}
	default:
		less = func(a, b *item.Item) bool { return a.Gold.Total < b.Gold.Total }
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(&items[i], &items[j])
	})
}
