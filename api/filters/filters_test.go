package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChampionCriteriaNormalizesAbsentFacets(t *testing.T) {
	criteria := NewChampionCriteria(&ChampionQueryParams{Search: "ahri"})

	assert.Equal(t, "ahri", criteria.Search)
	assert.Equal(t, FacetAll, criteria.Role)
	assert.Equal(t, FacetAll, criteria.Difficulty)
	assert.Equal(t, FacetAll, criteria.Resource)
	assert.Equal(t, FacetAll, criteria.Range)
}

func TestNewChampionCriteriaKeepsExplicitFacets(t *testing.T) {
	criteria := NewChampionCriteria(&ChampionQueryParams{Role: "Mage", Range: "long"})

	assert.Equal(t, "Mage", criteria.Role)
	assert.Equal(t, "long", criteria.Range)
}

func TestNewItemCriteriaDefaults(t *testing.T) {
	criteria := NewItemCriteria(&ItemQueryParams{})

	assert.Equal(t, FacetAll, criteria.Tag)
	assert.Equal(t, FacetAll, criteria.Price)
	assert.Equal(t, FacetAll, criteria.Stat)
	assert.Equal(t, "11", criteria.Map)
	assert.Equal(t, SortPriceAsc, criteria.Sort)
}

func TestNewItemCriteriaExplicitAllSentinel(t *testing.T) {
	criteria := NewItemCriteria(&ItemQueryParams{Tag: "all", Map: "all"})

	assert.Equal(t, FacetAll, criteria.Tag)
	assert.Equal(t, "all", criteria.Map)
}
