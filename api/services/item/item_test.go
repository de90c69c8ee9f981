package item

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"riftbook/api/filters"
	"riftbook/ddragon"
	"riftbook/pkg/models/item"
	"riftbook/riot/requests"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShop() []item.Item {
	riftOnly := map[string]bool{"11": true}

	return []item.Item{
		{
			ID:        "1036",
			Name:      "Long Sword",
			Plaintext: "Slightly increases Attack Damage",
			Gold:      item.Gold{Total: 350},
			Tags:      []string{"Damage"},
			Stats:     map[string]float64{item.StatAttackDamage: 10},
			Maps:      riftOnly,
		},
		{
			ID:        "1026",
			Name:      "Blasting Wand",
			Plaintext: "Moderately increases Ability Power",
			Gold:      item.Gold{Total: 850},
			Tags:      []string{"SpellDamage"},
			Stats:     map[string]float64{item.StatAbilityPower: 45},
			Maps:      riftOnly,
		},
		{
			ID:    "3057",
			Name:  "Sheen",
			Gold:  item.Gold{Total: 1000},
			Tags:  []string{"Damage", "ManaRegen"},
			Stats: map[string]float64{},
			Maps:  riftOnly,
		},
		{
			ID:        "3031",
			Name:      "Infinity Edge",
			Plaintext: "Massively enhances critical strikes",
			Gold:      item.Gold{Total: 3450},
			Tags:      []string{"Damage", "CriticalStrike"},
			Stats: map[string]float64{
				item.StatAttackDamage: 70,
				item.StatCritChance:   0.25,
			},
			Maps: riftOnly,
		},
		{
			ID:    "2003",
			Name:  "Health Potion",
			Gold:  item.Gold{Total: 50},
			Tags:  []string{"Consumable"},
			Stats: map[string]float64{},
			Maps:  map[string]bool{"11": true, "12": true},
		},
	}
}

func defaultCriteria() *filters.ItemCriteria {
	return filters.NewItemCriteria(&filters.ItemQueryParams{})
}

func names(items []item.Item) []string {
	out := make([]string, 0, len(items))
	for _, entry := range items {
		out = append(out, entry.Name)
	}
	return out
}

func TestApplyFiltersDefaultMatchesEverything(t *testing.T) {
	matched := ApplyFilters(testShop(), defaultCriteria())
	assert.Len(t, matched, 5)
}

func TestApplyFiltersSearchMatchesPlaintext(t *testing.T) {
	criteria := defaultCriteria()
	criteria.Search = "attack damage"

	matched := ApplyFilters(testShop(), criteria)
	require.Len(t, matched, 1)
	assert.Equal(t, "Long Sword", matched[0].Name)
}

func TestApplyFiltersPriceBuckets(t *testing.T) {
	testCases := []struct {
		name   string
		bucket string
		want   []string
	}{
		// Exactly 1000 gold is medium, not cheap.
		{name: "cheap excludes boundary", bucket: "cheap", want: []string{"Long Sword", "Blasting Wand", "Health Potion"}},
		{name: "medium includes boundary", bucket: "medium", want: []string{"Sheen"}},
		{name: "expensive", bucket: "expensive", want: []string{"Infinity Edge"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			criteria := defaultCriteria()
			criteria.Price = tc.bucket

			assert.Equal(t, tc.want, names(ApplyFilters(testShop(), criteria)))
		})
	}
}

func TestApplyFiltersStatFacet(t *testing.T) {
	criteria := defaultCriteria()
	criteria.Stat = "hasAD"

	matched := ApplyFilters(testShop(), criteria)
	assert.Equal(t, []string{"Long Sword", "Infinity Edge"}, names(matched))
}

func TestApplyFiltersUnknownStatFacet(t *testing.T) {
	criteria := defaultCriteria()
	criteria.Stat = "hasTenacity"

	assert.Empty(t, ApplyFilters(testShop(), criteria))
}

func TestApplyFiltersMapFacet(t *testing.T) {
	criteria := defaultCriteria()
	criteria.Map = "12"

	matched := ApplyFilters(testShop(), criteria)
	require.Len(t, matched, 1)
	assert.Equal(t, "Health Potion", matched[0].Name)
}

func TestApplyFiltersCombinesFacets(t *testing.T) {
	criteria := defaultCriteria()
	criteria.Tag = "Damage"
	criteria.Price = "expensive"

	matched := ApplyFilters(testShop(), criteria)
	require.Len(t, matched, 1)
	assert.Equal(t, "Infinity Edge", matched[0].Name)
}

func TestSortItems(t *testing.T) {
	testCases := []struct {
		name    string
		sortKey string
		first   string
		last    string
	}{
		{name: "price ascending", sortKey: filters.SortPriceAsc, first: "Health Potion", last: "Infinity Edge"},
		{name: "price descending", sortKey: filters.SortPriceDesc, first: "Infinity Edge", last: "Health Potion"},
		{name: "name ascending", sortKey: filters.SortNameAsc, first: "Blasting Wand", last: "Sheen"},
		{name: "ad descending", sortKey: filters.SortAdDesc, first: "Infinity Edge", last: "Health Potion"},
		{name: "ap descending", sortKey: filters.SortApDesc, first: "Blasting Wand", last: "Health Potion"},
		{name: "unknown falls back to price ascending", sortKey: "bogus", first: "Health Potion", last: "Infinity Edge"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shop := testShop()
			SortItems(shop, tc.sortKey)

			assert.Equal(t, tc.first, shop[0].Name)
			assert.Equal(t, tc.last, shop[len(shop)-1].Name)
		})
	}
}

func TestListUsesConfiguredDefaultLanguage(t *testing.T) {
	requested := make([]string, 0, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/versions.json" {
			w.Write([]byte(`["16.3.1"]`))
			return
		}
		requested = append(requested, r.URL.Path)
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	loader := ddragon.NewLoader(&ddragon.LoaderDeps{
		Requests: requests.NewClient(&requests.ClientDeps{
			MaxRetries: 1,
			RetryBase:  time.Millisecond,
			Logger:     zerolog.Nop(),
		}),
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})

	service := NewService(ServiceDeps{
		Loader:          loader,
		DefaultLanguage: "pt-BR",
		Logger:          zerolog.Nop(),
	})

	service.List(context.Background(), filters.NewItemCriteria(&filters.ItemQueryParams{}))

	require.NotEmpty(t, requested)
	assert.Equal(t, "/cdn/16.3.1/data/pt_BR/item.json", requested[0])
}

func TestSortItemsStableOnTies(t *testing.T) {
	shop := []item.Item{
		{ID: "1", Name: "B", Gold: item.Gold{Total: 400}},
		{ID: "2", Name: "A", Gold: item.Gold{Total: 400}},
	}

	SortItems(shop, filters.SortPriceAsc)
	assert.Equal(t, "B", shop[0].Name)
	assert.Equal(t, "A", shop[1].Name)
}
