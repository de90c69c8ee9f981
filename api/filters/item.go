package filters

// Sort keys accepted by the item listing.
const (
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortAdAsc     = "ad-asc"
	SortAdDesc    = "ad-desc"
	SortApAsc     = "ap-asc"
	SortApDesc    = "ap-desc"
)

// ItemQueryParams are the item listing query parameters.
type ItemQueryParams struct {
	Search   string `form:"search"`
	Tag      string `form:"tag"`
	Price    string `form:"price"`
	Stat     string `form:"stat"`
	Map      string `form:"map"`
	Sort     string `form:"sort"`
	Language string `form:"lang"`
}

// ItemCriteria is the fully specified item filter selection.
type ItemCriteria struct {
	// Search is matched case-insensitively against name and plaintext.
	Search string

	// Tag is a category facet.
	Tag string

	// Price bucket: "cheap", "medium" or "expensive".
	Price string

	// Stat facet: "hasAD", "hasAP", "hasArmor", "hasMR", "hasHealth",
	// "hasMana", "hasAS", "hasCrit" or "hasLifeSteal".
	Stat string

	// Map is the numeric map id facet.
	Map string

	// Sort selects the comparator.
	Sort string

	// Language of the catalog documents.
	Language string
}

// NewItemCriteria builds the criteria from query params, normalizing absent
// facets to the explicit sentinel. The default presentation is the
// Summoner's Rift shop sorted by ascending price.
func NewItemCriteria(qp *ItemQueryParams) *ItemCriteria {
	sortKey := qp.Sort
	if sortKey == "" {
		sortKey = SortPriceAsc
	}

	mapFacet := qp.Map
	if mapFacet == "" {
		mapFacet = "11"
	}

	return &ItemCriteria{
		Search:   qp.Search,
		Tag:      orAll(qp.Tag),
		Price:    orAll(qp.Price),
		Stat:     orAll(qp.Stat),
		Map:      mapFacet,
		Sort:     sortKey,
		Language: qp.Language,
	}
}
