package filters

// ChampionQueryParams are the roster listing query parameters.
type ChampionQueryParams struct {
	Search     string `form:"search"`
	Role       string `form:"role"`
	Difficulty string `form:"difficulty"`
	Resource   string `form:"resource"`
	Range      string `form:"range"`
}

// ChampionCriteria is the fully specified champion filter selection.
type ChampionCriteria struct {
	// Search is matched case-insensitively against name and title,
	// empty matches everything.
	Search string

	// Role is a tag facet.
	Role string

	// Difficulty bucket: "1-3", "4-6" or "7-10".
	Difficulty string

	// Resource is the partype facet.
	Resource string

	// Range bucket: "melee", "short", "medium" or "long".
	Range string
}

// NewChampionCriteria builds the criteria from query params, normalizing
// absent facets to the explicit sentinel.
func NewChampionCriteria(qp *ChampionQueryParams) *ChampionCriteria {
	return &ChampionCriteria{
		Search:     qp.Search,
		Role:       orAll(qp.Role),
		Difficulty: orAll(qp.Difficulty),
		Resource:   orAll(qp.Resource),
		Range:      orAll(qp.Range),
	}
}

// ChampionURIParams are the URI params of the champion detail endpoint.
type ChampionURIParams struct {
	ChampionId string `uri:"championId" binding:"required"`
}
