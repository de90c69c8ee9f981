package dto

// ExtremalStat names the entry holding a running maximum.
type ExtremalStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// RoleCount is a tag occurrence count.
type RoleCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RosterStats are the aggregate facts of the loaded champion roster.
type RosterStats struct {
	Total               int            `json:"total"`
	AverageDifficulty   float64        `json:"averageDifficulty"`
	MostCommonRole      RoleCount      `json:"mostCommonRole"`
	HighestHP           ExtremalStat   `json:"highestHp"`
	HighestAttackDamage ExtremalStat   `json:"highestAttackDamage"`
	RoleCount           map[string]int `json:"roleCount"`
}

// ChampionFacets enumerate the distinct filterable dimensions of the roster.
type ChampionFacets struct {
	Roles     []string `json:"roles"`
	Resources []string `json:"resources"`
}

// ItemFacets enumerate the distinct filterable dimensions of the shop.
type ItemFacets struct {
	Tags []string `json:"tags"`
}
