package regions

import "strings"

// Region maps a player facing region code to the two Riot hosts that serve it:
// the platform host (summoner, league, spectator, mastery) and the routing
// host (account, match).
type Region struct {
	Name     string
	Platform string
	Routing  string
}

// Table with every supported region, keyed by the upper case code.
var Table = map[string]Region{
	"BR1":   {Name: "Brasil", Platform: "br1", Routing: "americas"},
	"NA1":   {Name: "North America", Platform: "na1", Routing: "americas"},
	"LA1":   {Name: "Latin America North", Platform: "la1", Routing: "americas"},
	"LA2":   {Name: "Latin America South", Platform: "la2", Routing: "americas"},
	"EUW1":  {Name: "Europe West", Platform: "euw1", Routing: "europe"},
	"EUNE1": {Name: "Europe Nordic & East", Platform: "eun1", Routing: "europe"},
	"TR1":   {Name: "Turkey", Platform: "tr1", Routing: "europe"},
	"RU":    {Name: "Russia", Platform: "ru", Routing: "europe"},
	"KR":    {Name: "Korea", Platform: "kr", Routing: "asia"},
	"JP1":   {Name: "Japan", Platform: "jp1", Routing: "asia"},
	"OC1":   {Name: "Oceania", Platform: "oc1", Routing: "sea"},
	"PH2":   {Name: "Philippines", Platform: "ph2", Routing: "sea"},
	"SG2":   {Name: "Singapore", Platform: "sg2", Routing: "sea"},
	"TH2":   {Name: "Thailand", Platform: "th2", Routing: "sea"},
	"TW2":   {Name: "Taiwan", Platform: "tw2", Routing: "sea"},
	"VN2":   {Name: "Vietnam", Platform: "vn2", Routing: "sea"},
}

// Get resolves a region code, accepting any casing.
func Get(code string) (Region, bool) {
	region, ok := Table[strings.ToUpper(code)]
	return region, ok
}
