package champion

import "riftbook/pkg/models/image"

// Champion is a single consolidated roster entry.
// The shape follows the Data Dragon championFull document: ID carries the
// numeric key and NameKey the textual identifier ("Aatrox").
type Champion struct {
	ID      string      `json:"key"`
	NameKey string      `json:"id"`
	Name    string      `json:"name"`
	Title   string      `json:"title"`
	Lore    string      `json:"lore"`
	Tags    []string    `json:"tags"`
	Partype string      `json:"partype"`
	Info    Info        `json:"info"`
	Stats   Stats       `json:"stats"`
	Image   image.Image `json:"image"`
	Spells  []Spell     `json:"spells"`
	Passive Spell       `json:"passive"`
	Skins   []Skin      `json:"skins"`

	AllyTips  []string `json:"allytips"`
	EnemyTips []string `json:"enemytips"`
}

// Info holds the coarse 1-10 ratings of a champion.
type Info struct {
	Attack     int `json:"attack"`
	Defense    int `json:"defense"`
	Magic      int `json:"magic"`
	Difficulty int `json:"difficulty"`
}

// Stats holds the base combat statistics.
type Stats struct {
	HP                   float64 `json:"hp"`
	HPPerLevel           float64 `json:"hpperlevel"`
	MP                   float64 `json:"mp"`
	MPPerLevel           float64 `json:"mpperlevel"`
	MoveSpeed            float64 `json:"movespeed"`
	Armor                float64 `json:"armor"`
	ArmorPerLevel        float64 `json:"armorperlevel"`
	SpellBlock           float64 `json:"spellblock"`
	SpellBlockPerLevel   float64 `json:"spellblockperlevel"`
	AttackRange          float64 `json:"attackrange"`
	HPRegen              float64 `json:"hpregen"`
	HPRegenPerLevel      float64 `json:"hpregenperlevel"`
	MPRegen              float64 `json:"mpregen"`
	MPRegenPerLevel      float64 `json:"mpregenperlevel"`
	Crit                 float64 `json:"crit"`
	CritPerLevel         float64 `json:"critperlevel"`
	AttackDamage         float64 `json:"attackdamage"`
	AttackDamagePerLevel float64 `json:"attackdamageperlevel"`
	AttackSpeed          float64 `json:"attackspeed"`
	AttackSpeedPerLevel  float64 `json:"attackspeedperlevel"`
}

// Skin is a single splash entry.
type Skin struct {
	ID   string `json:"id"`
	Num  int    `json:"num"`
	Name string `json:"name"`
}
