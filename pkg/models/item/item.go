package item

import "riftbook/pkg/models/image"

// Gold holds the purchase information of an item.
type Gold struct {
	Base        int  `json:"base"`
	Total       int  `json:"total"`
	Sell        int  `json:"sell"`
	Purchasable bool `json:"purchasable"`
}

// Item is a single shop entry from the Data Dragon item document.
// The ID is the document key, attached during loading.
type Item struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Plaintext   string             `json:"plaintext"`
	Image       image.Image        `json:"image"`
	Gold        Gold               `json:"gold"`
	Tags        []string           `json:"tags"`
	Stats       map[string]float64 `json:"stats"`
	Maps        map[string]bool    `json:"maps"`

	RequiredChampion string `json:"requiredChampion,omitempty"`
	RequiredAlly     string `json:"requiredAlly,omitempty"`
	HideFromAll      bool   `json:"hideFromAll,omitempty"`
}

// Stat mod keys of the Data Dragon item stats block.
const (
	StatAttackDamage = "FlatPhysicalDamageMod"
	StatAbilityPower = "FlatMagicDamageMod"
	StatArmor        = "FlatArmorMod"
	StatMagicResist  = "FlatSpellBlockMod"
	StatHealth       = "FlatHPPoolMod"
	StatMana         = "FlatMPPoolMod"
	StatAttackSpeed  = "PercentAttackSpeedMod"
	StatCritChance   = "FlatCritChanceMod"
	StatLifeSteal    = "PercentLifeStealMod"
)

// Stat returns a stat mod value, zero when absent.
func (i Item) Stat(key string) float64 {
	return i.Stats[key]
}
