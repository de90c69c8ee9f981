package champion

import "riftbook/pkg/models/image"

// Spell holds a champion ability or passive.
type Spell struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cooldown    []float64   `json:"cooldown"`
	Cost        []float64   `json:"cost"`
	Image       image.Image `json:"image"`
}
