package ddragon

import (
	"fmt"
	"os"

	"riftbook/pkg/models/champion"

	"github.com/goccy/go-json"
)

// LoadChampions reads the bundled consolidated champions document.
// The document is produced offline by cmd/consolidate and is already an
// array, so it's returned as-is.
func LoadChampions(path string) ([]champion.Champion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the champions document: %w", err)
	}

	var champions []champion.Champion
	if err := json.Unmarshal(data, &champions); err != nil {
		return nil, fmt.Errorf("couldn't parse the champions document: %w", err)
	}

	return champions, nil
}
