package ddragon

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"riftbook/pkg/models/item"
	"riftbook/riot/requests"

	"github.com/goccy/go-json"
)

// itemDocument is the keyed object shape of the Data Dragon item document.
type itemDocument struct {
	Data map[string]item.Item `json:"data"`
}

// LoadItems fetches the version pinned, language pinned item document and
// normalizes it into a filtered, deduplicated array.
// Each language candidate is tried in order, exhaustion yields an empty
// collection rather than an error.
func (l *Loader) LoadItems(ctx context.Context, locale string) []item.Item {
	version := l.LatestVersion(ctx)

	for _, language := range languageCandidates(locale) {
		raw, err := l.fetchItemDocument(ctx, version, language)
		if err != nil {
			l.logger.Warn().Err(err).
				Str("language", language).
				Msg("couldn't load the item document")
			continue
		}

		var doc itemDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			l.logger.Warn().Err(err).
				Str("language", language).
				Msg("couldn't parse the item document")
			continue
		}

		return normalizeItems(doc.Data)
	}

	return []item.Item{}
}

// fetchItemDocument loads the raw item document, going through the document
// cache when one is configured.
func (l *Loader) fetchItemDocument(ctx context.Context, version, language string) ([]byte, error) {
	cacheKey := fmt.Sprintf("ddragon:item:%s:%s", version, language)
	if l.docs != nil {
		if raw, ok := l.docs.Get(ctx, cacheKey); ok {
			return raw, nil
		}
	}

	url := fmt.Sprintf("%s/cdn/%s/data/%s/item.json", l.baseURL, version, language)

	var raw json.RawMessage
	if err := l.req.GetJSON(ctx, url, &raw, requests.Options{}); err != nil {
		return nil, err
	}

	if l.docs != nil {
		l.docs.Set(ctx, cacheKey, raw)
	}
	return raw, nil
}

// normalizeItems converts the keyed document into an array with the key
// attached as the item id, keeps only purchasable entries and deduplicates
// variants that share a display name.
func normalizeItems(data map[string]item.Item) []item.Item {
	items := make([]item.Item, 0, len(data))
	for id, entry := range data {
		entry.ID = id
		if isPurchasable(entry) {
			items = append(items, entry)
		}
	}

	items = dedupeByName(items)

	// Stable presentation order, the document map iterates randomly.
	sort.Slice(items, func(i, j int) bool {
		return numericId(items[i].ID) < numericId(items[j].ID)
	})
	return items
}

// isPurchasable filters out consumable placeholders, champion restricted
// entries and hidden shop rows.
func isPurchasable(entry item.Item) bool {
	return entry.Gold.Total > 0 &&
		entry.Gold.Purchasable &&
		entry.RequiredChampion == "" &&
		entry.RequiredAlly == "" &&
		!entry.HideFromAll
}

// dedupeByName keeps a single entry per display name. Variants from event
// modes reuse names, the numerically smallest identifier is the base form.
func dedupeByName(items []item.Item) []item.Item {
	byName := make(map[string]item.Item, len(items))
	for _, entry := range items {
		current, exists := byName[entry.Name]
		if !exists || numericId(entry.ID) < numericId(current.ID) {
			byName[entry.Name] = entry
		}
	}

	deduped := make([]item.Item, 0, len(byName))
	for _, entry := range byName {
		deduped = append(deduped, entry)
	}
	return deduped
}

func numericId(id string) int {
	parsed, err := strconv.Atoi(id)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return parsed
}
