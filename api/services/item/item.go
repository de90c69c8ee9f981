package item

import (
	"context"
	"sort"

	"riftbook/api/dto"
	"riftbook/api/filters"
	"riftbook/ddragon"
	"riftbook/pkg/models/item"

	"github.com/rs/zerolog"
)

// Service serves the live item shop.
type Service struct {
	loader          *ddragon.Loader
	defaultLanguage string
	logger          zerolog.Logger
}

// ServiceDeps holds the dependencies for the item service.
type ServiceDeps struct {
	Loader *ddragon.Loader

	// DefaultLanguage is used when a request carries no language.
	DefaultLanguage string

	Logger zerolog.Logger
}

// NewService creates an item service on top of a document loader.
func NewService(deps ServiceDeps) *Service {
	defaultLanguage := deps.DefaultLanguage
	if defaultLanguage == "" {
		defaultLanguage = ddragon.DefaultLanguage
	}

	return &Service{
		loader:          deps.Loader,
		defaultLanguage: defaultLanguage,
		logger:          deps.Logger,
	}
}

// List loads the shop for the requested language and returns the items
// matching every selected facet, sorted by the selected comparator.
func (s *Service) List(ctx context.Context, criteria *filters.ItemCriteria) []item.Item {
	items := s.loader.LoadItems(ctx, s.language(criteria.Language))
	matched := ApplyFilters(items, criteria)
	SortItems(matched, criteria.Sort)
	return matched
}

// Facets enumerates the distinct tags of the shop for a language.
func (s *Service) Facets(ctx context.Context, language string) *dto.ItemFacets {
	items := s.loader.LoadItems(ctx, s.language(language))

	tagSet := make(map[string]bool)
	for i := range items {
		for _, tag := range items[i].Tags {
			tagSet[tag] = true
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return &dto.ItemFacets{Tags: tags}
}

func (s *Service) language(requested string) string {
	if requested == "" {
		return s.defaultLanguage
	}
	return requested
}
